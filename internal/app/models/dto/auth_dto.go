package dto

import "github.com/internhub/internhub/internal/app/models"

// SignupRequest represents a signup payload
type SignupRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Role     models.RoleType `json:"role"`   // Defaults to student
	Skills   *string         `json:"skills"` // Free-text comma-separated list
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a refresh token exchange
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the given refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// AuthResponse represents a successful signup or login
type AuthResponse struct {
	Message string         `json:"message"`
	User    UserResponse   `json:"user"`
	Token   *TokenResponse `json:"token,omitempty"`
}
