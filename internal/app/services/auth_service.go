package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/app/models/dto"
	"github.com/internhub/internhub/internal/pkg/apperrors"
	"github.com/internhub/internhub/internal/pkg/auth"
	"github.com/internhub/internhub/internal/pkg/logger"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const minPasswordLength = 8

// AuthService defines the authentication operations
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authUserStore is the slice of the user repository the auth service needs
type authUserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// tokenStore persists refresh tokens
type tokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}

type authServiceImpl struct {
	userRepo   authUserStore
	tokenRepo  tokenStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo authUserStore, tokenRepo tokenStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Signup registers a new user and opens a session for it
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" || email == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("Name, email and password are required")
	}
	if !emailRegex.MatchString(email) {
		return nil, apperrors.NewBadRequestError("Invalid email format")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		Skills:   req.Skills,
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return &dto.AuthResponse{
		Message: "Signup successful",
		User:    dto.NewUserResponse(user),
		Token:   token,
	}, nil
}

// Login verifies credentials and opens a session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return &dto.AuthResponse{
		Message: "Login successful",
		User:    dto.NewUserResponse(user),
		Token:   token,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The presented token is revoked so each refresh token is single-use.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return apperrors.ErrTokenInvalid
	}

	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	err = s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry())
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}
