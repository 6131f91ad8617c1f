package dto

import "github.com/internhub/internhub/internal/app/models"

// UserResponse represents a user without credential material.
// Field names follow the original API ("user_id", not "id").
type UserResponse struct {
	UserID int64           `json:"user_id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   models.RoleType `json:"role"`
	Skills *string         `json:"skills"`
}

// NewUserResponse maps a user model to its public shape
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Skills: u.Skills,
	}
}
