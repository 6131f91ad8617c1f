package services

import (
	"context"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/app/models/dto"
)

// UserService defines user read operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUserByID(ctx context.Context, id int64) (*dto.UserResponse, error)
}

type userStore interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type userServiceImpl struct {
	userRepo userStore
}

// NewUserService creates a new UserService
func NewUserService(userRepo userStore) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// GetAllUsers returns every user in public shape, password hash excluded
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}

	return responses, nil
}

// GetUserByID returns a single user in public shape
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.NewUserResponse(user)
	return &response, nil
}
