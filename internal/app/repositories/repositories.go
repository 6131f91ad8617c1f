package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	InternshipRepository  *InternshipRepository
	ApplicationRepository *ApplicationRepository
	ProjectRepository     *ProjectRepository
	TaskRepository        *TaskRepository
	ResourceRepository    *ResourceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		InternshipRepository:  NewInternshipRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		ProjectRepository:     NewProjectRepository(db),
		TaskRepository:        NewTaskRepository(db),
		ResourceRepository:    NewResourceRepository(db),
	}
}
