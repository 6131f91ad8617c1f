package services

import (
	"github.com/internhub/internhub/internal/app/repositories"
	"github.com/internhub/internhub/internal/config"
	"github.com/internhub/internhub/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService        AuthService
	UserService        UserService
	InternshipService  InternshipService
	ApplicationService ApplicationService
	MentorService      MentorService
	ProjectService     ProjectService
	TaskService        TaskService
	ResourceService    ResourceService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, cfg *config.Config) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.TokenRepository,
			jwtService,
		),
		UserService:       NewUserService(repos.UserRepository),
		InternshipService: NewInternshipService(repos.InternshipRepository),
		ApplicationService: NewApplicationService(
			repos.ApplicationRepository,
			repos.InternshipRepository,
		),
		MentorService: NewMentorService(
			repos.ApplicationRepository,
			repos.InternshipRepository,
			cfg.Mentor.DedupeStudents,
		),
		ProjectService:  NewProjectService(repos.ProjectRepository),
		TaskService:     NewTaskService(repos.TaskRepository),
		ResourceService: NewResourceService(repos.ResourceRepository),
	}
}
