package controllers

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internhub/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController        *AuthController
	UserController        *UserController
	InternshipController  *InternshipController
	ApplicationController *ApplicationController
	MentorController      *MentorController
	ProjectController     *ProjectController
	TaskController        *TaskController
	ResourceController    *ResourceController
	HealthController      *HealthController
}

// NewControllers initializes all controllers
func NewControllers(svc *services.Services, db *pgxpool.Pool) *Controllers {
	return &Controllers{
		AuthController:        NewAuthController(svc.AuthService),
		UserController:        NewUserController(svc.UserService),
		InternshipController:  NewInternshipController(svc.InternshipService),
		ApplicationController: NewApplicationController(svc.ApplicationService),
		MentorController:      NewMentorController(svc.MentorService),
		ProjectController:     NewProjectController(svc.ProjectService),
		TaskController:        NewTaskController(svc.TaskService),
		ResourceController:    NewResourceController(svc.ResourceService),
		HealthController:      NewHealthController(db),
	}
}
