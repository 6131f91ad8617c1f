package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/controllers"
	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/middleware"
	"github.com/internhub/internhub/internal/pkg/auth"
)

// SetupRouter configures all application routes under /api
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	jwtService *auth.JWTService,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.GET("/health", ctrl.HealthController.Health)
	api.GET("/internships", ctrl.InternshipController.ListInternships)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", ctrl.AuthController.Signup)
		authGroup.POST("/login", ctrl.AuthController.Login)
		authGroup.POST("/refresh", ctrl.AuthController.RefreshToken)
		authGroup.POST("/logout", ctrl.AuthController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService))
	{
		users := authenticated.Group("/users")
		{
			users.GET("", middleware.RoleRequired(models.RoleAdmin), ctrl.UserController.GetUsers)
			users.GET("/:id", ctrl.UserController.GetUserByID)
		}

		applications := authenticated.Group("/applications")
		{
			applications.POST("", ctrl.ApplicationController.CreateApplication)
			applications.GET("", ctrl.ApplicationController.GetStudentApplications)
		}

		mentor := authenticated.Group("/mentor")
		mentor.Use(middleware.RoleRequired(models.RoleMentor, models.RoleAdmin))
		{
			mentor.GET("/:id/students", ctrl.MentorController.GetStudents)
			mentor.GET("/:id/summary", ctrl.MentorController.GetSummary)
		}

		projects := authenticated.Group("/projects")
		{
			projects.GET("/student/:studentId", ctrl.ProjectController.GetStudentProjects)
			projects.GET("/mentor/:mentorId", ctrl.ProjectController.GetMentorProjects)
			projects.GET("/:projectId/team", ctrl.ProjectController.GetTeam)
		}

		tasks := authenticated.Group("/tasks")
		{
			tasks.GET("/student/:studentId", ctrl.TaskController.GetStudentTasks)
			tasks.GET("/project/:projectId", ctrl.TaskController.GetProjectTasks)
		}

		resources := authenticated.Group("/resources")
		{
			resources.GET("/project/:projectId", ctrl.ResourceController.GetProjectResources)
		}
	}
}
