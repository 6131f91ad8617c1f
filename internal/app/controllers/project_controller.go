package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/services"
	"github.com/internhub/internhub/internal/middleware"
)

// ProjectController handles project and team reads
type ProjectController struct {
	projectService services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// GetStudentProjects lists the projects a student belongs to
// @Summary List a student's projects
// @Description Returns the projects the student is a team member of, with their role
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {array} models.StudentProject "Projects"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/student/{studentId} [get]
func (c *ProjectController) GetStudentProjects(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	projects, err := c.projectService.StudentProjects(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// GetMentorProjects lists the projects a mentor owns
// @Summary List a mentor's projects
// @Description Returns the projects owned by the mentor, newest first
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param mentorId path int true "Mentor ID"
// @Success 200 {array} models.Project "Projects"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/mentor/{mentorId} [get]
func (c *ProjectController) GetMentorProjects(ctx *gin.Context) {
	mentorID, err := parseIDParam(ctx, "mentorId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	projects, err := c.projectService.MentorProjects(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// GetTeam lists the team of a project
// @Summary List a project's team
// @Description Returns the team members of a project with name and email
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Success 200 {array} models.TeamMemberDetail "Team members"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/{projectId}/team [get]
func (c *ProjectController) GetTeam(ctx *gin.Context) {
	projectID, err := parseIDParam(ctx, "projectId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	members, err := c.projectService.Team(ctx, projectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}
