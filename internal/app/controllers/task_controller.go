package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/services"
	"github.com/internhub/internhub/internal/middleware"
)

// TaskController handles task reads
type TaskController struct {
	taskService services.TaskService
}

// NewTaskController creates a new TaskController
func NewTaskController(taskService services.TaskService) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// GetStudentTasks lists tasks assigned to a student
// @Summary List a student's tasks
// @Description Returns tasks assigned to the student with project titles, earliest deadline first
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {array} models.StudentTask "Tasks"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tasks/student/{studentId} [get]
func (c *TaskController) GetStudentTasks(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	tasks, err := c.taskService.StudentTasks(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

// GetProjectTasks lists the tasks of a project
// @Summary List a project's tasks
// @Description Returns the project's tasks with assignee names, earliest deadline first
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Success 200 {array} models.ProjectTask "Tasks"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tasks/project/{projectId} [get]
func (c *TaskController) GetProjectTasks(ctx *gin.Context) {
	projectID, err := parseIDParam(ctx, "projectId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	tasks, err := c.taskService.ProjectTasks(ctx, projectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}
