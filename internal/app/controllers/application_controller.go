package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/models/dto"
	"github.com/internhub/internhub/internal/app/services"
	"github.com/internhub/internhub/internal/middleware"
)

// ApplicationController handles internship applications
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// CreateApplication submits an application
// @Summary Apply to an internship
// @Description Submits an application for an existing internship
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} dto.ApplicationCreatedResponse "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 409 {object} dto.ErrorResponse "Application already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("student_id and internship_id are required"))
		return
	}

	response, err := c.applicationService.CreateApplication(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetStudentApplications lists a student's applications
// @Summary List a student's applications
// @Description Returns the student's applications joined with internship details, newest first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param student_id query int true "Student ID"
// @Success 200 {array} models.StudentApplication "Applications"
// @Failure 400 {object} dto.ErrorResponse "Missing student_id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) GetStudentApplications(ctx *gin.Context) {
	rawStudentID := ctx.Query("student_id")
	if rawStudentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("student_id query parameter is required"))
		return
	}

	studentID, err := strconv.ParseInt(rawStudentID, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("student_id must be a number"))
		return
	}

	applications, err := c.applicationService.ListStudentApplications(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applications)
}
