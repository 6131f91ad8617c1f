package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/services"
	"github.com/internhub/internhub/internal/middleware"
)

// MentorController handles the mentor dashboard aggregations
type MentorController struct {
	mentorService services.MentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.MentorService) *MentorController {
	return &MentorController{
		mentorService: mentorService,
	}
}

// GetStudents lists the students who applied to the mentor's internships
// @Summary List a mentor's students
// @Description Returns students joined with their applications to the mentor's internships
// @Tags mentor
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor ID"
// @Success 200 {array} models.MentorStudent "Students"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentor/{id}/students [get]
func (c *MentorController) GetStudents(ctx *gin.Context) {
	mentorID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students, err := c.mentorService.Students(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetSummary returns the mentor dashboard counters
// @Summary Mentor dashboard summary
// @Description Returns assigned student, active project and pending review counts
// @Tags mentor
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor ID"
// @Success 200 {object} models.MentorSummary "Summary"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentor/{id}/summary [get]
func (c *MentorController) GetSummary(ctx *gin.Context) {
	mentorID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summary, err := c.mentorService.Summary(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
