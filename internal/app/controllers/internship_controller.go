package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/services"
	"github.com/internhub/internhub/internal/middleware"
)

// InternshipController handles internship listing
type InternshipController struct {
	internshipService services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService services.InternshipService) *InternshipController {
	return &InternshipController{
		internshipService: internshipService,
	}
}

// ListInternships lists all internships
// @Summary List internships
// @Description Returns every internship; no filtering or pagination
// @Tags internships
// @Produce json
// @Success 200 {array} dto.InternshipResponse "Internships"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships [get]
func (c *InternshipController) ListInternships(ctx *gin.Context) {
	internships, err := c.internshipService.ListInternships(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, internships)
}
