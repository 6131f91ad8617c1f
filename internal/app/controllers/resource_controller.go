package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/services"
	"github.com/internhub/internhub/internal/middleware"
)

// ResourceController handles project resource reads
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// GetProjectResources lists the resources of a project
// @Summary List a project's resources
// @Description Returns the project's resource links with uploader names, newest first
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Success 200 {array} models.ProjectResource "Resources"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources/project/{projectId} [get]
func (c *ResourceController) GetProjectResources(ctx *gin.Context) {
	projectID, err := parseIDParam(ctx, "projectId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resources, err := c.resourceService.ProjectResources(ctx, projectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resources)
}
