package services

import (
	"context"

	"github.com/internhub/internhub/internal/app/models"
)

// ResourceService defines project resource read operations
type ResourceService interface {
	ProjectResources(ctx context.Context, projectID int64) ([]*models.ProjectResource, error)
}

type resourceStore interface {
	ListByProject(ctx context.Context, projectID int64) ([]*models.ProjectResource, error)
}

type resourceServiceImpl struct {
	resourceRepo resourceStore
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceRepo resourceStore) ResourceService {
	return &resourceServiceImpl{resourceRepo: resourceRepo}
}

// ProjectResources returns the resource links of a project, newest first
func (s *resourceServiceImpl) ProjectResources(ctx context.Context, projectID int64) ([]*models.ProjectResource, error) {
	resources, err := s.resourceRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []*models.ProjectResource{}
	}

	return resources, nil
}
