package services

import (
	"context"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/app/models/dto"
	"github.com/internhub/internhub/internal/pkg/apperrors"
	"github.com/internhub/internhub/internal/pkg/logger"
)

// ApplicationService defines internship application operations
type ApplicationService interface {
	CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationCreatedResponse, error)
	ListStudentApplications(ctx context.Context, studentID int64) ([]*models.StudentApplication, error)
}

type applicationStore interface {
	Create(ctx context.Context, application *models.Application) (int64, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentApplication, error)
}

type internshipChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type applicationServiceImpl struct {
	applicationRepo applicationStore
	internshipRepo  internshipChecker
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applicationRepo applicationStore, internshipRepo internshipChecker) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
	}
}

// CreateApplication submits an application for an existing internship.
// The existence check is advisory only; the unique constraint in the
// store is what makes concurrent duplicates safe.
func (s *applicationServiceImpl) CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationCreatedResponse, error) {
	exists, err := s.internshipRepo.Exists(ctx, req.InternshipID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrInternshipNotFound
	}

	status := req.Status
	if status == "" {
		status = models.ApplicationStatusApplied
	}

	application := &models.Application{
		StudentID:    req.StudentID,
		InternshipID: req.InternshipID,
		Status:       status,
	}

	applicationID, err := s.applicationRepo.Create(ctx, application)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("applicationID", applicationID).
		Int64("studentID", req.StudentID).
		Int64("internshipID", req.InternshipID).
		Msg("Application submitted")

	return &dto.ApplicationCreatedResponse{
		Message:       "Application submitted",
		ApplicationID: applicationID,
	}, nil
}

// ListStudentApplications returns a student's applications, newest first
func (s *applicationServiceImpl) ListStudentApplications(ctx context.Context, studentID int64) ([]*models.StudentApplication, error) {
	applications, err := s.applicationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []*models.StudentApplication{}
	}

	return applications, nil
}
