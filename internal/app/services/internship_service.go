package services

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/app/models/dto"
)

const (
	internshipCacheKey = "internships:all"
	internshipCacheTTL = 5 * time.Minute
)

// InternshipService defines internship read operations
type InternshipService interface {
	ListInternships(ctx context.Context) ([]*dto.InternshipResponse, error)
}

type internshipLister interface {
	GetAll(ctx context.Context) ([]*models.Internship, error)
}

type internshipServiceImpl struct {
	internshipRepo internshipLister
	cache          *gocache.Cache
}

// NewInternshipService creates a new InternshipService. The listing is
// cached in-process since internships only change out-of-band.
func NewInternshipService(internshipRepo internshipLister) InternshipService {
	return &internshipServiceImpl{
		internshipRepo: internshipRepo,
		cache:          gocache.New(internshipCacheTTL, 10*time.Minute),
	}
}

// ListInternships returns all internships with duration rendered as a
// human string ("6 months").
func (s *internshipServiceImpl) ListInternships(ctx context.Context) ([]*dto.InternshipResponse, error) {
	if cached, found := s.cache.Get(internshipCacheKey); found {
		return cached.([]*dto.InternshipResponse), nil
	}

	internships, err := s.internshipRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.InternshipResponse, 0, len(internships))
	for _, internship := range internships {
		responses = append(responses, newInternshipResponse(internship))
	}

	s.cache.Set(internshipCacheKey, responses, gocache.DefaultExpiration)

	return responses, nil
}

func newInternshipResponse(i *models.Internship) *dto.InternshipResponse {
	var duration *string
	if i.Duration != nil {
		rendered := fmt.Sprintf("%d months", *i.Duration)
		duration = &rendered
	}

	return &dto.InternshipResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Company:     i.CompanyName,
		Duration:    duration,
		StartDate:   i.StartDate,
		EndDate:     i.EndDate,
		MentorID:    i.MentorID,
	}
}
