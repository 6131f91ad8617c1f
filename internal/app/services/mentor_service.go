package services

import (
	"context"

	"github.com/internhub/internhub/internal/app/models"
)

// MentorService defines the mentor dashboard aggregations
type MentorService interface {
	Students(ctx context.Context, mentorID int64) ([]*models.MentorStudent, error)
	Summary(ctx context.Context, mentorID int64) (*models.MentorSummary, error)
}

type mentorApplicationStore interface {
	StudentsByMentor(ctx context.Context, mentorID int64) ([]*models.MentorStudent, error)
	CountDistinctStudentsByMentor(ctx context.Context, mentorID int64) (int64, error)
	CountPendingByMentor(ctx context.Context, mentorID int64) (int64, error)
}

type internshipCounter interface {
	CountByMentor(ctx context.Context, mentorID int64) (int64, error)
}

type mentorServiceImpl struct {
	applicationRepo mentorApplicationStore
	internshipRepo  internshipCounter
	dedupeStudents  bool
}

// NewMentorService creates a new MentorService
func NewMentorService(applicationRepo mentorApplicationStore, internshipRepo internshipCounter, dedupeStudents bool) MentorService {
	return &mentorServiceImpl{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		dedupeStudents:  dedupeStudents,
	}
}

// Students returns the students who applied to the mentor's internships.
// One row per application by default; with deduplication enabled, one
// row per student, keeping the most recent application.
func (s *mentorServiceImpl) Students(ctx context.Context, mentorID int64) ([]*models.MentorStudent, error) {
	students, err := s.applicationRepo.StudentsByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	if s.dedupeStudents {
		students = dedupeByStudent(students)
	}
	if students == nil {
		students = []*models.MentorStudent{}
	}

	return students, nil
}

// dedupeByStudent keeps the first row per student. Rows arrive ordered
// by name then application id descending, so the first row is the most
// recent application.
func dedupeByStudent(students []*models.MentorStudent) []*models.MentorStudent {
	seen := make(map[int64]bool, len(students))
	deduped := make([]*models.MentorStudent, 0, len(students))
	for _, student := range students {
		if seen[student.UserID] {
			continue
		}
		seen[student.UserID] = true
		deduped = append(deduped, student)
	}

	return deduped
}

// Summary returns the mentor dashboard counters. Each count is
// independent and zero when nothing matches.
func (s *mentorServiceImpl) Summary(ctx context.Context, mentorID int64) (*models.MentorSummary, error) {
	assignedStudents, err := s.applicationRepo.CountDistinctStudentsByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	activeProjects, err := s.internshipRepo.CountByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	pendingReviews, err := s.applicationRepo.CountPendingByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	return &models.MentorSummary{
		AssignedStudents: assignedStudents,
		ActiveProjects:   activeProjects,
		PendingReviews:   pendingReviews,
	}, nil
}
