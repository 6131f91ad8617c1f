package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/pkg/apperrors"
	"github.com/internhub/internhub/internal/pkg/dberrors"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application and returns the assigned id.
// The (student_id, internship_id) pair carries a unique constraint, so a
// concurrent duplicate surfaces here as ErrDuplicateApplication instead
// of a second row.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) (int64, error) {
	query := `
		INSERT INTO applications (student_id, internship_id, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		application.StudentID, application.InternshipID, application.Status,
	).Scan(&application.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_id_internship_id_key") {
			return 0, apperrors.ErrDuplicateApplication
		}
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return application.ID, nil
}

// ListByStudent retrieves a student's applications joined with the
// internship title and company, newest first.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentApplication, error) {
	query := `
		SELECT a.id AS application_id, a.status, a.internship_id,
		       i.title AS internship_title, i.company_name
		FROM applications a
		JOIN internships i ON a.internship_id = i.id
		WHERE a.student_id = $1
		ORDER BY a.id DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*models.StudentApplication
	for rows.Next() {
		var application models.StudentApplication
		if err := rows.Scan(
			&application.ApplicationID,
			&application.Status,
			&application.InternshipID,
			&application.InternshipTitle,
			&application.CompanyName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// StudentsByMentor retrieves every (student x application x internship)
// row for internships owned by the mentor, ordered alphabetically by
// student name with newest applications first within a student.
func (r *ApplicationRepository) StudentsByMentor(ctx context.Context, mentorID int64) ([]*models.MentorStudent, error) {
	query := `
		SELECT DISTINCT
		       u.id AS user_id,
		       u.name,
		       u.email,
		       u.skills,
		       a.id AS application_id,
		       a.status AS application_status,
		       i.title AS internship_title,
		       i.id AS internship_id
		FROM applications a
		JOIN internships i ON a.internship_id = i.id
		JOIN users u ON a.student_id = u.id
		WHERE i.mentor_id = $1
		ORDER BY u.name, a.id DESC
	`

	rows, err := r.db.Query(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.MentorStudent
	for rows.Next() {
		var student models.MentorStudent
		if err := rows.Scan(
			&student.UserID,
			&student.Name,
			&student.Email,
			&student.Skills,
			&student.ApplicationID,
			&student.ApplicationStatus,
			&student.InternshipTitle,
			&student.InternshipID,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CountDistinctStudentsByMentor counts distinct students who applied to
// any of the mentor's internships.
func (r *ApplicationRepository) CountDistinctStudentsByMentor(ctx context.Context, mentorID int64) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT a.student_id)
		FROM applications a
		JOIN internships i ON a.internship_id = i.id
		WHERE i.mentor_id = $1
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, mentorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting mentor students: %w", err)
	}

	return count, nil
}

// CountPendingByMentor counts applications with status exactly 'pending'
// for the mentor's internships.
func (r *ApplicationRepository) CountPendingByMentor(ctx context.Context, mentorID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM applications a
		JOIN internships i ON a.internship_id = i.id
		WHERE i.mentor_id = $1
		  AND a.status = $2
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, mentorID, models.ApplicationStatusPending).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting pending applications: %w", err)
	}

	return count, nil
}
