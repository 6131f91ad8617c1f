package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internhub/internal/app/models"
)

// InternshipRepository handles database operations for internships.
// Internships are created out-of-band, so only reads exist here.
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new internship repository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
	}
}

// GetAll retrieves all internships
func (r *InternshipRepository) GetAll(ctx context.Context) ([]*models.Internship, error) {
	query := `
		SELECT id, title, description, company_name, duration, start_date, end_date, mentor_id
		FROM internships
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		var internship models.Internship
		if err := rows.Scan(
			&internship.ID,
			&internship.Title,
			&internship.Description,
			&internship.CompanyName,
			&internship.Duration,
			&internship.StartDate,
			&internship.EndDate,
			&internship.MentorID,
		); err != nil {
			return nil, err
		}
		internships = append(internships, &internship)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return internships, nil
}

// Exists checks whether an internship with the given id is present
func (r *InternshipRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM internships WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking internship existence: %w", err)
	}

	return exists, nil
}

// CountByMentor counts internships owned by a mentor
func (r *InternshipRepository) CountByMentor(ctx context.Context, mentorID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM internships WHERE mentor_id = $1`, mentorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting mentor internships: %w", err)
	}

	return count, nil
}
