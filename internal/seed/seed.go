package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/pkg/auth"
	"github.com/internhub/internhub/internal/pkg/logger"
)

// Default accounts created on first start. Passwords are placeholders
// for local development and should be rotated in any shared environment.
const (
	defaultAdminEmail    = "admin@internhub.app"
	defaultAdminPassword = "admin12345"

	demoMentorEmail    = "mentor@internhub.app"
	demoMentorPassword = "mentor12345"
)

// Run inserts the default admin account and demo data when missing.
// Every step is idempotent so the seed can run on each startup.
func Run(ctx context.Context, pool *pgxpool.Pool) error {
	adminID, err := ensureUser(ctx, pool, "Admin", defaultAdminEmail, defaultAdminPassword, models.RoleAdmin, nil)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	mentorSkills := "Go, PostgreSQL, mentoring"
	mentorID, err := ensureUser(ctx, pool, "Demo Mentor", demoMentorEmail, demoMentorPassword, models.RoleMentor, &mentorSkills)
	if err != nil {
		return fmt.Errorf("seed mentor: %w", err)
	}

	if err := ensureInternships(ctx, pool, mentorID); err != nil {
		return fmt.Errorf("seed internships: %w", err)
	}

	logger.Info().
		Int64("adminID", adminID).
		Int64("mentorID", mentorID).
		Msg("Seed data verified")

	return nil
}

// ensureUser creates the user when absent and returns its id either way
func ensureUser(ctx context.Context, pool *pgxpool.Pool, name, email, password string, role models.RoleType, skills *string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if err == nil {
		return id, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role, skills)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, role, skills).Scan(&id)
	if err != nil {
		return 0, err
	}

	logger.Info().Str("email", email).Str("role", string(role)).Msg("Seeded default user")

	return id, nil
}

// ensureInternships inserts the demo internships once
func ensureInternships(ctx context.Context, pool *pgxpool.Pool, mentorID int64) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM internships`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	internships := []struct {
		title       string
		description string
		company     string
		duration    int
	}{
		{"Backend Engineering Intern", "REST APIs and PostgreSQL schema work on the platform backend.", "InternHub Labs", 6},
		{"Data Engineering Intern", "Reporting pipelines and dashboard queries.", "InternHub Labs", 3},
		{"Frontend Engineering Intern", "SPA features against the platform API.", "InternHub Labs", 4},
	}

	for _, internship := range internships {
		_, err := pool.Exec(ctx, `
			INSERT INTO internships (title, description, company_name, duration, start_date, end_date, mentor_id)
			VALUES ($1, $2, $3, $4, CURRENT_DATE, CURRENT_DATE + ($4 || ' months')::interval, $5)
		`, internship.title, internship.description, internship.company, internship.duration, mentorID)
		if err != nil {
			return err
		}
	}

	logger.Info().Int("count", len(internships)).Msg("Seeded demo internships")

	return nil
}
