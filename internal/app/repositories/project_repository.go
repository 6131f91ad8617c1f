package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internhub/internal/app/models"
)

// ProjectRepository handles database operations for projects and team
// membership.
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// ListByStudent retrieves distinct projects where the student has a team
// row, with their role, newest projects first.
func (r *ProjectRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentProject, error) {
	query := `
		SELECT DISTINCT
		       p.id, p.title, p.description, p.start_date, p.end_date, p.mentor_id,
		       t.role_in_team
		FROM projects p
		JOIN team t ON p.id = t.project_id
		WHERE t.student_id = $1
		ORDER BY p.start_date DESC, p.id DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.StudentProject
	for rows.Next() {
		var project models.StudentProject
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.StartDate,
			&project.EndDate,
			&project.MentorID,
			&project.RoleInTeam,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ListByMentor retrieves projects owned by the mentor, newest first
func (r *ProjectRepository) ListByMentor(ctx context.Context, mentorID int64) ([]*models.Project, error) {
	query := `
		SELECT p.id, p.title, p.description, p.start_date, p.end_date, p.mentor_id
		FROM projects p
		WHERE p.mentor_id = $1
		ORDER BY p.start_date DESC, p.id DESC
	`

	rows, err := r.db.Query(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.StartDate,
			&project.EndDate,
			&project.MentorID,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// TeamByProject retrieves the team members of a project joined with
// their user record, ordered alphabetically by name.
func (r *ProjectRepository) TeamByProject(ctx context.Context, projectID int64) ([]*models.TeamMemberDetail, error) {
	query := `
		SELECT t.id AS team_id,
		       t.role_in_team,
		       u.id AS user_id,
		       u.name,
		       u.email
		FROM team t
		JOIN users u ON t.student_id = u.id
		WHERE t.project_id = $1
		ORDER BY u.name
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.TeamMemberDetail
	for rows.Next() {
		var member models.TeamMemberDetail
		if err := rows.Scan(
			&member.TeamID,
			&member.RoleInTeam,
			&member.UserID,
			&member.Name,
			&member.Email,
		); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
