package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internhub/internal/app/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// ListByStudent retrieves tasks assigned to a student with the owning
// project title resolved, earliest deadline first. Tasks share a
// deadline often enough that id DESC keeps the order stable.
func (r *TaskRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentTask, error) {
	query := `
		SELECT t.id AS task_id, t.project_id, t.description, t.deadline, t.status,
		       p.title AS project_title
		FROM tasks t
		LEFT JOIN projects p ON t.project_id = p.id
		WHERE t.assigned_to = $1
		ORDER BY t.deadline ASC, t.id DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.StudentTask
	for rows.Next() {
		var task models.StudentTask
		if err := rows.Scan(
			&task.TaskID,
			&task.ProjectID,
			&task.Description,
			&task.Deadline,
			&task.Status,
			&task.ProjectTitle,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ListByProject retrieves a project's tasks with the assignee's name
// resolved, earliest deadline first. Unassigned tasks keep a NULL name.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.ProjectTask, error) {
	query := `
		SELECT t.id AS task_id, t.project_id, t.description, t.deadline, t.status,
		       t.assigned_to, u.name AS assigned_to_name
		FROM tasks t
		LEFT JOIN users u ON t.assigned_to = u.id
		WHERE t.project_id = $1
		ORDER BY t.deadline ASC, t.id DESC
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.ProjectTask
	for rows.Next() {
		var task models.ProjectTask
		if err := rows.Scan(
			&task.TaskID,
			&task.ProjectID,
			&task.Description,
			&task.Deadline,
			&task.Status,
			&task.AssignedTo,
			&task.AssignedToName,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
