package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internhub/internal/app/models"
)

// ResourceRepository handles database operations for project resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
	}
}

// ListByProject retrieves a project's resources with the uploader's
// name resolved, newest first. Uploads by deleted accounts keep a NULL
// uploader name.
func (r *ResourceRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.ProjectResource, error) {
	query := `
		SELECT r.id AS resource_id, r.project_id, r.file_link, r.description,
		       r.uploaded_by, u.name AS uploaded_by_name
		FROM resources r
		LEFT JOIN users u ON r.uploaded_by = u.id
		WHERE r.project_id = $1
		ORDER BY r.id DESC
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []*models.ProjectResource
	for rows.Next() {
		var resource models.ProjectResource
		if err := rows.Scan(
			&resource.ResourceID,
			&resource.ProjectID,
			&resource.FileLink,
			&resource.Description,
			&resource.UploadedBy,
			&resource.UploadedByName,
		); err != nil {
			return nil, err
		}
		resources = append(resources, &resource)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resources, nil
}
