package models

// Resource defines a file link attached to a project
type Resource struct {
	ID          int64  `json:"resource_id" db:"id"`
	ProjectID   int64  `json:"project_id" db:"project_id"`
	FileLink    string `json:"file_link" db:"file_link"`
	Description string `json:"description" db:"description"`
	UploadedBy  *int64 `json:"uploaded_by" db:"uploaded_by"`
}

// ProjectResource is a resource row with the uploader's name (outer-joined)
type ProjectResource struct {
	ResourceID     int64   `json:"resource_id" db:"resource_id"`
	ProjectID      int64   `json:"project_id" db:"project_id"`
	FileLink       string  `json:"file_link" db:"file_link"`
	Description    string  `json:"description" db:"description"`
	UploadedBy     *int64  `json:"uploaded_by" db:"uploaded_by"`
	UploadedByName *string `json:"uploaded_by_name" db:"uploaded_by_name"`
}
