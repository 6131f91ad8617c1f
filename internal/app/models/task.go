package models

import "time"

// Task defines the task model based on the 'tasks' table. Tasks may be
// unassigned and may not belong to a project.
type Task struct {
	ID          int64      `json:"task_id" db:"id"`
	ProjectID   *int64     `json:"project_id" db:"project_id"`
	AssignedTo  *int64     `json:"assigned_to" db:"assigned_to"`
	Description string     `json:"description" db:"description"`
	Deadline    *time.Time `json:"deadline" db:"deadline"`
	Status      string     `json:"status" db:"status"`
}

// StudentTask is a task row with its project title (outer-joined)
type StudentTask struct {
	TaskID       int64      `json:"task_id" db:"task_id"`
	ProjectID    *int64     `json:"project_id" db:"project_id"`
	Description  string     `json:"description" db:"description"`
	Deadline     *time.Time `json:"deadline" db:"deadline"`
	Status       string     `json:"status" db:"status"`
	ProjectTitle *string    `json:"project_title" db:"project_title"`
}

// ProjectTask is a task row with its assignee's name (outer-joined)
type ProjectTask struct {
	TaskID         int64      `json:"task_id" db:"task_id"`
	ProjectID      *int64     `json:"project_id" db:"project_id"`
	Description    string     `json:"description" db:"description"`
	Deadline       *time.Time `json:"deadline" db:"deadline"`
	Status         string     `json:"status" db:"status"`
	AssignedTo     *int64     `json:"assigned_to" db:"assigned_to"`
	AssignedToName *string    `json:"assigned_to_name" db:"assigned_to_name"`
}
