package services

import (
	"context"

	"github.com/internhub/internhub/internal/app/models"
)

// TaskService defines task read operations
type TaskService interface {
	StudentTasks(ctx context.Context, studentID int64) ([]*models.StudentTask, error)
	ProjectTasks(ctx context.Context, projectID int64) ([]*models.ProjectTask, error)
}

type taskStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentTask, error)
	ListByProject(ctx context.Context, projectID int64) ([]*models.ProjectTask, error)
}

type taskServiceImpl struct {
	taskRepo taskStore
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo taskStore) TaskService {
	return &taskServiceImpl{taskRepo: taskRepo}
}

// StudentTasks returns tasks assigned to the student, earliest deadline first
func (s *taskServiceImpl) StudentTasks(ctx context.Context, studentID int64) ([]*models.StudentTask, error) {
	tasks, err := s.taskRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*models.StudentTask{}
	}

	return tasks, nil
}

// ProjectTasks returns the tasks of a project, earliest deadline first
func (s *taskServiceImpl) ProjectTasks(ctx context.Context, projectID int64) ([]*models.ProjectTask, error) {
	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*models.ProjectTask{}
	}

	return tasks, nil
}
