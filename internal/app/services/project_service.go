package services

import (
	"context"

	"github.com/internhub/internhub/internal/app/models"
)

// ProjectService defines project and team read operations
type ProjectService interface {
	StudentProjects(ctx context.Context, studentID int64) ([]*models.StudentProject, error)
	MentorProjects(ctx context.Context, mentorID int64) ([]*models.Project, error)
	Team(ctx context.Context, projectID int64) ([]*models.TeamMemberDetail, error)
}

type projectStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentProject, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]*models.Project, error)
	TeamByProject(ctx context.Context, projectID int64) ([]*models.TeamMemberDetail, error)
}

type projectServiceImpl struct {
	projectRepo projectStore
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo projectStore) ProjectService {
	return &projectServiceImpl{projectRepo: projectRepo}
}

// StudentProjects returns the projects the student is a team member of
func (s *projectServiceImpl) StudentProjects(ctx context.Context, studentID int64) ([]*models.StudentProject, error) {
	projects, err := s.projectRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []*models.StudentProject{}
	}

	return projects, nil
}

// MentorProjects returns the projects owned by the mentor
func (s *projectServiceImpl) MentorProjects(ctx context.Context, mentorID int64) ([]*models.Project, error) {
	projects, err := s.projectRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []*models.Project{}
	}

	return projects, nil
}

// Team returns the team member listing of a project
func (s *projectServiceImpl) Team(ctx context.Context, projectID int64) ([]*models.TeamMemberDetail, error) {
	members, err := s.projectRepo.TeamByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []*models.TeamMemberDetail{}
	}

	return members, nil
}
