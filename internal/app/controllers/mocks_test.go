package controllers

import (
	"context"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/app/models/dto"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthService returns canned responses per operation
type mockAuthService struct {
	signupResp  *dto.AuthResponse
	signupErr   error
	loginResp   *dto.AuthResponse
	loginErr    error
	refreshResp *dto.TokenResponse
	refreshErr  error
	logoutErr   error
}

func (m *mockAuthService) Signup(_ context.Context, _ *dto.SignupRequest) (*dto.AuthResponse, error) {
	return m.signupResp, m.signupErr
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.AuthResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResp, m.refreshErr
}

func (m *mockAuthService) Logout(_ context.Context, _ string) error {
	return m.logoutErr
}

// mockApplicationService captures the request it was called with
type mockApplicationService struct {
	createResp *dto.ApplicationCreatedResponse
	createErr  error
	createReq  *dto.CreateApplicationRequest
	listResp   []*models.StudentApplication
	listErr    error
	listedID   int64
}

func (m *mockApplicationService) CreateApplication(_ context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationCreatedResponse, error) {
	m.createReq = req
	return m.createResp, m.createErr
}

func (m *mockApplicationService) ListStudentApplications(_ context.Context, studentID int64) ([]*models.StudentApplication, error) {
	m.listedID = studentID
	return m.listResp, m.listErr
}

// mockMentorService returns canned dashboard data
type mockMentorService struct {
	students    []*models.MentorStudent
	studentsErr error
	summary     *models.MentorSummary
	summaryErr  error
}

func (m *mockMentorService) Students(_ context.Context, _ int64) ([]*models.MentorStudent, error) {
	return m.students, m.studentsErr
}

func (m *mockMentorService) Summary(_ context.Context, _ int64) (*models.MentorSummary, error) {
	return m.summary, m.summaryErr
}
