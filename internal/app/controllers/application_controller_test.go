package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/app/models/dto"
	"github.com/internhub/internhub/internal/pkg/apperrors"
)

func newApplicationRouter(svc *mockApplicationService) *gin.Engine {
	router := gin.New()
	ctrl := NewApplicationController(svc)
	router.POST("/api/applications", ctrl.CreateApplication)
	router.GET("/api/applications", ctrl.GetStudentApplications)
	return router
}

func TestCreateApplicationReturns201(t *testing.T) {
	svc := &mockApplicationService{
		createResp: &dto.ApplicationCreatedResponse{Message: "Application submitted", ApplicationID: 42},
	}
	router := newApplicationRouter(svc)

	body := `{"student_id":1,"internship_id":7}`
	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var resp dto.ApplicationCreatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ApplicationID != 42 {
		t.Errorf("application_id = %d, want 42", resp.ApplicationID)
	}
	if svc.createReq == nil || svc.createReq.StudentID != 1 || svc.createReq.InternshipID != 7 {
		t.Errorf("service called with %+v", svc.createReq)
	}
}

func TestCreateApplicationMissingFieldsReturns400(t *testing.T) {
	router := newApplicationRouter(&mockApplicationService{})

	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(`{"student_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "student_id and internship_id are required" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestCreateApplicationUnknownInternshipReturns404(t *testing.T) {
	router := newApplicationRouter(&mockApplicationService{createErr: apperrors.ErrInternshipNotFound})

	body := `{"student_id":1,"internship_id":99}`
	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Internship not found" {
		t.Errorf("message = %q, want %q", resp.Message, "Internship not found")
	}
}

func TestCreateApplicationDuplicateReturns409(t *testing.T) {
	router := newApplicationRouter(&mockApplicationService{createErr: apperrors.ErrDuplicateApplication})

	body := `{"student_id":1,"internship_id":7}`
	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestGetStudentApplicationsRequiresQueryParam(t *testing.T) {
	router := newApplicationRouter(&mockApplicationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "student_id query parameter is required" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestGetStudentApplicationsReturnsRows(t *testing.T) {
	svc := &mockApplicationService{
		listResp: []*models.StudentApplication{
			{ApplicationID: 9, Status: "applied", InternshipID: 7, InternshipTitle: "Backend", CompanyName: "Acme"},
		},
	}
	router := newApplicationRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/applications?student_id=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.listedID != 3 {
		t.Errorf("service called with student id %d, want 3", svc.listedID)
	}

	var rows []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0]["internship_title"] != "Backend" {
		t.Errorf("internship_title = %v, want Backend", rows[0]["internship_title"])
	}
	if rows[0]["company_name"] != "Acme" {
		t.Errorf("company_name = %v, want Acme", rows[0]["company_name"])
	}
}
