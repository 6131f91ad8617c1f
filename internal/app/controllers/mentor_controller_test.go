package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/models"
)

func newMentorRouter(svc *mockMentorService) *gin.Engine {
	router := gin.New()
	ctrl := NewMentorController(svc)
	router.GET("/api/mentor/:id/students", ctrl.GetStudents)
	router.GET("/api/mentor/:id/summary", ctrl.GetSummary)
	return router
}

func TestMentorSummaryZeroes(t *testing.T) {
	router := newMentorRouter(&mockMentorService{summary: &models.MentorSummary{}})

	req := httptest.NewRequest(http.MethodGet, "/api/mentor/5/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	for _, key := range []string{"assignedStudents", "activeProjects", "pendingReviews"} {
		if got, ok := resp[key]; !ok || got != 0 {
			t.Errorf("%s = %d (present=%v), want 0", key, got, ok)
		}
	}
}

func TestMentorStudentsHidesApplicationID(t *testing.T) {
	skills := "Go"
	router := newMentorRouter(&mockMentorService{
		students: []*models.MentorStudent{
			{UserID: 1, Name: "Asha", Email: "asha@mail.com", Skills: &skills,
				ApplicationID: 12, ApplicationStatus: "applied", InternshipTitle: "Backend", InternshipID: 2},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/mentor/5/students", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var rows []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0]["user_id"] != float64(1) {
		t.Errorf("user_id = %v, want 1", rows[0]["user_id"])
	}
	if _, present := rows[0]["application_id"]; present {
		t.Error("application_id should not be serialized")
	}
}

func TestMentorBadIDReturns400(t *testing.T) {
	router := newMentorRouter(&mockMentorService{})

	req := httptest.NewRequest(http.MethodGet, "/api/mentor/abc/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
