package services

import (
	"context"
	"testing"

	"github.com/internhub/internhub/internal/app/models"
)

func TestListInternshipsRendersDuration(t *testing.T) {
	internships := newMockInternshipStore()
	six := 6
	internships.internships = []*models.Internship{
		{ID: 1, Title: "Backend", CompanyName: "Acme", Duration: &six, MentorID: 9},
		{ID: 2, Title: "Frontend", CompanyName: "Acme", MentorID: 9},
	}
	svc := NewInternshipService(internships)

	listed, err := svc.ListInternships(context.Background())
	if err != nil {
		t.Fatalf("ListInternships returned error: %v", err)
	}

	if len(listed) != 2 {
		t.Fatalf("len = %d, want 2", len(listed))
	}
	if listed[0].Duration == nil || *listed[0].Duration != "6 months" {
		t.Errorf("duration = %v, want \"6 months\"", listed[0].Duration)
	}
	if listed[1].Duration != nil {
		t.Errorf("nil duration rendered as %q", *listed[1].Duration)
	}
	if listed[0].Company != "Acme" {
		t.Errorf("company = %q, want %q", listed[0].Company, "Acme")
	}
}

func TestListInternshipsCaches(t *testing.T) {
	internships := newMockInternshipStore()
	svc := NewInternshipService(internships)

	if _, err := svc.ListInternships(context.Background()); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if _, err := svc.ListInternships(context.Background()); err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if internships.getAllCalls != 1 {
		t.Errorf("store queried %d times, want 1 (cached)", internships.getAllCalls)
	}
}
