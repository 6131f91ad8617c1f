package models

import "time"

// Application defines a student's request to join an internship
type Application struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	InternshipID int64     `json:"internshipId" db:"internship_id"`
	Status       string    `json:"status" db:"status"` // Written verbatim; defaults to "applied"
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// StudentApplication is an application row joined with its internship
// title and company, as returned for the student dashboard.
type StudentApplication struct {
	ApplicationID   int64  `json:"application_id" db:"application_id"`
	Status          string `json:"status" db:"status"`
	InternshipID    int64  `json:"internship_id" db:"internship_id"`
	InternshipTitle string `json:"internship_title" db:"internship_title"`
	CompanyName     string `json:"company_name" db:"company_name"`
}

// MentorStudent is one (student x application x internship) row for a
// mentor's internships. A student with several applications to the same
// mentor's internships produces several rows unless deduplication is
// enabled in config.
type MentorStudent struct {
	UserID            int64   `json:"user_id" db:"user_id"`
	Name              string  `json:"name" db:"name"`
	Email             string  `json:"email" db:"email"`
	Skills            *string `json:"skills" db:"skills"`
	ApplicationID     int64   `json:"-" db:"application_id"`
	ApplicationStatus string  `json:"application_status" db:"application_status"`
	InternshipTitle   string  `json:"internship_title" db:"internship_title"`
	InternshipID      int64   `json:"internship_id" db:"internship_id"`
}

// MentorSummary holds the three independent mentor dashboard counts
type MentorSummary struct {
	AssignedStudents int64 `json:"assignedStudents"`
	ActiveProjects   int64 `json:"activeProjects"`
	PendingReviews   int64 `json:"pendingReviews"`
}
