package models

import "time"

// Internship defines the internship model based on the 'internships' table.
// Internships are created out-of-band (seed data) and read-only via the API.
type Internship struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	CompanyName string     `json:"companyName" db:"company_name"`
	Duration    *int       `json:"duration,omitempty" db:"duration"` // Duration in months (nullable)
	StartDate   *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date"`
	MentorID    int64      `json:"mentorId" db:"mentor_id"` // Owning mentor user
}
