package dto

import "time"

// InternshipResponse is an internship listing row. Duration is rendered
// as a human string ("6 months") when the stored value is present.
type InternshipResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Company     string     `json:"company"`
	Duration    *string    `json:"duration"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	MentorID    int64      `json:"mentor_id"`
}
