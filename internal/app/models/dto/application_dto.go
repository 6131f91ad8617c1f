package dto

// CreateApplicationRequest represents a new internship application
type CreateApplicationRequest struct {
	StudentID    int64  `json:"student_id" binding:"required"`
	InternshipID int64  `json:"internship_id" binding:"required"`
	Status       string `json:"status"` // Defaults to "applied"
}

// ApplicationCreatedResponse acknowledges a submitted application
type ApplicationCreatedResponse struct {
	Message       string `json:"message"`
	ApplicationID int64  `json:"application_id"`
}
