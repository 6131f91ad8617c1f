package dto

// ErrorResponse is the error body for every failing endpoint
type ErrorResponse struct {
	Message string `json:"message" example:"Server error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// SuccessResponse represents a plain success message
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	DB     int    `json:"db" example:"1"`
}
