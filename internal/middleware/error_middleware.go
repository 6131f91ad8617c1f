package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/models/dto"
	"github.com/internhub/internhub/internal/pkg/apperrors"
	"github.com/internhub/internhub/internal/pkg/logger"
)

// HandleAPIError translates a service error into an HTTP status and the
// flat `{message}` error body. Unknown errors degrade to a generic 500
// so internals never leak to the client.
func HandleAPIError(ctx *gin.Context, err error) {
	status, message := mapError(err)

	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Err(err).
		Int("status", status).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method).
		Msg("Request failed")

	ctx.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

// mapError resolves a sentinel or CustomError to a status code and a
// client-facing message.
func mapError(err error) (int, string) {
	// CustomError carries its own message; the wrapped sentinel picks
	// the status.
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		return statusForSentinel(customErr.Err), customErr.Error()
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenRevoked):
		return http.StatusUnauthorized, "Invalid or expired token"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, apperrors.ErrInternshipNotFound):
		return http.StatusNotFound, "Internship not found"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, "User with this email already exists"
	case errors.Is(err, apperrors.ErrDuplicateApplication):
		return http.StatusConflict, "Application already submitted for this internship"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, apperrors.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, "Invalid request"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}

// statusForSentinel maps the sentinel wrapped inside a CustomError
func statusForSentinel(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
