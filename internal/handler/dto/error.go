package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/azgroup/delega/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
//
// Forbidden and hierarchy violations are policy rejections worth
// explaining to the user; illegal transitions and conflicting updates
// signal a stale client that should refresh, so they map to 409.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Task errors
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "TASK_NOT_FOUND", message
	case errors.Is(err, domain.ErrIllegalTransition):
		return http.StatusConflict, "ILLEGAL_TRANSITION", message
	case errors.Is(err, domain.ErrConflictingUpdate):
		return http.StatusConflict, "CONFLICTING_UPDATE", message

	// Permission errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", message
	case errors.Is(err, domain.ErrHierarchyViolation):
		return http.StatusForbidden, "HIERARCHY_VIOLATION", message

	// Actor errors
	case errors.Is(err, domain.ErrActorNotFound):
		return http.StatusNotFound, "ACTOR_NOT_FOUND", message
	case errors.Is(err, domain.ErrActorInactive):
		return http.StatusUnauthorized, "ACTOR_INACTIVE", message
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN", message

	// Notification errors
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, "NOTIFICATION_NOT_FOUND", message

	// Validation errors
	case errors.Is(err, domain.ErrInvalidDeadline):
		return http.StatusUnprocessableEntity, "INVALID_DEADLINE", message
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	// Default: internal server error
	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
