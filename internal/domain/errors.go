package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Task errors
	ErrTaskNotFound      = errors.New("task not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrConflictingUpdate = errors.New("task was modified concurrently")
	ErrInvalidDeadline   = errors.New("deadline must be in the future")

	// Permission errors
	ErrForbidden          = errors.New("actor not permitted to perform this action")
	ErrHierarchyViolation = errors.New("assignee must be strictly junior to creator")

	// Actor errors
	ErrActorNotFound = errors.New("actor not found")
	ErrActorInactive = errors.New("actor is inactive")
	ErrInvalidToken  = errors.New("invalid authentication token")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Validation errors
	ErrInvalidStatus = errors.New("invalid task status")
	ErrInvalidAction = errors.New("invalid task action")
)
