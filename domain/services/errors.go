package services

import "errors"

// Business errors surfaced by the service layer. Handlers translate these into
// HTTP statuses; anything else is treated as an internal error.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	// ErrNotTaskOwner: only the creator may delete.
	ErrNotTaskOwner = errors.New("not the task creator")
	// ErrNotTaskParticipant: status changes require creator or assignee.
	ErrNotTaskParticipant = errors.New("not the task creator or assignee")
)
