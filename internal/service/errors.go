package service

import "errors"

// Common service-level errors.
var (
	// ErrTaskNotFound is returned when a task operation targets an ID that
	// does not exist.
	ErrTaskNotFound = errors.New("task not found")
)
