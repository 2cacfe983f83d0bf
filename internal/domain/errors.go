package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every entity validation failure. Callers
// can match the whole family with errors.Is(err, ErrValidation) or a
// specific field error with its own sentinel.
var ErrValidation = errors.New("validation failed")

// Field-level validation errors, each wrapping ErrValidation.
var (
	// ErrEmptyUsername is returned when a username is blank.
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrValidation)

	// ErrEmptyHashedPassword is returned when a stored user is missing its hash.
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)

	// ErrEmptyTaskName is returned when a task name is blank.
	ErrEmptyTaskName = fmt.Errorf("%w: task name cannot be empty", ErrValidation)
)
