package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Registration and input errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrDoubleAnswer  = errors.New("question answered more than once")
	ErrMissingAnswer = errors.New("missing answer")
	ErrUsernameTaken = errors.New("username already taken")

	// Player errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrIncorrectPassword = errors.New("incorrect password")

	// Simulation errors
	ErrUnknownActivity = errors.New("unknown activity")

	// Storage errors
	ErrPersistenceFailure = errors.New("persistence failure")
)

// FieldError reports a problem with a single registration field
type FieldError struct {
	Field  Field
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Err, e.Reason)
	}
	return fmt.Sprintf("%s for %s: %s", e.Err, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
