package repository

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// NotFoundError reports a point lookup that found nothing.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports malformed or logically inconsistent input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a ValidationError from a format string.
func Invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports an id collision on create.
type ConflictError struct {
	Entity string
	ID     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.ID)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// CascadeError collects the steps of a cascading delete that failed. The
// primary delete has already happened when it is returned.
type CascadeError struct {
	Entity string
	ID     string
	Err    error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade after deleting %s %q incomplete: %v", e.Entity, e.ID, e.Err)
}

func (e *CascadeError) Unwrap() error { return e.Err }
