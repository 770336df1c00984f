package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record with the requested id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden is returned when the caller is not allowed to act on a record.
	ErrForbidden = errors.New("operation not allowed for this user")
	// ErrResumeRequired is returned when an employee applies without a resume.
	ErrResumeRequired = errors.New("resume required before applying")
	// ErrGenerationBusy is returned while another generation call is in flight.
	ErrGenerationBusy = errors.New("generation already in progress")
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// InvalidTransitionError reports an application status change out of a terminal state.
type InvalidTransitionError struct {
	From ApplicationStatus
	To   ApplicationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

// ServiceError reports a failed external generation or chat call.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("external service failed: %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
