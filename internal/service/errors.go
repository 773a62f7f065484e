package service

import (
	"errors"
	"fmt"
)

// Error handling principles:
// 1. Validation failures are reported as field-scoped *ValidationError values
// 2. Exactly one validation error is surfaced per attempt (checks short-circuit)
// 3. Callers use errors.As to recover the offending field for presentation
// 4. No store mutation happens when a validation error is returned

// ErrValidation is the sentinel all registration validation errors wrap,
// so callers can check the whole class with errors.Is().
var ErrValidation = errors.New("validation failed")

// ValidationError is a field-scoped validation failure. Field names the
// offending input ("name", "email", "password", "user_type", "category");
// Message is human-readable and safe to show to the user.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap ties every ValidationError to ErrValidation for errors.Is checks.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a field-scoped validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
