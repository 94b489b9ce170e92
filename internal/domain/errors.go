package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("state conflict")
	ErrForbidden   = errors.New("permission denied")
	ErrUnavailable = errors.New("unavailable")

	ErrLastAdmin          = errors.New("last admin protected")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrPersistFailed      = errors.New("persist failed")
	ErrInvariantViolation = errors.New("internal invariant violation")
)

// Replan workflow failures. Both are state conflicts, so
// errors.Is(err, ErrConflict) holds for either.
var (
	ErrInvalidState    = fmt.Errorf("invalid state: %w", ErrConflict)
	ErrAlreadyTerminal = fmt.Errorf("already started: %w", ErrConflict)
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError is shorthand for a ValidationError with a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
