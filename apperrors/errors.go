package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the repository layer. Controllers map these onto
// HTTP statuses (404, 409, 400) instead of guessing from empty results.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("record already exists")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("access denied")
)

// ValidationError carries a field -> message map for create/update
// endpoints that report per-field problems.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError from a field map.
func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// NotFound wraps ErrNotFound with a description of the missing record.
func NotFound(entity string, id interface{}) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}

// Forbidden wraps ErrForbidden with the reason access was refused.
func Forbidden(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrForbidden)
}

// Conflict wraps ErrConflict with the offending field.
func Conflict(entity, field string) error {
	return fmt.Errorf("%s with that %s: %w", entity, field, ErrConflict)
}
