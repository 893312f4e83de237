package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrSessionConflict  = errors.New("session conflict")
	ErrGenerationFailed = errors.New("exercise generation failed")
	ErrPersistence      = errors.New("persistence failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// MissingCardsError is returned when a grading request references flashcards
// that do not exist or belong to another user. It unwraps to ErrNotFound.
type MissingCardsError struct {
	IDs []uuid.UUID
}

func (e *MissingCardsError) Error() string {
	return fmt.Sprintf("flashcards not found: %v", e.IDs)
}

func (e *MissingCardsError) Unwrap() error { return ErrNotFound }

// SessionConflictError lists flashcards that were graded by another session
// after the current session started. It unwraps to ErrSessionConflict.
type SessionConflictError struct {
	IDs []uuid.UUID
}

func (e *SessionConflictError) Error() string {
	return fmt.Sprintf("flashcards graded by another session: %v", e.IDs)
}

func (e *SessionConflictError) Unwrap() error { return ErrSessionConflict }
