package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrNotAuthenticated  = errors.New("authentication credentials were not provided")
	// ErrPermissionDenied is reserved for operations on objects the caller can
	// see but not change. Orders are owner-scoped in storage, so a foreign
	// order resolves to ErrNotFound instead and nothing returns this today.
	ErrPermissionDenied  = errors.New("you do not have permission to perform this action")
	ErrIntegrityConflict = errors.New("integrity conflict")

	ErrInvalidRoute     = errors.New("invalid route")
	ErrInvalidReference = errors.New("referenced object does not exist")
	ErrSeatOutOfBounds  = errors.New("seat out of bounds")
	ErrSeatTaken        = errors.New("seat taken")
)

// NonFieldErrors is the field name used for object-level validation failures.
const NonFieldErrors = "non_field_errors"

// ValidationError is a rule or constraint violation tied to one input field.
type ValidationError struct {
	Field   string
	Message string
	Reason  error
}

func NewValidationError(field, message string, reason error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// ConflictError reports a lost race against a storage uniqueness constraint.
type ConflictError struct {
	Constraint string
	Message    string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrIntegrityConflict
}
