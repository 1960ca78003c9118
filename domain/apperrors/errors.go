// Package apperrors defines the error taxonomy shared by the service and
// HTTP layers: client-fault validation errors, not-found conditions and
// unexpected persistence failures.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound is returned when an identifier has no matching record.
	ErrTaskNotFound = errors.New("task not found")

	// ErrPersistence marks unexpected store failures. The underlying cause
	// is wrapped and only surfaced in development mode.
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError rejects malformed, missing or out-of-enum input. It names
// the offending field and, where applicable, the allowed values and the
// value received.
type ValidationError struct {
	Field         string
	Message       string
	ValidOptions  []string
	ReceivedValue string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-level rejection without enum context.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewEnumError builds a rejection for a value outside a closed enumeration.
func NewEnumError(field, received string, allowed []string) *ValidationError {
	return &ValidationError{
		Field:         field,
		Message:       fmt.Sprintf("invalid %s value", field),
		ValidOptions:  allowed,
		ReceivedValue: received,
	}
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Persistence wraps an unexpected store error so callers can distinguish it
// from not-found and validation failures.
func Persistence(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
