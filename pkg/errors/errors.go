// Package errors provides structured, typed errors for the row buffer:
// a small tagged-type wrapper over the standard error interface so callers
// can branch on error category (IsType) instead of matching message text.
package errors

import (
	"errors"

	stringpool "github.com/flowlane/rowbuffer/pkg/strings"
)

// ErrorType represents the category of error.
type ErrorType string

const (
	// ErrorTypeInternal represents internal system errors: allocator or
	// column-vector failures that should never be caused by caller input.
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeConfig represents misuse of the buffer's lifecycle or
	// configuration (e.g. setup_schema called twice, insert after close).
	ErrorTypeConfig ErrorType = "config"
)

// Error represents a structured error with a category and an optional cause.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return stringpool.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return stringpool.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new error with the given type and message.
func New(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Wrap wraps an existing error with additional context and a new type.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Type: errType, Message: message, Cause: err}
}

// IsType checks if err is an *Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}
