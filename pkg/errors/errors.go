// Package errors provides structured error types for synteny.
//
// Two families of errors exist:
//   - Input errors raised when a scalar configuration value is rejected
//     (EMPTY_VALUE, NOT_A_NUMBER, TOO_SMALL, OUT_OF_RANGE) or a structured
//     input is malformed (INVALID_*).
//   - Lookup-precondition errors raised when data or filters reference an
//     entity that does not exist (NOT_FOUND, UNSUPPORTED_FEATURE). These are
//     data errors and are never retried or swallowed.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "feature %q", id)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // handle missing reference
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Scalar input errors
	ErrCodeEmptyValue Code = "EMPTY_VALUE"
	ErrCodeNotANumber Code = "NOT_A_NUMBER"
	ErrCodeTooSmall   Code = "TOO_SMALL"
	ErrCodeOutOfRange Code = "OUT_OF_RANGE"

	// Structured input errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Lookup-precondition errors
	ErrCodeNotFound           Code = "NOT_FOUND"
	ErrCodeUnsupportedFeature Code = "UNSUPPORTED_FEATURE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
