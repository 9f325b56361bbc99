// Package errors provides structured error types for fontroute.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP service
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - ROUTE_*: Rejected route insertions
//   - CORRUPTED, INTERNAL: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFont, "font %q already registered", name)
//	if errors.Is(err, errors.ErrCodeInvalidFont) {
//	    // Handle validation error
//	}
//
//	// Convert a graph result
//	if res := g.AddRoute(from, to, tag); !res.OK() {
//	    return errors.FromResult(res, "route %s -> %s", fromName, toName)
//	}
package errors

import (
	"errors"
	"fmt"

	"github.com/matzehuels/fontroute/pkg/fallback"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidFont   Code = "INVALID_FONT"
	ErrCodeInvalidTag    Code = "INVALID_TAG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFontNotFound Code = "FONT_NOT_FOUND"

	// Route rejections
	ErrCodeRouteExists Code = "ROUTE_EXISTS"
	ErrCodeRouteCycle  Code = "ROUTE_CYCLE"

	// Limits
	ErrCodeCapacity Code = "CAPACITY"

	// Internal errors
	ErrCodeCorrupted Code = "CORRUPTED"
	ErrCodeInternal  Code = "INTERNAL_ERROR"
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

// GetCodeOr is like [GetCode] but returns def when err carries no code.
func GetCodeOr(err error, def Code) Code {
	if code := GetCode(err); code != "" {
		return code
	}
	return def
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

// ResultCode maps a graph result to the error code describing it.
// It returns the empty code for [fallback.ResultOK].
func ResultCode(res fallback.Result) Code {
	switch res {
	case fallback.ResultOK:
		return ""
	case fallback.ResultExists:
		return ErrCodeRouteExists
	case fallback.ResultNotExists:
		return ErrCodeFontNotFound
	case fallback.ResultNotAllowed:
		return ErrCodeRouteCycle
	case fallback.ResultCorrupted:
		return ErrCodeCorrupted
	default:
		return ErrCodeInternal
	}
}

// FromResult converts a non-OK graph result into a coded error whose cause
// is the matching fallback sentinel. It returns nil for [fallback.ResultOK].
func FromResult(res fallback.Result, format string, args ...any) error {
	if res.OK() {
		return nil
	}
	return Wrap(ResultCode(res), res.Err(), format, args...)
}
