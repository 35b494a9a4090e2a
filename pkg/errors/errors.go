// Package errors provides structured error types for pathpane.
//
// Every failure the graph engine, canvas and renderers report is a coded
// [*Error], so callers (CLI, HTTP server) can branch on the category
// without string matching:
//   - NOT_FOUND: an index does not exist in a graph, layout or edge list
//   - UNREACHABLE: no path exists between a source and a target
//   - OUT_OF_BOUNDS: a canvas coordinate outside the grid
//   - INVALID_INPUT: malformed arguments (negative weight, empty grid, ...)
//   - CYCLIC_GRAPH: an acyclic-only traversal met a cycle
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "node %d does not exist", i)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // Handle missing node
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render frame %d", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Lookup errors
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeOutOfBounds Code = "OUT_OF_BOUNDS"

	// Graph errors
	ErrCodeUnreachable Code = "UNREACHABLE"
	ErrCodeCyclicGraph Code = "CYCLIC_GRAPH"

	// Network errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// NotFound is shorthand for New(ErrCodeNotFound, ...).
func NotFound(format string, args ...any) *Error {
	return New(ErrCodeNotFound, format, args...)
}

// Unreachable is shorthand for New(ErrCodeUnreachable, ...).
func Unreachable(format string, args ...any) *Error {
	return New(ErrCodeUnreachable, format, args...)
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

// Process exit codes returned by [ExitCode].
const (
	ExitOK          = 0
	ExitFailure     = 1 // any failure without a more specific code
	ExitUsage       = 2 // invalid arguments, files or coordinates
	ExitNotFound    = 3
	ExitUnreachable = 4 // the search finished without reaching the target
)

// ExitCode maps err to a process exit status so that scripts can tell a
// missing path apart from bad input.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidPath, ErrCodeOutOfBounds:
		return ExitUsage
	case ErrCodeNotFound:
		return ExitNotFound
	case ErrCodeUnreachable:
		return ExitUnreachable
	default:
		return ExitFailure
	}
}
