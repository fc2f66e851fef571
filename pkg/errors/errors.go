// Package errors provides structured error types for the hedron application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND_*: Resource not found
//   - TOPOLOGY_*: Mesh topology violations
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "failed to open %s", path)
//
// Errors from the mesh core carry sentinel values rather than codes; use
// [FromMesh] at the application boundary to translate them.
package errors

import (
	"errors"
	"fmt"

	"github.com/hedron-dev/hedron/pkg/mesh"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidTransform Code = "INVALID_TRANSFORM"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Topology errors
	ErrCodeTopologyNotFound  Code = "TOPOLOGY_NOT_FOUND"
	ErrCodeTopologyConflict  Code = "TOPOLOGY_CONFLICT"
	ErrCodeTopologyMalformed Code = "TOPOLOGY_MALFORMED"
	ErrCodeArity             Code = "ARITY_VIOLATION"
	ErrCodeGeometry          Code = "GEOMETRY_UNSUPPORTED"

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

// FromMesh translates a mesh sentinel error into a coded Error, wrapping
// the original for errors.Is chains. Errors that carry no recognized
// sentinel map to ErrCodeInternal.
func FromMesh(err error, format string, args ...any) *Error {
	return Wrap(meshCode(err), err, format, args...)
}

func meshCode(err error) Code {
	switch {
	case errors.Is(err, mesh.ErrTopologyNotFound):
		return ErrCodeTopologyNotFound
	case errors.Is(err, mesh.ErrTopologyConflict):
		return ErrCodeTopologyConflict
	case errors.Is(err, mesh.ErrTopologyMalformed):
		return ErrCodeTopologyMalformed
	case errors.Is(err, mesh.ErrArityNonPolygonal),
		errors.Is(err, mesh.ErrArityConflict),
		errors.Is(err, mesh.ErrArityNonUniform):
		return ErrCodeArity
	case errors.Is(err, mesh.ErrGeometry):
		return ErrCodeGeometry
	default:
		return ErrCodeInternal
	}
}
