// Package errors provides structured error types for the PanelCAM pipeline.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library surfaces
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the failure taxonomy of the planner:
//   - INVALID_* / DUPLICATE_* / BAD_*: tool configuration errors
//   - BOARD_* / NO_FEATURES: geometry errors
//   - MILL_TOO_BIG / NO_START_DRILL / NO_MILL: feasibility errors
//
// All three classes are unrecoverable at the point detected: callers
// propagate them to the CLI boundary, which decides process exit behavior.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateTool, "duplicate tool %d", num)
//	if errors.Is(err, errors.ErrCodeDuplicateTool) {
//	    // Handle configuration error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Tool configuration errors
	ErrCodeInvalidTool    Code = "INVALID_TOOL"
	ErrCodeDuplicateTool  Code = "DUPLICATE_TOOL"
	ErrCodeBadToolRef     Code = "BAD_TOOL_REF"
	ErrCodeInvalidCoolant Code = "INVALID_COOLANT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Geometry errors
	ErrCodeBoardTooThin Code = "BOARD_TOO_THIN"
	ErrCodeBoardTooTall Code = "BOARD_TOO_TALL"
	ErrCodeBadExtents   Code = "BAD_EXTENTS"
	ErrCodeNoFeatures   Code = "NO_FEATURES"

	// Feasibility errors
	ErrCodeMillTooBig   Code = "MILL_TOO_BIG"
	ErrCodeNoStartDrill Code = "NO_START_DRILL"
	ErrCodeNoMill       Code = "NO_MILL"

	// Input/output errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
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
