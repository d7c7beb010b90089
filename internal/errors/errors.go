// Package errors provides the error taxonomy and exit codes for the blockui CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes. Every failure kind shares ExitFailure; the kinds stay
// distinguishable through errors.Is on the sentinels.
const (
	// ExitSuccess covers completed and cancelled commands.
	ExitSuccess = 0

	// ExitFailure covers every fatal error.
	ExitFailure = 1
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a project validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "not a React project",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewCopyError creates a copy error for the given path.
func NewCopyError(message, location string, cause error) error {
	return &DetailError{
		Type:     "copy failed",
		Message:  message,
		Location: location,
		Cause:    errors.Join(ErrCopy, cause),
	}
}

// SelectionError reports a unit name that is not in the catalog.
// Valid holds the catalog so the caller can print it as remediation.
type SelectionError struct {
	Kind  string
	Name  string
	Valid []string
}

// Error implements the error interface.
func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Unwrap returns ErrSelection.
func (e *SelectionError) Unwrap() error {
	return ErrSelection
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// Kind returns a short label for the failure kind of err, used in debug logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrSelection):
		return "selection"
	case errors.Is(err, ErrDependencyInstall):
		return "dependency"
	case errors.Is(err, ErrCopy):
		return "copy"
	default:
		return "unknown"
	}
}
