// Package errors provides sentinel errors, structured error details and exit
// codes for the mcpstack-tool CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates one or more tool names broke their naming convention.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a required file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the filesystem is in a state the operation cannot reconcile.
	ErrConflict = errors.New("conflict")
)

// Exit codes returned by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates name validation failed.
	ExitValidationError = 2

	// ExitNotFound indicates a required resource such as the scaffold was missing.
	ExitNotFound = 5
)

// ExitError wraps an error with the exit code the process should terminate with.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command already reported the error to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
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

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// DetailError is an error with the extra lines the CLI prints under it: where
// it happened, which name field it concerns and how to fix it.
type DetailError struct {
	// Type is the error category, e.g. "validation failed".
	Type string

	// Message may span several lines; each is indented on output.
	Message string

	// Location is the file or directory involved.
	Location string

	// Field is the name field involved.
	Field string

	// Hint is printed last.
	Hint string

	// Cause is the sentinel the error unwraps to.
	Cause error
}

// Error renders the error as a header, labelled details, the indented
// message and an optional hint.
func (e *DetailError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Type)
	for _, d := range [][2]string{{"Location", e.Location}, {"Field", e.Field}} {
		if d[1] != "" {
			fmt.Fprintf(&b, "  %s: %s\n", d[0], d[1])
		}
	}
	for _, line := range strings.Split(e.Message, "\n") {
		fmt.Fprintf(&b, "\n  %s", line)
	}
	b.WriteString("\n")
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s\n", e.Hint)
	}
	return b.String()
}

// Unwrap returns the sentinel.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

func detail(cause error, typ, message, location, field, hint string) error {
	return &DetailError{Type: typ, Message: message, Location: location, Field: field, Hint: hint, Cause: cause}
}

// NewValidationError reports names that broke their convention.
func NewValidationError(message, field, hint string) error {
	return detail(ErrValidation, "validation failed", message, "", field, hint)
}

// NewNotFoundError reports a missing file or directory at location.
func NewNotFoundError(message, location, hint string) error {
	return detail(ErrNotFound, "not found", message, location, "", hint)
}

// NewConflictError reports a path whose current state blocks the operation.
func NewConflictError(message, location, hint string) error {
	return detail(ErrConflict, "conflict", message, location, "", hint)
}
