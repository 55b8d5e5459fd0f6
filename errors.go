package chartprobe

import (
	"errors"
	"fmt"
)

// RuntimeError represents an operational error that should lead to exit code 2
// Examples include configuration errors, file not found, etc.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// NewRuntimeError creates a new RuntimeError
func NewRuntimeError(err error) *RuntimeError {
	return &RuntimeError{Err: err}
}

// IsRuntimeError checks if the error is or wraps a RuntimeError
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return err != nil && errors.As(err, &runtimeErr)
}

// CaseFailureError represents failed probe cases (exit code 1)
type CaseFailureError struct {
	Message string
}

func (e *CaseFailureError) Error() string {
	return fmt.Sprintf("case failure: %s", e.Message)
}

// NewCaseFailureError creates a new CaseFailureError
func NewCaseFailureError(message string) *CaseFailureError {
	return &CaseFailureError{Message: message}
}

// IsCaseFailureError checks if the error is or wraps a CaseFailureError
func IsCaseFailureError(err error) bool {
	var caseErr *CaseFailureError
	return err != nil && errors.As(err, &caseErr)
}
