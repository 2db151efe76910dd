// Package errors provides a lightweight structured error type (IzError)
// for category-based classification and exit-code selection in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of an iz error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// External system integration errors
	CategoryGit ErrorCategory = "git"

	// Workspace and subprocess errors
	CategoryCommand    ErrorCategory = "command"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// IzError is a structured error with category, severity, and context
type IzError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for IzError
type ContextFields map[string]any

// Error implements the error interface
func (e *IzError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *IzError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *IzError) WithContext(key string, value any) *IzError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new IzError
func New(category ErrorCategory, severity ErrorSeverity, message string) *IzError {
	return &IzError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new IzError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *IzError {
	return &IzError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ize, ok := err.(*IzError); ok {
		return ize.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not an IzError
func GetCategory(err error) ErrorCategory {
	if ize, ok := err.(*IzError); ok {
		return ize.Category
	}
	return CategoryInternal
}

// ValidationError creates a new validation error (invalid CLI input)
func ValidationError(message string) *IzError {
	return &IzError{
		Category: CategoryValidation,
		Severity: SeverityFatal,
		Message:  message,
	}
}

// WrapError wraps an existing error with a new IzError at error severity
func WrapError(err error, category ErrorCategory, message string) *IzError {
	return &IzError{
		Category: category,
		Severity: SeverityError,
		Message:  message,
		Cause:    err,
	}
}
