package errors

import "fmt"

// Convenience functions for common error patterns

// Config errors

func ConfigError(cause error) *IzError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to read izconfig.json")
}

func CommandNotFound(name string) *IzError {
	return New(CategoryConfig, SeverityFatal, fmt.Sprintf("Command '%s' not found in izconfig.json", name)).
		WithContext("command", name)
}

// Input errors

func ParamError(cause error) *IzError {
	return Wrap(cause, CategoryValidation, SeverityFatal, "invalid --param value")
}

func TemplateError(cause error) *IzError {
	return Wrap(cause, CategoryValidation, SeverityFatal, "command template resolution failed")
}

// Workspace errors

func WorkspaceError(operation string, cause error) *IzError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "workspace operation failed").
		WithContext("operation", operation)
}

// Git errors

func CheckoutError(cause error) *IzError {
	return Wrap(cause, CategoryGit, SeverityFatal, "failed to checkout commit")
}

// Process errors

func ExecError(cause error) *IzError {
	return Wrap(cause, CategoryCommand, SeverityError, "failed to execute command")
}

// Internal errors

func InternalError(message string, cause error) *IzError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
