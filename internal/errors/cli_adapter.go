package errors

import (
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if ize, ok := err.(*IzError); ok {
		return a.exitCodeFromIz(ize)
	}

	return 1
}

// exitCodeFromIz maps IzError to exit codes. 130 and 143 stay reserved for
// signal-triggered termination.
func (a *CLIErrorAdapter) exitCodeFromIz(err *IzError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryGit:
		return 8 // External system error
	case CategoryCommand, CategoryFileSystem:
		return 11 // Workspace or subprocess error
	case CategoryRuntime:
		return 12 // Runtime error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if ize, ok := err.(*IzError); ok {
		return a.formatIz(ize)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatIz formats an IzError for display. The cause chain is always shown;
// the stage message alone rarely tells the user what to fix.
func (a *CLIErrorAdapter) formatIz(err *IzError) string {
	if a.verbose {
		return err.Error()
	}

	msg := err.Message
	if err.Cause != nil {
		msg = fmt.Sprintf("%s: %v", err.Message, err.Cause)
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return msg
	default:
		return fmt.Sprintf("%s: %s", err.Category, msg)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if ize, ok := err.(*IzError); ok {
		return ize.Category == CategoryInternal ||
			ize.Category == CategoryRuntime ||
			ize.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if ize, ok := err.(*IzError); ok {
		level := a.slogLevelFromIzSeverity(ize.Severity)
		attrs := []slog.Attr{
			slog.String("category", string(ize.Category)),
		}

		a.logger.LogAttrs(nil, level, ize.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevelFromIzSeverity converts IzError severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromIzSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
