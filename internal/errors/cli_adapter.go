package errors

import (
	"fmt"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool) *CLIErrorAdapter {
	return &CLIErrorAdapter{verbose: verbose}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	sge, ok := err.(*SiteGenError)
	if !ok {
		return 1
	}

	switch sge.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryTemplate, CategoryRender, CategoryFileSystem:
		return 11 // Build error
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

	sge, ok := err.(*SiteGenError)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}

	if a.verbose {
		return sge.Error()
	}

	msg := sge.Message
	if sge.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, sge.Cause)
	}
	return fmt.Sprintf("Error: %s", msg)
}
