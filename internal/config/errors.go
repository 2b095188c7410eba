package config

import "errors"

// Validation errors returned by Config.Validate. Package-level
// sentinels so callers can branch with errors.Is while the messages
// stay readable on the CLI boundary.
var (
	// ErrConflictingSelection is returned when both --filter and
	// --index are given; the selection must come from exactly one.
	ErrConflictingSelection = errors.New("conflicting selection: --filter and --index cannot be used together")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidFetchTimeout is returned when the fetch timeout is not
	// positive.
	ErrInvalidFetchTimeout = errors.New("invalid fetch timeout: must be positive")

	// ErrNoLanguage is returned when the PX language is empty.
	ErrNoLanguage = errors.New("no dataset language specified")
)
