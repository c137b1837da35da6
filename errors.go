package modsheet

import "errors"

// Common errors used throughout the modsheet package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrNoStylesheets indicates no stylesheet sources matched the configured patterns.
	ErrNoStylesheets = errors.New("no stylesheet sources found")
	// ErrEmptyStylesheetPattern indicates a configured glob pattern was blank.
	ErrEmptyStylesheetPattern = errors.New("empty stylesheet pattern")
)
