package logslice

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to
// tell input mistakes (ErrInvalidDate, ErrInvalidConfig) apart from file
// conditions (ErrEmptyFile, ErrClosed). ErrNoMatches is a completion
// status, not a failure: the search ran, the range resolved, and zero
// lines carried the target date.
var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrEmptyFile     = errors.New("empty log file")
	ErrClosed        = errors.New("file is closed")
	ErrNoMatches     = errors.New("no records for date")
)
