package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config: nil pointer passed to loader")

	// ErrParsingConfig is returned when the environment cannot be parsed
	// into the destination struct, e.g. a required variable is missing.
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
