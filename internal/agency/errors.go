package agency

import "errors"

var (
	// ErrConfigNotFound is returned when a configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrMalformedConfig is returned when a configuration file cannot be parsed.
	ErrMalformedConfig = errors.New("configuration file is malformed")
)
