package action

import "errors"

var (
	// ErrMissingInput is returned when a required input was not supplied.
	ErrMissingInput = errors.New("input required and not supplied")
	// ErrInvalidOutput is returned when an output name or value cannot be encoded.
	ErrInvalidOutput = errors.New("invalid output")
)
