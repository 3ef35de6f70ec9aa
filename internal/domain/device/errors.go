package device

import "errors"

var (
	// ErrConfigNotFound is returned by the repository when no config file
	// exists; the service substitutes the hardcoded default.
	ErrConfigNotFound = errors.New("device config file not found")

	ErrMalformedConfig = errors.New("device config file contains malformed JSON")
)
