package schedule

import "errors"

var (
	// Document Store Errors
	ErrMalformedDocument = errors.New("schedule file contains malformed JSON")

	// Normalizer Errors
	ErrUnrecognizedShape = errors.New("schedule document has an unrecognized shape")
)
