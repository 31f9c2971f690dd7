package vsort

import "errors"

var (
	// ErrUnrecognizedText is returned when a version contains alphabetic
	// content that fails the recognition gate and Lenient is off.
	ErrUnrecognizedText = errors.New("unrecognized text")

	// ErrMissingMajor is returned when no leading numeric segment exists.
	ErrMissingMajor = errors.New("missing major")
)
