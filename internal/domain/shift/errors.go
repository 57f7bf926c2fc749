package shift

import "errors"

// Shift domain errors
var (
	// ErrMisconfigured means the resolved definition carries an unparseable
	// scheduled time. Surfaced at resolution time instead of silently reading
	// a garbled time as midnight.
	ErrMisconfigured = errors.New("shift definition has invalid scheduled times")

	ErrShiftNotFound = errors.New("shift definition not found")
)
