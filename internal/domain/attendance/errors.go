package attendance

import "errors"

// Attendance domain errors. State violations and configuration gaps are
// sentinels so the HTTP layer can map them; infrastructure failures are
// wrapped errors that fall through to a generic 500.
var (
	// State violations
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("must check in first")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrAlreadyOnBreak    = errors.New("already on break")
	ErrNoActiveBreak     = errors.New("no active break")
	ErrBreakStillOpen    = errors.New("must end break before checking out")

	// Configuration gaps
	ErrNoShiftConfigured = errors.New("no shift configured for today")

	ErrRecordNotFound = errors.New("attendance record not found")
)
