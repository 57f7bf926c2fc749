package attendance

import (
	"time"
)

// Record is the single source of truth for one employee's work-day.
// At most one record exists per (employee, date); once CheckOut is set the
// record is terminal.
type Record struct {
	ID         string
	EmployeeID string
	CompanyID  string

	// ShiftDefinitionID is resolved at check-in time and frozen thereafter.
	ShiftDefinitionID *string

	Date time.Time

	CheckIn    *time.Time
	CheckOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time

	IsLate      bool
	LateMinutes int

	IsEarlyLeave      bool
	EarlyLeaveMinutes int

	IsOverBreak          bool
	BreakDurationMinutes *int

	IsPotentialOvertime bool
	OvertimeMinutes     int

	TotalWorkMinutes *int

	CheckInLocation  *string
	CheckInNote      *string
	CheckOutLocation *string
	CheckOutNote     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayState is the implicit state of a work-day, derived from which nullable
// timestamps are set. It is never stored.
type DayState string

const (
	StateReadyToCheckIn DayState = "READY_TO_CHECK_IN"
	StateWorking        DayState = "WORKING"
	StateOnBreak        DayState = "ON_BREAK"
	StateCompleted      DayState = "COMPLETED"
)

// DeriveState is the single place the nullable-field combinations are read as
// a state. Callers must not re-implement this inference.
func DeriveState(rec *Record) DayState {
	switch {
	case rec == nil || rec.CheckIn == nil:
		return StateReadyToCheckIn
	case rec.CheckOut != nil:
		return StateCompleted
	case rec.BreakStart != nil && rec.BreakEnd == nil:
		return StateOnBreak
	default:
		return StateWorking
	}
}

// OnOpenBreak reports whether the record has a break started but not ended.
func (r *Record) OnOpenBreak() bool {
	return r.BreakStart != nil && r.BreakEnd == nil
}
