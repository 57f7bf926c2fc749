package attendance

import (
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	Location *string `json:"location"`
	Note     *string `json:"note"`
}

func (r *CheckInRequest) Validate() error {
	return validateLocationNote(r.Location, r.Note)
}

type CheckOutRequest struct {
	Location *string `json:"location"`
	Note     *string `json:"note"`
}

func (r *CheckOutRequest) Validate() error {
	return validateLocationNote(r.Location, r.Note)
}

func validateLocationNote(location, note *string) error {
	var errs validator.ValidationErrors

	if location != nil && len(*location) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must not exceed 255 characters",
		})
	}
	if note != nil && len(*note) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckInResult carries everything the transport layer needs to phrase the
// outcome; the engine does not pick a message.
type CheckInResult struct {
	RecordID    string `json:"record_id"`
	CheckInTime string `json:"check_in_time"`
	ShiftName   string `json:"shift_name"`
	IsLate      bool   `json:"is_late"`
	LateMinutes int    `json:"late_minutes"`
}

// CheckOutResult reports every accounting outcome independently. Which one is
// surfaced as the headline message is a presentation decision.
type CheckOutResult struct {
	RecordID            string `json:"record_id"`
	CheckOutTime        string `json:"check_out_time"`
	IsEarlyLeave        bool   `json:"is_early_leave"`
	EarlyLeaveMinutes   int    `json:"early_leave_minutes"`
	TotalWorkMinutes    int    `json:"total_work_minutes"`
	IsPotentialOvertime bool   `json:"is_potential_overtime"`
	OvertimeMinutes     int    `json:"overtime_minutes"`
}

type BreakStartResult struct {
	RecordID       string `json:"record_id"`
	BreakStartTime string `json:"break_start_time"`
}

type BreakEndResult struct {
	RecordID             string `json:"record_id"`
	BreakEndTime         string `json:"break_end_time"`
	BreakDurationMinutes int    `json:"break_duration_minutes"`
	IsOverBreak          bool   `json:"is_over_break"`
}

// TodayResult is the read-only view of the caller's current work-day.
type TodayResult struct {
	State  DayState        `json:"state"`
	Date   string          `json:"date"`
	Record *RecordResponse `json:"record,omitempty"`
}

type RecordResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	Date                 string  `json:"date"`
	ShiftDefinitionID    *string `json:"shift_definition_id,omitempty"`
	CheckInTime          *string `json:"check_in_time,omitempty"`
	CheckOutTime         *string `json:"check_out_time,omitempty"`
	BreakStartTime       *string `json:"break_start_time,omitempty"`
	BreakEndTime         *string `json:"break_end_time,omitempty"`
	IsLate               bool    `json:"is_late"`
	LateMinutes          int     `json:"late_minutes"`
	IsEarlyLeave         bool    `json:"is_early_leave"`
	EarlyLeaveMinutes    int     `json:"early_leave_minutes"`
	IsOverBreak          bool    `json:"is_over_break"`
	BreakDurationMinutes *int    `json:"break_duration_minutes,omitempty"`
	IsPotentialOvertime  bool    `json:"is_potential_overtime"`
	OvertimeMinutes      int     `json:"overtime_minutes"`
	TotalWorkMinutes     *int    `json:"total_work_minutes,omitempty"`
	CheckInLocation      *string `json:"check_in_location,omitempty"`
	CheckInNote          *string `json:"check_in_note,omitempty"`
	CheckOutLocation     *string `json:"check_out_location,omitempty"`
	CheckOutNote         *string `json:"check_out_note,omitempty"`
}
