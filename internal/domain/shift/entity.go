package shift

import (
	"time"
)

// ApplicabilityMode says how a shift definition attaches to calendar dates.
type ApplicabilityMode string

const (
	// ModeSpecificDates pins the definition to an explicit set of dates.
	ModeSpecificDates ApplicabilityMode = "specific-dates"
	// ModeRecurringWeekly repeats the definition on a set of weekdays.
	ModeRecurringWeekly ApplicabilityMode = "recurring-weekly"
	// ModeCompanyDefault is the weekday-scoped fallback for the whole company.
	ModeCompanyDefault ApplicabilityMode = "company-default"
)

var ApplicabilityModeValues = []string{
	string(ModeSpecificDates),
	string(ModeRecurringWeekly),
	string(ModeCompanyDefault),
}

// Definition is one configured work pattern for a company. Scheduled times are
// wall-clock "HH:MM" strings; the resolver validates them before the engine
// ever does arithmetic on them.
type Definition struct {
	ID        string
	CompanyID string
	Name      string

	StartTime string
	EndTime   string

	BreakStartTime *string
	BreakEndTime   *string

	// AllowedBreakMinutes overrides the configured default when set.
	AllowedBreakMinutes *int
	// GracePeriodMinutes overrides the configured default when set.
	GracePeriodMinutes *int

	Mode ApplicabilityMode
	// Weekdays uses time.Weekday numbering, 0=Sunday..6=Saturday.
	Weekdays []int
	// Dates applies only to ModeSpecificDates definitions.
	Dates []time.Time
	// EmployeeIDs is the assignment set; empty means open to all employees.
	EmployeeIDs []string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssignedTo reports whether the definition covers the employee. An empty
// assignment set means the definition is open to every employee.
func (d *Definition) AssignedTo(employeeID string) bool {
	if len(d.EmployeeIDs) == 0 {
		return true
	}
	for _, id := range d.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// AppliesOnWeekday reports whether the definition's weekday set contains day.
func (d *Definition) AppliesOnWeekday(day time.Weekday) bool {
	for _, wd := range d.Weekdays {
		if wd == int(day) {
			return true
		}
	}
	return false
}

// AppliesOnDate reports whether the definition's explicit date set contains
// the calendar day of date.
func (d *Definition) AppliesOnDate(date time.Time) bool {
	y, m, day := date.Date()
	for _, dt := range d.Dates {
		dy, dm, dd := dt.Date()
		if dy == y && dm == m && dd == day {
			return true
		}
	}
	return false
}
