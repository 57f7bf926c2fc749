package report

// MonthlySummary aggregates one employee's records over a calendar month.
// Sums come from the stored derived fields; the persisted flags and minutes
// are authoritative and are not re-derived here.
type MonthlySummary struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	TotalDays      int `json:"total_days"`
	LateDays       int `json:"late_days"`
	EarlyLeaveDays int `json:"early_leave_days"`
	OverBreakDays  int `json:"over_break_days"`

	TotalWorkMinutes       int `json:"total_work_minutes"`
	TotalOvertimeMinutes   int `json:"total_overtime_minutes"`
	TotalLateMinutes       int `json:"total_late_minutes"`
	TotalEarlyLeaveMinutes int `json:"total_early_leave_minutes"`
}

// CompanyDayStats aggregates all employees of a company for one date.
// Averages cover only the records carrying the relevant field.
type CompanyDayStats struct {
	CompanyID string `json:"company_id"`
	Date      string `json:"date"`

	CheckedIn          int `json:"checked_in"`
	OnTime             int `json:"on_time"`
	Late               int `json:"late"`
	Absent             int `json:"absent"`
	OvertimeCandidates int `json:"overtime_candidates"`

	// AverageCheckInTime is the mean check-in minute rendered as "HH:MM";
	// empty when nobody has checked in.
	AverageCheckInTime     string  `json:"average_check_in_time"`
	AverageLatenessMinutes float64 `json:"average_lateness_minutes"`
	AverageBreakMinutes    float64 `json:"average_break_minutes"`
}
