package attendance

// Pure time-accounting functions consumed by the engine, isolated for
// testability. All minute arguments are wall-clock offsets already normalized
// for overnight shifts by the caller; negative differences clamp to zero.

// LatenessResult reports how far past the grace window a check-in landed.
type LatenessResult struct {
	IsLate      bool
	LateMinutes int
}

// ComputeLateness counts minutes checked in past shift start plus grace.
// Any check-in at or before start+grace is on time.
func ComputeLateness(shiftStartMin, gracePeriodMin, checkInMin int) LatenessResult {
	late := checkInMin - shiftStartMin - gracePeriodMin
	if late < 0 {
		late = 0
	}
	return LatenessResult{IsLate: late > 0, LateMinutes: late}
}

// EarlyLeaveResult reports how long before shift end a check-out happened.
type EarlyLeaveResult struct {
	IsEarlyLeave bool
	EarlyMinutes int
}

// ComputeEarlyLeave counts minutes checked out before shift end.
func ComputeEarlyLeave(shiftEndMin, checkOutMin int) EarlyLeaveResult {
	early := shiftEndMin - checkOutMin
	if early < 0 {
		early = 0
	}
	return EarlyLeaveResult{IsEarlyLeave: early > 0, EarlyMinutes: early}
}

// OvertimeResult reports overrun past shift end and whether it clears the
// candidacy threshold. Candidacy never auto-approves pay; it only flags the
// record for downstream review.
type OvertimeResult struct {
	IsCandidate bool
	OTMinutes   int
}

// ComputeOvertimeCandidate counts minutes worked past shift end and flags the
// record once the overrun reaches thresholdMin.
func ComputeOvertimeCandidate(shiftEndMin, checkOutMin, thresholdMin int) OvertimeResult {
	ot := checkOutMin - shiftEndMin
	if ot < 0 {
		ot = 0
	}
	return OvertimeResult{IsCandidate: ot >= thresholdMin, OTMinutes: ot}
}

// BreakOverrunResult reports the break length and whether it exceeded the
// allowance.
type BreakOverrunResult struct {
	IsOverrun       bool
	DurationMinutes int
}

// ComputeBreakOverrun measures a finished break against allowedMin.
func ComputeBreakOverrun(breakStartMin, breakEndMin, allowedMin int) BreakOverrunResult {
	duration := breakEndMin - breakStartMin
	if duration < 0 {
		duration = 0
	}
	return BreakOverrunResult{IsOverrun: duration > allowedMin, DurationMinutes: duration}
}

// ComputeTotalWork derives net worked minutes from the span between check-in
// and check-out minus the recorded break.
func ComputeTotalWork(checkInMin, checkOutMin, breakDurationMin int) int {
	total := (checkOutMin - checkInMin) - breakDurationMin
	if total < 0 {
		total = 0
	}
	return total
}
