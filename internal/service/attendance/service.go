package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse-hr/attendance-backend-go/internal/config"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	txm database.TxManager
	attendance.Repository
	shifts   shift.Repository
	resolver shift.Resolver
	cfg      config.AttendanceConfig
	loc      *time.Location

	// now is swappable in tests
	now func() time.Time
}

func NewAttendanceService(
	txm database.TxManager,
	recordRepo attendance.Repository,
	shiftRepo shift.Repository,
	resolver shift.Resolver,
	cfg config.AttendanceConfig,
	loc *time.Location,
) *AttendanceServiceImpl {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		txm:        txm,
		Repository: recordRepo,
		shifts:     shiftRepo,
		resolver:   resolver,
		cfg:        cfg,
		loc:        loc,
		now:        time.Now,
	}
}

// identityFromContext extracts the employee and company identity from the JWT
// claims carried in ctx.
func identityFromContext(ctx context.Context) (employeeID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	companyID, ok = claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return employeeID, companyID, nil
}

// dateOf truncates t to its calendar day in the service's location.
func (s *AttendanceServiceImpl) dateOf(t time.Time) time.Time {
	y, m, d := t.In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

// timeString renders a timestamp the way all attendance responses do.
func timeString(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := timeString(*t)
	return &s
}

// shiftMinutes parses the definition's scheduled window. The resolver already
// validated these at check-in, but the definition may have been edited since,
// so a parse failure is still reported as a misconfiguration.
func shiftMinutes(def *shift.Definition) (startMin, endMin int, err error) {
	startMin, err = timeutil.ParseClock(def.StartTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start time: %v", shift.ErrMisconfigured, err)
	}
	endMin, err = timeutil.ParseClock(def.EndTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end time: %v", shift.ErrMisconfigured, err)
	}
	return startMin, endMin, nil
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResult{}, err
	}

	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.CheckInResult{}, err
	}

	now := s.now().In(s.loc)
	today := s.dateOf(now)

	var result attendance.CheckInResult
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.GetByEmployeeAndDate(ctx, employeeID, today, companyID)
		if err != nil {
			return fmt.Errorf("failed to look up today's record: %w", err)
		}
		if existing != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		def, err := s.resolver.Resolve(ctx, companyID, employeeID, today)
		if err != nil {
			return err
		}
		if def == nil {
			return attendance.ErrNoShiftConfigured
		}

		startMin, endMin, err := shiftMinutes(def)
		if err != nil {
			return err
		}

		grace := s.cfg.GracePeriodMinutes
		if def.GracePeriodMinutes != nil {
			grace = *def.GracePeriodMinutes
		}

		// A post-midnight arrival on an overnight shift counts against the
		// previous evening's start.
		checkInMin := timeutil.NormalizeToWindow(timeutil.MinuteOfDay(now), startMin, endMin)
		late := ComputeLateness(startMin, grace, checkInMin)

		rec := attendance.Record{
			EmployeeID:        employeeID,
			CompanyID:         companyID,
			ShiftDefinitionID: &def.ID,
			Date:              today,
			CheckIn:           &now,
			IsLate:            late.IsLate,
			LateMinutes:       late.LateMinutes,
			CheckInLocation:   req.Location,
			CheckInNote:       req.Note,
		}

		created, err := s.Create(ctx, rec)
		if err != nil {
			// a concurrent duplicate surfaces here as ErrAlreadyCheckedIn
			return err
		}

		result = attendance.CheckInResult{
			RecordID:    created.ID,
			CheckInTime: timeString(now),
			ShiftName:   def.Name,
			IsLate:      late.IsLate,
			LateMinutes: late.LateMinutes,
		}
		return nil
	})
	if err != nil {
		return attendance.CheckInResult{}, err
	}

	return result, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResult{}, err
	}

	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResult{}, err
	}

	now := s.now().In(s.loc)
	today := s.dateOf(now)

	var result attendance.CheckOutResult
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		// the open-session lookup is not keyed to today: an overnight worker
		// checking out after midnight still owns yesterday's record
		rec, err := s.GetOpen(ctx, employeeID, companyID)
		if err != nil {
			return fmt.Errorf("failed to look up open record: %w", err)
		}
		if rec == nil {
			return s.explainMissingOpenRecord(ctx, employeeID, today, companyID)
		}
		if rec.OnOpenBreak() {
			return attendance.ErrBreakStillOpen
		}

		if rec.ShiftDefinitionID == nil {
			return fmt.Errorf("record %s has no resolved shift", rec.ID)
		}
		def, err := s.shifts.GetByID(ctx, *rec.ShiftDefinitionID, companyID)
		if err != nil {
			return fmt.Errorf("failed to load shift definition: %w", err)
		}

		startMin, endRaw, err := shiftMinutes(&def)
		if err != nil {
			return err
		}

		// normalize everything onto the shift's continuous axis so overnight
		// windows compare correctly
		endMin := timeutil.NormalizeEnd(startMin, endRaw)
		nowMin := timeutil.NormalizeToWindow(timeutil.MinuteOfDay(now), startMin, endRaw)
		checkInMin := timeutil.NormalizeToWindow(timeutil.MinuteOfDay(*rec.CheckIn), startMin, endRaw)

		breakDur := 0
		if rec.BreakDurationMinutes != nil {
			breakDur = *rec.BreakDurationMinutes
		}

		early := ComputeEarlyLeave(endMin, nowMin)
		ot := ComputeOvertimeCandidate(endMin, nowMin, s.cfg.OvertimeThresholdMinutes)
		total := ComputeTotalWork(checkInMin, nowMin, breakDur)

		rec.CheckOut = &now
		rec.IsEarlyLeave = early.IsEarlyLeave
		rec.EarlyLeaveMinutes = early.EarlyMinutes
		rec.IsPotentialOvertime = ot.IsCandidate
		rec.OvertimeMinutes = ot.OTMinutes
		rec.TotalWorkMinutes = &total
		rec.CheckOutLocation = req.Location
		rec.CheckOutNote = req.Note

		if err := s.Update(ctx, *rec); err != nil {
			return fmt.Errorf("failed to persist check-out: %w", err)
		}

		result = attendance.CheckOutResult{
			RecordID:            rec.ID,
			CheckOutTime:        timeString(now),
			IsEarlyLeave:        early.IsEarlyLeave,
			EarlyLeaveMinutes:   early.EarlyMinutes,
			TotalWorkMinutes:    total,
			IsPotentialOvertime: ot.IsCandidate,
			OvertimeMinutes:     ot.OTMinutes,
		}
		return nil
	})
	if err != nil {
		return attendance.CheckOutResult{}, err
	}

	return result, nil
}

// explainMissingOpenRecord turns "no open record" into the precise state
// violation: never checked in versus already checked out.
func (s *AttendanceServiceImpl) explainMissingOpenRecord(ctx context.Context, employeeID string, date time.Time, companyID string) error {
	rec, err := s.GetByEmployeeAndDate(ctx, employeeID, date, companyID)
	if err != nil {
		return fmt.Errorf("failed to look up today's record: %w", err)
	}
	if rec != nil && rec.CheckOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}
	return attendance.ErrNotCheckedIn
}

// BreakStart implements attendance.Service.
func (s *AttendanceServiceImpl) BreakStart(ctx context.Context) (attendance.BreakStartResult, error) {
	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.BreakStartResult{}, err
	}

	now := s.now().In(s.loc)
	today := s.dateOf(now)

	var result attendance.BreakStartResult
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := s.GetReadyForBreak(ctx, employeeID, companyID)
		if err != nil {
			return fmt.Errorf("failed to look up record ready for break: %w", err)
		}
		if rec == nil {
			// distinguish an open break from not working at all; the open
			// session may belong to yesterday's overnight shift
			open, err := s.GetOpen(ctx, employeeID, companyID)
			if err != nil {
				return fmt.Errorf("failed to look up open record: %w", err)
			}
			if open != nil && open.OnOpenBreak() {
				return attendance.ErrAlreadyOnBreak
			}
			current, err := s.GetByEmployeeAndDate(ctx, employeeID, today, companyID)
			if err != nil {
				return fmt.Errorf("failed to look up today's record: %w", err)
			}
			if attendance.DeriveState(current) == attendance.StateCompleted {
				return attendance.ErrAlreadyCheckedOut
			}
			return attendance.ErrNotCheckedIn
		}

		rec.BreakStart = &now
		if err := s.Update(ctx, *rec); err != nil {
			return fmt.Errorf("failed to persist break start: %w", err)
		}

		result = attendance.BreakStartResult{
			RecordID:       rec.ID,
			BreakStartTime: timeString(now),
		}
		return nil
	})
	if err != nil {
		return attendance.BreakStartResult{}, err
	}

	return result, nil
}

// BreakEnd implements attendance.Service.
func (s *AttendanceServiceImpl) BreakEnd(ctx context.Context) (attendance.BreakEndResult, error) {
	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.BreakEndResult{}, err
	}

	now := s.now().In(s.loc)

	var result attendance.BreakEndResult
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := s.GetOnBreak(ctx, employeeID, companyID)
		if err != nil {
			return fmt.Errorf("failed to look up record on break: %w", err)
		}
		if rec == nil {
			return attendance.ErrNoActiveBreak
		}

		allowed := s.cfg.DefaultBreakMinutes
		if rec.ShiftDefinitionID != nil {
			def, err := s.shifts.GetByID(ctx, *rec.ShiftDefinitionID, companyID)
			if err != nil {
				return fmt.Errorf("failed to load shift definition: %w", err)
			}
			if def.AllowedBreakMinutes != nil {
				allowed = *def.AllowedBreakMinutes
			}
		}

		// a break running across midnight wraps its end onto the next day's
		// minute axis before the duration is measured
		breakStartMin := timeutil.MinuteOfDay(*rec.BreakStart)
		breakEndMin := timeutil.MinuteOfDay(now)
		if breakEndMin < breakStartMin {
			breakEndMin += timeutil.MinutesPerDay
		}
		overrun := ComputeBreakOverrun(breakStartMin, breakEndMin, allowed)

		rec.BreakEnd = &now
		rec.BreakDurationMinutes = &overrun.DurationMinutes
		rec.IsOverBreak = overrun.IsOverrun

		if err := s.Update(ctx, *rec); err != nil {
			return fmt.Errorf("failed to persist break end: %w", err)
		}

		result = attendance.BreakEndResult{
			RecordID:             rec.ID,
			BreakEndTime:         timeString(now),
			BreakDurationMinutes: overrun.DurationMinutes,
			IsOverBreak:          overrun.IsOverrun,
		}
		return nil
	})
	if err != nil {
		return attendance.BreakEndResult{}, err
	}

	return result, nil
}

// GetToday implements attendance.Service.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.TodayResult, error) {
	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.TodayResult{}, err
	}

	today := s.dateOf(s.now())

	rec, err := s.GetByEmployeeAndDate(ctx, employeeID, today, companyID)
	if err != nil {
		return attendance.TodayResult{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if rec == nil {
		// an overnight session opened yesterday evening is still the
		// caller's current work-day after midnight
		rec, err = s.GetOpen(ctx, employeeID, companyID)
		if err != nil {
			return attendance.TodayResult{}, fmt.Errorf("failed to look up open record: %w", err)
		}
	}

	result := attendance.TodayResult{
		State: attendance.DeriveState(rec),
		Date:  today.Format("2006-01-02"),
	}
	if rec != nil {
		result.Record = mapRecordToResponse(*rec)
	}
	return result, nil
}

func mapRecordToResponse(rec attendance.Record) *attendance.RecordResponse {
	return &attendance.RecordResponse{
		ID:                   rec.ID,
		EmployeeID:           rec.EmployeeID,
		Date:                 rec.Date.Format("2006-01-02"),
		ShiftDefinitionID:    rec.ShiftDefinitionID,
		CheckInTime:          timePtrToString(rec.CheckIn),
		CheckOutTime:         timePtrToString(rec.CheckOut),
		BreakStartTime:       timePtrToString(rec.BreakStart),
		BreakEndTime:         timePtrToString(rec.BreakEnd),
		IsLate:               rec.IsLate,
		LateMinutes:          rec.LateMinutes,
		IsEarlyLeave:         rec.IsEarlyLeave,
		EarlyLeaveMinutes:    rec.EarlyLeaveMinutes,
		IsOverBreak:          rec.IsOverBreak,
		BreakDurationMinutes: rec.BreakDurationMinutes,
		IsPotentialOvertime:  rec.IsPotentialOvertime,
		OvertimeMinutes:      rec.OvertimeMinutes,
		TotalWorkMinutes:     rec.TotalWorkMinutes,
		CheckInLocation:      rec.CheckInLocation,
		CheckInNote:          rec.CheckInNote,
		CheckOutLocation:     rec.CheckOutLocation,
		CheckOutNote:         rec.CheckOutNote,
	}
}
