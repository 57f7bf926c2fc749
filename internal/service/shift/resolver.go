package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/timeutil"
)

type ResolverImpl struct {
	shift.Repository
}

func NewResolver(repo shift.Repository) shift.Resolver {
	return &ResolverImpl{Repository: repo}
}

// Resolve implements shift.Resolver. Precedence, first match wins:
// specific-date override, then recurring weekly pattern, then company
// default. Candidates arrive newest-first, so when two specific-date
// definitions collide the most recently created one wins. A nil result with
// nil error means no shift is configured, e.g. a day off.
func (r *ResolverImpl) Resolve(ctx context.Context, companyID string, employeeID string, date time.Time) (*shift.Definition, error) {
	candidates, err := r.FindCandidates(ctx, companyID, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find shift candidates: %w", err)
	}

	resolved := pick(candidates, employeeID, date)
	if resolved == nil {
		return nil, nil
	}

	if err := validateTimes(resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

func pick(candidates []shift.Definition, employeeID string, date time.Time) *shift.Definition {
	weekday := date.Weekday()

	for i := range candidates {
		d := &candidates[i]
		if d.Mode == shift.ModeSpecificDates && d.AppliesOnDate(date) && d.AssignedTo(employeeID) {
			return d
		}
	}

	for i := range candidates {
		d := &candidates[i]
		if d.Mode == shift.ModeRecurringWeekly && d.AssignedTo(employeeID) && d.AppliesOnWeekday(weekday) {
			return d
		}
	}

	// The company default applies by weekday alone, independent of the
	// assignment set.
	for i := range candidates {
		d := &candidates[i]
		if d.Mode == shift.ModeCompanyDefault && d.AppliesOnWeekday(weekday) {
			return d
		}
	}

	return nil
}

// validateTimes rejects definitions whose scheduled times cannot be parsed.
// A garbled start time must not silently read as midnight.
func validateTimes(d *shift.Definition) error {
	if _, err := timeutil.ParseClock(d.StartTime); err != nil {
		return fmt.Errorf("%w: start time: %v", shift.ErrMisconfigured, err)
	}
	if _, err := timeutil.ParseClock(d.EndTime); err != nil {
		return fmt.Errorf("%w: end time: %v", shift.ErrMisconfigured, err)
	}
	if d.BreakStartTime != nil {
		if _, err := timeutil.ParseClock(*d.BreakStartTime); err != nil {
			return fmt.Errorf("%w: break start time: %v", shift.ErrMisconfigured, err)
		}
	}
	if d.BreakEndTime != nil {
		if _, err := timeutil.ParseClock(*d.BreakEndTime); err != nil {
			return fmt.Errorf("%w: break end time: %v", shift.ErrMisconfigured, err)
		}
	}
	return nil
}
