package attendance

import (
	"context"
)

// Service is the check-in/out engine. Each state-machine operation validates
// the current state, resolves the shift where needed, computes derived
// minutes, and persists exactly one record mutation inside one transaction.
// Employee and company identity come from the JWT claims in ctx.
type Service interface {
	// CheckIn opens the caller's work-day and computes lateness.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResult, error)

	// CheckOut closes the work-day and computes early-leave, total work and
	// overtime candidacy. The record is terminal afterwards.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResult, error)

	// BreakStart opens a break on the current work-day.
	BreakStart(ctx context.Context) (BreakStartResult, error)

	// BreakEnd closes the open break and computes break overrun.
	BreakEnd(ctx context.Context) (BreakEndResult, error)

	// GetToday reports the caller's current day state and record.
	GetToday(ctx context.Context) (TodayResult, error)
}
