package report

import (
	"context"
	"time"
)

// Service computes aggregates on demand. Both operations are read-only,
// idempotent and lock-free; they read a snapshot and tolerate in-flight
// writes.
type Service interface {
	// GetMonthlySummary rolls up the caller's records for one month.
	GetMonthlySummary(ctx context.Context, month int, year int) (MonthlySummary, error)

	// GetTodayCompanyStats rolls up the caller's company for one date.
	GetTodayCompanyStats(ctx context.Context, date time.Time) (CompanyDayStats, error)
}
