package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/report"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/timeutil"
)

const companyStatsTTL = time.Minute

type ReportServiceImpl struct {
	records   attendance.Repository
	employees employee.Repository

	// cache is optional; a nil client disables company-stats caching.
	cache *redis.Client

	loc *time.Location
}

func NewReportService(
	records attendance.Repository,
	employees employee.Repository,
	cache *redis.Client,
	loc *time.Location,
) *ReportServiceImpl {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportServiceImpl{
		records:   records,
		employees: employees,
		cache:     cache,
		loc:       loc,
	}
}

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

// GetMonthlySummary implements report.Service. Sums come straight from the
// stored per-day fields; nothing is re-derived from raw timestamps.
func (s *ReportServiceImpl) GetMonthlySummary(ctx context.Context, month int, year int) (report.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return report.MonthlySummary{}, fmt.Errorf("month out of range: %d", month)
	}

	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return report.MonthlySummary{}, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 1, 0).AddDate(0, 0, -1)

	records, err := s.records.ListByEmployeeBetween(ctx, employeeID, from, to, companyID)
	if err != nil {
		return report.MonthlySummary{}, fmt.Errorf("failed to list monthly records: %w", err)
	}

	summary := report.MonthlySummary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		TotalDays:  len(records),
	}
	for _, rec := range records {
		if rec.IsLate {
			summary.LateDays++
		}
		if rec.IsEarlyLeave {
			summary.EarlyLeaveDays++
		}
		if rec.IsOverBreak {
			summary.OverBreakDays++
		}
		if rec.TotalWorkMinutes != nil {
			summary.TotalWorkMinutes += *rec.TotalWorkMinutes
		}
		summary.TotalOvertimeMinutes += rec.OvertimeMinutes
		summary.TotalLateMinutes += rec.LateMinutes
		summary.TotalEarlyLeaveMinutes += rec.EarlyLeaveMinutes
	}

	return summary, nil
}

// GetTodayCompanyStats implements report.Service.
func (s *ReportServiceImpl) GetTodayCompanyStats(ctx context.Context, date time.Time) (report.CompanyDayStats, error) {
	_, companyID, err := identityFromContext(ctx)
	if err != nil {
		return report.CompanyDayStats{}, err
	}

	y, m, d := date.In(s.loc).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	cacheKey := fmt.Sprintf("stats:%s:%s", companyID, day.Format("2006-01-02"))

	if cached, ok := s.cachedStats(ctx, cacheKey); ok {
		return cached, nil
	}

	var (
		records   []attendance.Record
		headcount int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.records.ListByCompanyOn(gctx, companyID, day)
		if err != nil {
			return fmt.Errorf("failed to list company records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		headcount, err = s.employees.CountActive(gctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to count active employees: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.CompanyDayStats{}, err
	}

	stats := buildCompanyDayStats(companyID, day, records, headcount)

	s.storeStats(ctx, cacheKey, stats)
	return stats, nil
}

func buildCompanyDayStats(companyID string, day time.Time, records []attendance.Record, headcount int) report.CompanyDayStats {
	stats := report.CompanyDayStats{
		CompanyID: companyID,
		Date:      day.Format("2006-01-02"),
	}

	var (
		checkInMinutesSum int
		lateMinutesSum    int
		breakMinutesSum   int
		breakCount        int
	)
	for _, rec := range records {
		if rec.CheckIn == nil {
			continue
		}
		stats.CheckedIn++
		checkInMinutesSum += timeutil.MinuteOfDay(*rec.CheckIn)

		if rec.IsLate {
			stats.Late++
			lateMinutesSum += rec.LateMinutes
		}
		if rec.IsPotentialOvertime {
			stats.OvertimeCandidates++
		}
		if rec.BreakDurationMinutes != nil {
			breakMinutesSum += *rec.BreakDurationMinutes
			breakCount++
		}
	}

	stats.OnTime = stats.CheckedIn - stats.Late
	stats.Absent = headcount - stats.CheckedIn
	if stats.Absent < 0 {
		stats.Absent = 0
	}

	if stats.CheckedIn > 0 {
		stats.AverageCheckInTime = timeutil.FormatMinutes(checkInMinutesSum / stats.CheckedIn)
	}
	// lateness averages over late records only, so an on-time crowd does not
	// dilute the figure
	if stats.Late > 0 {
		stats.AverageLatenessMinutes = float64(lateMinutesSum) / float64(stats.Late)
	}
	if breakCount > 0 {
		stats.AverageBreakMinutes = float64(breakMinutesSum) / float64(breakCount)
	}

	return stats
}

// cachedStats is best effort; any cache failure just means recomputing.
func (s *ReportServiceImpl) cachedStats(ctx context.Context, key string) (report.CompanyDayStats, bool) {
	if s.cache == nil {
		return report.CompanyDayStats{}, false
	}
	payload, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return report.CompanyDayStats{}, false
	}
	var stats report.CompanyDayStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return report.CompanyDayStats{}, false
	}
	return stats, true
}

func (s *ReportServiceImpl) storeStats(ctx context.Context, key string, stats report.CompanyDayStats) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, payload, companyStatsTTL)
}
