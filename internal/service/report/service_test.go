package report

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
)

const (
	testEmployeeID = "0198a2b4-0000-7000-8000-000000000001"
	testCompanyID  = "0198a2b4-0000-7000-8000-0000000000aa"
)

type fakeRecordStore struct {
	byEmployee []attendance.Record
	byCompany  []attendance.Record
}

func (f *fakeRecordStore) GetByEmployeeAndDate(context.Context, string, time.Time, string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordStore) GetOpen(context.Context, string, string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordStore) GetReadyForBreak(context.Context, string, string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordStore) GetOnBreak(context.Context, string, string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordStore) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeRecordStore) Update(context.Context, attendance.Record) error {
	return nil
}

func (f *fakeRecordStore) ListByEmployeeBetween(context.Context, string, time.Time, time.Time, string) ([]attendance.Record, error) {
	return f.byEmployee, nil
}

func (f *fakeRecordStore) ListByCompanyOn(context.Context, string, time.Time) ([]attendance.Record, error) {
	return f.byCompany, nil
}

type fakeEmployeeStore struct {
	headcount int
}

func (f *fakeEmployeeStore) GetByCode(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeStore) CountActive(context.Context, string) (int, error) {
	return f.headcount, nil
}

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": testEmployeeID,
		"company_id":  testCompanyID,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed.UTC()
}

func intPtr(v int) *int { return &v }

func workDay(t *testing.T, date string, checkIn string, opts func(*attendance.Record)) attendance.Record {
	t.Helper()
	in := ts(t, date+" "+checkIn)
	rec := attendance.Record{
		EmployeeID: testEmployeeID,
		CompanyID:  testCompanyID,
		Date:       ts(t, date+" 00:00"),
		CheckIn:    &in,
	}
	if opts != nil {
		opts(&rec)
	}
	return rec
}

func TestGetMonthlySummary_SumsStoredFields(t *testing.T) {
	records := &fakeRecordStore{byEmployee: []attendance.Record{
		workDay(t, "2026-03-02", "09:00", func(r *attendance.Record) {
			r.TotalWorkMinutes = intPtr(480)
		}),
		workDay(t, "2026-03-03", "09:20", func(r *attendance.Record) {
			r.IsLate = true
			r.LateMinutes = 15
			r.TotalWorkMinutes = intPtr(460)
		}),
		workDay(t, "2026-03-04", "09:00", func(r *attendance.Record) {
			r.IsEarlyLeave = true
			r.EarlyLeaveMinutes = 40
			r.IsOverBreak = true
			r.BreakDurationMinutes = intPtr(75)
			r.TotalWorkMinutes = intPtr(365)
		}),
		workDay(t, "2026-03-05", "09:00", func(r *attendance.Record) {
			r.IsPotentialOvertime = true
			r.OvertimeMinutes = 90
			r.TotalWorkMinutes = intPtr(570)
		}),
	}}

	svc := NewReportService(records, &fakeEmployeeStore{}, nil, time.UTC)

	summary, err := svc.GetMonthlySummary(authedContext(t), 3, 2026)
	require.NoError(t, err)

	assert.Equal(t, testEmployeeID, summary.EmployeeID)
	assert.Equal(t, 4, summary.TotalDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 1, summary.EarlyLeaveDays)
	assert.Equal(t, 1, summary.OverBreakDays)
	assert.Equal(t, 480+460+365+570, summary.TotalWorkMinutes)
	assert.Equal(t, 90, summary.TotalOvertimeMinutes)
	assert.Equal(t, 15, summary.TotalLateMinutes)
	assert.Equal(t, 40, summary.TotalEarlyLeaveMinutes)
}

func TestGetMonthlySummary_EmptyMonth(t *testing.T) {
	svc := NewReportService(&fakeRecordStore{}, &fakeEmployeeStore{}, nil, time.UTC)

	summary, err := svc.GetMonthlySummary(authedContext(t), 1, 2026)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalDays)
	assert.Zero(t, summary.TotalWorkMinutes)
}

func TestGetMonthlySummary_RejectsBadMonth(t *testing.T) {
	svc := NewReportService(&fakeRecordStore{}, &fakeEmployeeStore{}, nil, time.UTC)

	_, err := svc.GetMonthlySummary(authedContext(t), 13, 2026)
	assert.Error(t, err)
}

func TestGetTodayCompanyStats_Aggregates(t *testing.T) {
	records := &fakeRecordStore{byCompany: []attendance.Record{
		workDay(t, "2026-03-16", "08:50", nil),
		workDay(t, "2026-03-16", "09:10", func(r *attendance.Record) {
			r.IsLate = true
			r.LateMinutes = 5
			r.BreakDurationMinutes = intPtr(50)
		}),
		workDay(t, "2026-03-16", "09:30", func(r *attendance.Record) {
			r.IsLate = true
			r.LateMinutes = 25
			r.IsPotentialOvertime = true
			r.BreakDurationMinutes = intPtr(70)
		}),
	}}

	svc := NewReportService(records, &fakeEmployeeStore{headcount: 5}, nil, time.UTC)

	stats, err := svc.GetTodayCompanyStats(authedContext(t), ts(t, "2026-03-16 12:00"))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.CheckedIn)
	assert.Equal(t, 1, stats.OnTime)
	assert.Equal(t, 2, stats.Late)
	assert.Equal(t, 2, stats.Absent)
	assert.Equal(t, 1, stats.OvertimeCandidates)

	// mean of 08:50, 09:10 and 09:30
	assert.Equal(t, "09:10", stats.AverageCheckInTime)
	// over late records only
	assert.InDelta(t, 15.0, stats.AverageLatenessMinutes, 0.001)
	assert.InDelta(t, 60.0, stats.AverageBreakMinutes, 0.001)
}

func TestGetTodayCompanyStats_NobodyCheckedIn(t *testing.T) {
	svc := NewReportService(&fakeRecordStore{}, &fakeEmployeeStore{headcount: 4}, nil, time.UTC)

	stats, err := svc.GetTodayCompanyStats(authedContext(t), ts(t, "2026-03-16 08:00"))
	require.NoError(t, err)

	assert.Zero(t, stats.CheckedIn)
	assert.Equal(t, 4, stats.Absent)
	assert.Empty(t, stats.AverageCheckInTime)
	assert.Zero(t, stats.AverageLatenessMinutes)
}

func TestGetTodayCompanyStats_HeadcountBelowCheckedIn(t *testing.T) {
	records := &fakeRecordStore{byCompany: []attendance.Record{
		workDay(t, "2026-03-16", "09:00", nil),
		workDay(t, "2026-03-16", "09:00", nil),
	}}

	svc := NewReportService(records, &fakeEmployeeStore{headcount: 1}, nil, time.UTC)

	stats, err := svc.GetTodayCompanyStats(authedContext(t), ts(t, "2026-03-16 10:00"))
	require.NoError(t, err)

	// stale headcount must not go negative
	assert.Zero(t, stats.Absent)
}
