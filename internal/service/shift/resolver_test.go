package shift

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
)

type fakeShiftRepo struct {
	candidates []shift.Definition
	err        error
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string, companyID string) (shift.Definition, error) {
	for _, d := range f.candidates {
		if d.ID == id {
			return d, nil
		}
	}
	return shift.Definition{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) FindCandidates(ctx context.Context, companyID string, employeeID string, date time.Time) ([]shift.Definition, error) {
	return f.candidates, f.err
}

var (
	testDate    = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC) // a Monday
	testCompany = "comp-1"
	testEmp     = "emp-1"
)

func def(id string, mode shift.ApplicabilityMode, created time.Time) shift.Definition {
	return shift.Definition{
		ID:        id,
		CompanyID: testCompany,
		Name:      id,
		StartTime: "09:00",
		EndTime:   "18:00",
		Mode:      mode,
		IsActive:  true,
		CreatedAt: created,
	}
}

func TestResolve_SpecificDateBeatsRecurring(t *testing.T) {
	specific := def("specific", shift.ModeSpecificDates, time.Now())
	specific.Dates = []time.Time{testDate}
	specific.EmployeeIDs = []string{testEmp}

	recurring := def("recurring", shift.ModeRecurringWeekly, time.Now())
	recurring.Weekdays = []int{int(time.Monday)}
	recurring.EmployeeIDs = []string{testEmp}

	// repository returns newest-first; recurring is first but must lose
	repo := &fakeShiftRepo{candidates: []shift.Definition{recurring, specific}}
	r := NewResolver(repo)

	got, err := r.Resolve(context.Background(), testCompany, testEmp, testDate)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "specific", got.ID)
}

func TestResolve_RecurringBeatsCompanyDefault(t *testing.T) {
	recurring := def("recurring", shift.ModeRecurringWeekly, time.Now())
	recurring.Weekdays = []int{int(time.Monday)}
	recurring.EmployeeIDs = []string{testEmp}

	fallback := def("default", shift.ModeCompanyDefault, time.Now())
	fallback.Weekdays = []int{int(time.Monday)}

	repo := &fakeShiftRepo{candidates: []shift.Definition{fallback, recurring}}
	r := NewResolver(repo)

	got, err := r.Resolve(context.Background(), testCompany, testEmp, testDate)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "recurring", got.ID)
}

func TestResolve_CompanyDefaultIgnoresAssignment(t *testing.T) {
	fallback := def("default", shift.ModeCompanyDefault, time.Now())
	fallback.Weekdays = []int{int(time.Monday)}
	fallback.EmployeeIDs = []string{"someone-else"}

	repo := &fakeShiftRepo{candidates: []shift.Definition{fallback}}
	r := NewResolver(repo)

	got, err := r.Resolve(context.Background(), testCompany, testEmp, testDate)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "default", got.ID)
}

func TestResolve_NewestSpecificDateWinsTie(t *testing.T) {
	older := def("older", shift.ModeSpecificDates, time.Now().Add(-time.Hour))
	older.Dates = []time.Time{testDate}
	older.EmployeeIDs = []string{testEmp}

	newer := def("newer", shift.ModeSpecificDates, time.Now())
	newer.Dates = []time.Time{testDate}
	newer.EmployeeIDs = []string{testEmp}

	// candidates are ordered created_at DESC by the repository
	repo := &fakeShiftRepo{candidates: []shift.Definition{newer, older}}
	r := NewResolver(repo)

	got, err := r.Resolve(context.Background(), testCompany, testEmp, testDate)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "newer", got.ID)
}

func TestResolve_EmptyAssignmentMeansOpenToAll(t *testing.T) {
	recurring := def("open", shift.ModeRecurringWeekly, time.Now())
	recurring.Weekdays = []int{int(time.Monday)}

	repo := &fakeShiftRepo{candidates: []shift.Definition{recurring}}
	r := NewResolver(repo)

	got, err := r.Resolve(context.Background(), testCompany, testEmp, testDate)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "open", got.ID)
}

func TestResolve_NoMatchReturnsNilNil(t *testing.T) {
	recurring := def("tuesday-only", shift.ModeRecurringWeekly, time.Now())
	recurring.Weekdays = []int{int(time.Tuesday)}
	recurring.EmployeeIDs = []string{testEmp}

	repo := &fakeShiftRepo{candidates: []shift.Definition{recurring}}
	r := NewResolver(repo)

	got, err := r.Resolve(context.Background(), testCompany, testEmp, testDate)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolve_MisconfiguredTimesRejected(t *testing.T) {
	broken := def("broken", shift.ModeRecurringWeekly, time.Now())
	broken.Weekdays = []int{int(time.Monday)}
	broken.EmployeeIDs = []string{testEmp}
	broken.StartTime = ""

	repo := &fakeShiftRepo{candidates: []shift.Definition{broken}}
	r := NewResolver(repo)

	_, err := r.Resolve(context.Background(), testCompany, testEmp, testDate)
	assert.ErrorIs(t, err, shift.ErrMisconfigured)
}

func TestResolve_RepositoryErrorPropagates(t *testing.T) {
	repo := &fakeShiftRepo{err: errors.New("connection refused")}
	r := NewResolver(repo)

	_, err := r.Resolve(context.Background(), testCompany, testEmp, testDate)
	assert.Error(t, err)
}
