package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/timeutil"
)

func clock(t *testing.T, s string) int {
	t.Helper()
	m, err := timeutil.ParseClock(s)
	if err != nil {
		t.Fatalf("bad clock %q: %v", s, err)
	}
	return m
}

func TestComputeLateness(t *testing.T) {
	start := clock(t, "09:00")
	const grace = 5

	tests := []struct {
		checkIn  string
		wantLate bool
		wantMins int
	}{
		{"08:30", false, 0},
		{"09:00", false, 0},
		{"09:03", false, 0},
		{"09:05", false, 0}, // exactly at the grace boundary is on time
		{"09:06", true, 1},
		{"09:10", true, 5},
		{"10:00", true, 55},
	}

	for _, tt := range tests {
		got := ComputeLateness(start, grace, clock(t, tt.checkIn))
		assert.Equal(t, tt.wantLate, got.IsLate, "check-in %s", tt.checkIn)
		assert.Equal(t, tt.wantMins, got.LateMinutes, "check-in %s", tt.checkIn)
	}
}

func TestComputeLateness_Monotonic(t *testing.T) {
	start := clock(t, "09:00")
	const grace = 5

	prev := -1
	for m := start; m < start+120; m++ {
		got := ComputeLateness(start, grace, m)
		assert.GreaterOrEqual(t, got.LateMinutes, prev)
		if m <= start+grace {
			assert.False(t, got.IsLate, "minute %d", m)
		} else {
			assert.Equal(t, m-start-grace, got.LateMinutes, "minute %d", m)
		}
		prev = got.LateMinutes
	}
}

func TestComputeEarlyLeave(t *testing.T) {
	end := clock(t, "18:00")

	got := ComputeEarlyLeave(end, clock(t, "17:30"))
	assert.True(t, got.IsEarlyLeave)
	assert.Equal(t, 30, got.EarlyMinutes)

	got = ComputeEarlyLeave(end, clock(t, "18:00"))
	assert.False(t, got.IsEarlyLeave)
	assert.Equal(t, 0, got.EarlyMinutes)

	got = ComputeEarlyLeave(end, clock(t, "19:00"))
	assert.False(t, got.IsEarlyLeave)
	assert.Equal(t, 0, got.EarlyMinutes)
}

func TestComputeOvertimeCandidate_Boundary(t *testing.T) {
	end := clock(t, "18:00")
	const threshold = 60

	got := ComputeOvertimeCandidate(end, clock(t, "18:59"), threshold)
	assert.False(t, got.IsCandidate)
	assert.Equal(t, 59, got.OTMinutes)

	got = ComputeOvertimeCandidate(end, clock(t, "19:00"), threshold)
	assert.True(t, got.IsCandidate)
	assert.Equal(t, 60, got.OTMinutes)

	got = ComputeOvertimeCandidate(end, clock(t, "19:05"), threshold)
	assert.True(t, got.IsCandidate)
	assert.Equal(t, 65, got.OTMinutes)

	// leaving early is never overtime
	got = ComputeOvertimeCandidate(end, clock(t, "17:00"), threshold)
	assert.False(t, got.IsCandidate)
	assert.Equal(t, 0, got.OTMinutes)
}

func TestComputeBreakOverrun(t *testing.T) {
	got := ComputeBreakOverrun(clock(t, "12:00"), clock(t, "13:05"), 60)
	assert.True(t, got.IsOverrun)
	assert.Equal(t, 65, got.DurationMinutes)

	got = ComputeBreakOverrun(clock(t, "12:00"), clock(t, "13:00"), 60)
	assert.False(t, got.IsOverrun)
	assert.Equal(t, 60, got.DurationMinutes)

	got = ComputeBreakOverrun(clock(t, "12:00"), clock(t, "12:20"), 60)
	assert.False(t, got.IsOverrun)
	assert.Equal(t, 20, got.DurationMinutes)
}

func TestComputeTotalWork(t *testing.T) {
	assert.Equal(t, 480, ComputeTotalWork(clock(t, "09:00"), clock(t, "18:00"), 60))
	assert.Equal(t, 540, ComputeTotalWork(clock(t, "09:00"), clock(t, "18:00"), 0))
	// clamped when the math goes negative
	assert.Equal(t, 0, ComputeTotalWork(clock(t, "09:00"), clock(t, "09:10"), 60))
}

func TestOvernightNormalizedInputs(t *testing.T) {
	// shift 22:00-06:00; checkout 05:30 belongs to the next day on the
	// continuous axis the engine feeds the calculator
	start := clock(t, "22:00")
	end := timeutil.NormalizeEnd(start, clock(t, "06:00"))
	out := timeutil.NormalizeToWindow(clock(t, "05:30"), start, clock(t, "06:00"))

	early := ComputeEarlyLeave(end, out)
	assert.True(t, early.IsEarlyLeave)
	assert.Equal(t, 30, early.EarlyMinutes)

	ot := ComputeOvertimeCandidate(end, timeutil.NormalizeToWindow(clock(t, "07:30"), start, clock(t, "06:00")), 60)
	assert.True(t, ot.IsCandidate)
	assert.Equal(t, 90, ot.OTMinutes)
}
