package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:05:30", 545, false},
		{"23:59", 1439, false},
		{" 18:00 ", 1080, false},
		{"", 0, true},
		{"9", 0, true},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"aa:bb", 0, true},
		{"12:3x", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestDiffMinutes(t *testing.T) {
	assert.Equal(t, 30, DiffMinutes(570, 540))
	assert.Equal(t, -30, DiffMinutes(540, 570))
	assert.Equal(t, 0, DiffMinutes(540, 540))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:05", FormatMinutes(545))
	assert.Equal(t, "23:59", FormatMinutes(1439))
	// values past one day are rendered as-is, not wrapped
	assert.Equal(t, "24:30", FormatMinutes(1470))
}

func TestMinuteOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 41, 59, 0, time.UTC)
	assert.Equal(t, 581, MinuteOfDay(ts))
}

func TestInWindow_Overnight(t *testing.T) {
	start, _ := ParseClock("22:00")
	end, _ := ParseClock("06:00")

	require.True(t, CrossesMidnight(start, end))

	in1, _ := ParseClock("23:30")
	in2, _ := ParseClock("05:30")
	out, _ := ParseClock("12:00")

	assert.True(t, InWindow(in1, start, end))
	assert.True(t, InWindow(in2, start, end))
	assert.False(t, InWindow(out, start, end))
}

func TestInWindow_SameDay(t *testing.T) {
	start, _ := ParseClock("09:00")
	end, _ := ParseClock("18:00")

	assert.True(t, InWindow(540, start, end))
	assert.True(t, InWindow(1080, start, end))
	assert.False(t, InWindow(500, start, end))
	assert.False(t, InWindow(1100, start, end))
}

func TestNormalizeToWindow(t *testing.T) {
	start, _ := ParseClock("22:00")
	end, _ := ParseClock("06:00")

	assert.Equal(t, end+MinutesPerDay, NormalizeEnd(start, end))

	// 05:30 belongs to the next calendar day on the shift axis
	assert.Equal(t, 330+MinutesPerDay, NormalizeToWindow(330, start, end))
	// the wrapped end itself belongs to the next day
	assert.Equal(t, end+MinutesPerDay, NormalizeToWindow(end, start, end))
	// 23:30 stays where it is
	assert.Equal(t, 1410, NormalizeToWindow(1410, start, end))
	// an early arrival at 21:55 stays on the start's day, not a day late
	assert.Equal(t, 1315, NormalizeToWindow(1315, start, end))
	// dead-zone times between wrapped end and start are left alone
	assert.Equal(t, 720, NormalizeToWindow(720, start, end))

	// day shifts are untouched
	dayStart, _ := ParseClock("09:00")
	dayEnd, _ := ParseClock("18:00")
	assert.Equal(t, dayEnd, NormalizeEnd(dayStart, dayEnd))
	assert.Equal(t, 600, NormalizeToWindow(600, dayStart, dayEnd))
}
