package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of one calendar day in minutes.
const MinutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" or "HH:MM:SS" wall-clock value into minutes
// since midnight (0-1439). Seconds are accepted and discarded. Malformed or
// empty input is an error, never silently zero.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in clock value %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in clock value %q", clock)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}

	return hour*60 + minute, nil
}

// DiffMinutes returns a - b in minutes. No wraparound correction is applied;
// overnight shifts are the caller's responsibility.
func DiffMinutes(a, b int) int {
	return a - b
}

// FormatMinutes renders a minute offset as zero-padded "HH:MM". Values at or
// above MinutesPerDay are not wrapped.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinuteOfDay returns t's wall-clock offset in minutes since local midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// CrossesMidnight reports whether a shift window wraps past midnight, i.e.
// its scheduled end minute precedes its start minute.
func CrossesMidnight(startMin, endMin int) bool {
	return endMin < startMin
}

// InWindow reports whether the clock minute t falls inside the [start, end]
// shift window. For overnight windows membership is t >= start OR t <= end.
func InWindow(t, startMin, endMin int) bool {
	if CrossesMidnight(startMin, endMin) {
		return t >= startMin || t <= endMin
	}
	return t >= startMin && t <= endMin
}

// NormalizeEnd places a shift's end minute on a continuous axis relative to
// its start, adding a day when the window crosses midnight.
func NormalizeEnd(startMin, endMin int) int {
	if CrossesMidnight(startMin, endMin) {
		return endMin + MinutesPerDay
	}
	return endMin
}

// NormalizeToWindow places the clock minute t on the same continuous axis as
// NormalizeEnd. A time at or before the wrapped end is treated as belonging
// to the next calendar day.
func NormalizeToWindow(t, startMin, endMin int) int {
	if CrossesMidnight(startMin, endMin) && t <= endMin {
		return t + MinutesPerDay
	}
	return t
}
