package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveState(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		rec  *Record
		want DayState
	}{
		{"no record", nil, StateReadyToCheckIn},
		{"empty record", &Record{}, StateReadyToCheckIn},
		{"checked in", &Record{CheckIn: &now}, StateWorking},
		{"on break", &Record{CheckIn: &now, BreakStart: &now}, StateOnBreak},
		{"break finished", &Record{CheckIn: &now, BreakStart: &now, BreakEnd: &now}, StateWorking},
		{"checked out", &Record{CheckIn: &now, CheckOut: &now}, StateCompleted},
		// check-out wins even against an inconsistent open break
		{"checked out with open break", &Record{CheckIn: &now, BreakStart: &now, CheckOut: &now}, StateCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveState(tt.rec))
		})
	}
}

func TestOnOpenBreak(t *testing.T) {
	now := time.Now()

	assert.False(t, (&Record{}).OnOpenBreak())
	assert.True(t, (&Record{BreakStart: &now}).OnOpenBreak())
	assert.False(t, (&Record{BreakStart: &now, BreakEnd: &now}).OnOpenBreak())
}
