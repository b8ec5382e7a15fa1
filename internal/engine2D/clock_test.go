package engine2D

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertState(t *testing.T, s ClockState, hours, minutes, seconds int) {
	t.Helper()
	assert.Equal(t, hours, s.Hours(), "hours")
	assert.Equal(t, minutes, s.Minutes(), "minutes")
	assert.Equal(t, seconds, s.Seconds(), "seconds")
}

func TestNewClockState_Wraps(t *testing.T) {
	tests := []struct {
		name         string
		h, m, s      int
		wantH, wantM int
		wantS        int
	}{
		{"in range", 2, 33, 21, 2, 33, 21},
		{"hour 12 wraps", 12, 0, 0, 0, 0, 0},
		{"afternoon", 15, 4, 5, 3, 4, 5},
		{"overflow", 25, 61, 60, 1, 1, 0},
		{"negative", -1, -1, -1, 11, 59, 59},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertState(t, NewClockState(tt.h, tt.m, tt.s), tt.wantH, tt.wantM, tt.wantS)
		})
	}
}

func TestClockStateFromTime(t *testing.T) {
	at := time.Date(2026, 10, 19, 14, 33, 21, 999, time.UTC)
	assertState(t, ClockStateFromTime(at), 2, 33, 21)

	midnight := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	assertState(t, ClockStateFromTime(midnight), 0, 0, 0)
}

func TestClockState_Next(t *testing.T) {
	assertState(t, NewClockState(2, 33, 21).Next(), 2, 33, 22)
	assertState(t, NewClockState(2, 33, 59).Next(), 2, 34, 0)
	assertState(t, NewClockState(2, 59, 59).Next(), 3, 0, 0)
}

func TestClockState_FullWraparound(t *testing.T) {
	assertState(t, NewClockState(11, 59, 59).Next(), 0, 0, 0)
}

func TestClockState_MinuteRollover(t *testing.T) {
	for _, start := range []ClockState{
		NewClockState(0, 0, 0),
		NewClockState(4, 17, 42),
		NewClockState(7, 59, 0),
		NewClockState(11, 59, 30),
	} {
		got := start.Advance(60)
		wantMinutes := (start.Minutes() + 1) % 60
		wantHours := start.Hours()
		if wantMinutes == 0 {
			wantHours = (wantHours + 1) % 12
		}
		assertState(t, got, wantHours, wantMinutes, start.Seconds())
	}
}

func TestClockState_HourRollover(t *testing.T) {
	for h := 0; h < 12; h++ {
		start := NewClockState(h, 29, 13)
		assertState(t, start.Advance(3600), (h+1)%12, 29, 13)
	}
}

func TestClockState_StaysInDomain(t *testing.T) {
	s := NewClockState(11, 58, 30)
	for i := 0; i < 2*12*3600; i++ {
		s = s.Next()
		require.GreaterOrEqual(t, s.Hours(), 0)
		require.Less(t, s.Hours(), 12)
		require.GreaterOrEqual(t, s.Minutes(), 0)
		require.Less(t, s.Minutes(), 60)
		require.GreaterOrEqual(t, s.Seconds(), 0)
		require.Less(t, s.Seconds(), 60)
	}
	assertState(t, s, 11, 58, 30)
}

func TestClockState_AdvanceNonPositive(t *testing.T) {
	s := NewClockState(1, 2, 3)
	assert.Equal(t, s, s.Advance(0))
	assert.Equal(t, s, s.Advance(-5))
}

func TestClockState_String(t *testing.T) {
	assert.Equal(t, "02:33:21", NewClockState(2, 33, 21).String())
	assert.Equal(t, "00:00:00", ClockState{}.String())
}

func TestParseClockState(t *testing.T) {
	s, err := ParseClockState("14:33:21")
	require.NoError(t, err)
	assertState(t, s, 2, 33, 21)

	s, err = ParseClockState("09:05")
	require.NoError(t, err)
	assertState(t, s, 9, 5, 0)

	_, err = ParseClockState("noon")
	require.Error(t, err)
}
