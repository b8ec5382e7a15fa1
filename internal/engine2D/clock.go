package engine2D

import (
	"fmt"
	"time"
)

const (
	hoursPerDial   = 12
	minutesPerHour = 60
	secondsPerMin  = 60
)

// ClockState is the time of day shown on the dial. Fields are always
// wrapped into their domains, so a ClockState can be passed around by value
// and read from any goroutine.
type ClockState struct {
	hours   int
	minutes int
	seconds int
}

// NewClockState wraps each field into its domain (hours 0-11, minutes and
// seconds 0-59). Negative values wrap backwards.
func NewClockState(hours, minutes, seconds int) ClockState {
	return ClockState{
		hours:   wrap(hours, hoursPerDial),
		minutes: wrap(minutes, minutesPerHour),
		seconds: wrap(seconds, secondsPerMin),
	}
}

// ClockStateFromTime takes the wall-clock components of t, hour mod 12.
func ClockStateFromTime(t time.Time) ClockState {
	hour, minute, second := t.Clock()
	return NewClockState(hour, minute, second)
}

func (s ClockState) Hours() int   { return s.hours }
func (s ClockState) Minutes() int { return s.minutes }
func (s ClockState) Seconds() int { return s.seconds }

// Next returns the state one second later. Seconds roll into minutes and
// minutes into hours.
func (s ClockState) Next() ClockState {
	s.seconds = (s.seconds + 1) % secondsPerMin
	if s.seconds == 0 {
		s.minutes = (s.minutes + 1) % minutesPerHour
		if s.minutes == 0 {
			s.hours = (s.hours + 1) % hoursPerDial
		}
	}
	return s
}

// Advance applies Next n times. Non-positive n returns s unchanged.
func (s ClockState) Advance(n int) ClockState {
	for i := 0; i < n; i++ {
		s = s.Next()
	}
	return s
}

func (s ClockState) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", s.hours, s.minutes, s.seconds)
}

// ParseClockState parses "HH:MM:SS" (or "HH:MM") in 24h or 12h form.
func ParseClockState(value string) (ClockState, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return ClockStateFromTime(t), nil
		}
	}
	return ClockState{}, fmt.Errorf("invalid clock time %q, expected HH:MM:SS", value)
}

func wrap(value, modulus int) int {
	value %= modulus
	if value < 0 {
		value += modulus
	}
	return value
}
