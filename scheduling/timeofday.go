package scheduling

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time with minute resolution, independent of any date.
// Reservation slots are compared and stored as these values instead of raw
// "HH:MM" strings.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24-hour).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time %q out of range", s)
	}
	return t, nil
}

// MustTimeOfDay is ParseTimeOfDay for compile-time constants like the slot template.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the offset from midnight in minutes.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// GapMinutes returns the absolute difference between two times of day, in minutes.
func (t TimeOfDay) GapMinutes(other TimeOfDay) int {
	d := t.Minutes() - other.Minutes()
	if d < 0 {
		d = -d
	}
	return d
}

// On anchors the time of day to a calendar date, in the date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}
