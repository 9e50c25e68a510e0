package scheduling

import "time"

const (
	// LeadTimeMinutes is how far ahead of "now" a same-day reservation must be.
	LeadTimeMinutes = 240
	// MinGapMinutes is the minimum spacing between two reservations on one date.
	MinGapMinutes = 240
)

// defaultTemplate covers the two service windows: lunch 12:00-14:30 and
// dinner 18:00-21:30, in 30 minute steps.
var defaultTemplate = []TimeOfDay{
	MustTimeOfDay("12:00"), MustTimeOfDay("12:30"),
	MustTimeOfDay("13:00"), MustTimeOfDay("13:30"),
	MustTimeOfDay("14:00"), MustTimeOfDay("14:30"),
	MustTimeOfDay("18:00"), MustTimeOfDay("18:30"),
	MustTimeOfDay("19:00"), MustTimeOfDay("19:30"),
	MustTimeOfDay("20:00"), MustTimeOfDay("20:30"),
	MustTimeOfDay("21:00"), MustTimeOfDay("21:30"),
}

// DefaultTemplate returns a copy of the restaurant's daily slot template.
func DefaultTemplate() []TimeOfDay {
	out := make([]TimeOfDay, len(defaultTemplate))
	copy(out, defaultTemplate)
	return out
}

// Contains reports whether t is one of the template slots.
func Contains(template []TimeOfDay, t TimeOfDay) bool {
	for _, s := range template {
		if s == t {
			return true
		}
	}
	return false
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// AvailableSlots filters the template down to slots still bookable for date.
// Future dates keep the full template in order; on the current day only slots
// at least leadTimeMinutes ahead of now survive (a slot exactly on the
// threshold is kept). Slots have minute resolution, so the comparison ignores
// the seconds on the clock. Past dates must be rejected by the caller before
// this runs. An empty result means the day is fully booked out by lead time,
// not an error.
func AvailableSlots(date, now time.Time, template []TimeOfDay, leadTimeMinutes int) []TimeOfDay {
	if !SameDay(date, now) {
		out := make([]TimeOfDay, len(template))
		copy(out, template)
		return out
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	out := make([]TimeOfDay, 0, len(template))
	for _, slot := range template {
		if slot.Minutes()-nowMinutes >= leadTimeMinutes {
			out = append(out, slot)
		}
	}
	return out
}
