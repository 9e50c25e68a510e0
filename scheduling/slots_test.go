package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func localDate(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestAvailableSlotsFutureDateKeepsFullTemplate(t *testing.T) {
	now := localDate(2024, 1, 10, 14, 0)
	date := localDate(2024, 1, 11, 0, 0)

	got := AvailableSlots(date, now, DefaultTemplate(), LeadTimeMinutes)

	assert.Equal(t, DefaultTemplate(), got, "non-today dates keep the template, in order")
}

func TestAvailableSlotsLeadTimeBoundary(t *testing.T) {
	// now = 14:00 with a 240 minute lead time: 18:00 is exactly on the
	// threshold and stays, anything earlier goes.
	now := localDate(2024, 1, 10, 14, 0)
	date := localDate(2024, 1, 10, 0, 0)

	got := AvailableSlots(date, now, DefaultTemplate(), LeadTimeMinutes)

	want := []TimeOfDay{
		MustTimeOfDay("18:00"), MustTimeOfDay("18:30"),
		MustTimeOfDay("19:00"), MustTimeOfDay("19:30"),
		MustTimeOfDay("20:00"), MustTimeOfDay("20:30"),
		MustTimeOfDay("21:00"), MustTimeOfDay("21:30"),
	}
	assert.Equal(t, want, got)
}

func TestAvailableSlotsIgnoresSecondsOnTheClock(t *testing.T) {
	// A wall clock mid-minute (14:00:30) still counts as 14:00: the 18:00
	// slot is 240 minutes out at minute resolution and stays bookable.
	now := time.Date(2024, 1, 10, 14, 0, 30, 0, time.Local)
	date := localDate(2024, 1, 10, 0, 0)

	got := AvailableSlots(date, now, DefaultTemplate(), LeadTimeMinutes)

	assert.True(t, Contains(got, MustTimeOfDay("18:00")))

	// Same for a clock carrying nanoseconds just before the boundary flips.
	now = time.Date(2024, 1, 10, 14, 0, 59, 999999999, time.Local)
	got = AvailableSlots(date, now, DefaultTemplate(), LeadTimeMinutes)
	assert.True(t, Contains(got, MustTimeOfDay("18:00")))

	// Once the minute itself advances, the slot drops out.
	now = time.Date(2024, 1, 10, 14, 1, 0, 0, time.Local)
	got = AvailableSlots(date, now, DefaultTemplate(), LeadTimeMinutes)
	assert.False(t, Contains(got, MustTimeOfDay("18:00")))
}

func TestAvailableSlotsOneMinuteShortIsExcluded(t *testing.T) {
	// A slot 239 minutes away misses the cut.
	template := []TimeOfDay{MustTimeOfDay("17:59"), MustTimeOfDay("18:00")}
	now := localDate(2024, 1, 10, 14, 0)
	date := localDate(2024, 1, 10, 0, 0)

	got := AvailableSlots(date, now, template, LeadTimeMinutes)

	assert.Equal(t, []TimeOfDay{MustTimeOfDay("18:00")}, got)
}

func TestAvailableSlotsEmptyWhenDayIsOver(t *testing.T) {
	now := localDate(2024, 1, 10, 21, 0)
	date := localDate(2024, 1, 10, 0, 0)

	got := AvailableSlots(date, now, DefaultTemplate(), LeadTimeMinutes)

	assert.Empty(t, got, "no slot is 4h ahead of 21:00; empty is a valid result")
}

func TestDefaultTemplateShape(t *testing.T) {
	template := DefaultTemplate()

	assert.Len(t, template, 14)
	assert.Equal(t, MustTimeOfDay("12:00"), template[0])
	assert.Equal(t, MustTimeOfDay("14:30"), template[5])
	assert.Equal(t, MustTimeOfDay("18:00"), template[6])
	assert.Equal(t, MustTimeOfDay("21:30"), template[13])

	assert.True(t, Contains(template, MustTimeOfDay("19:30")))
	assert.False(t, Contains(template, MustTimeOfDay("23:30")))
	assert.False(t, Contains(template, MustTimeOfDay("15:00")), "between service windows")
}

func TestDefaultTemplateReturnsCopy(t *testing.T) {
	a := DefaultTemplate()
	a[0] = MustTimeOfDay("03:00")

	assert.Equal(t, MustTimeOfDay("12:00"), DefaultTemplate()[0])
}
