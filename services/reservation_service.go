package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lamaison-az/restaurant-app/models"
	"github.com/lamaison-az/restaurant-app/scheduling"
	"github.com/lamaison-az/restaurant-app/utils"
)

var (
	// ErrInvalidInput covers structural validation failures; nothing was stored.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSlotUnavailable covers both an exact duplicate slot and a slot too
	// close to an existing reservation. The site shows one message for both.
	ErrSlotUnavailable = errors.New("selected time is not available")
	// ErrPersistence covers store read/write failures; surfaced as retryable.
	ErrPersistence = errors.New("reservation storage failed")
)

const (
	MinGuests  = 1
	MaxGuests  = 8
	dateLayout = "2006-01-02"
)

// ReservationStore is the persistence boundary of the submission flow.
// Injecting it keeps the conflict decision testable without a database.
type ReservationStore interface {
	// TimesForDate returns the times of every non-cancelled reservation on
	// the given civil date.
	TimesForDate(date string) ([]scheduling.TimeOfDay, error)
	Create(r *models.Reservation) error
}

type ReservationInput struct {
	Name            string
	Email           string
	Phone           string
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	Guests          int
	SpecialRequests string
}

type ReservationService struct {
	store    ReservationStore
	template []scheduling.TimeOfDay
	now      func() time.Time
}

func NewReservationService(store ReservationStore) *ReservationService {
	return &ReservationService{
		store:    store,
		template: scheduling.DefaultTemplate(),
		now:      time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *ReservationService) WithClock(now func() time.Time) *ReservationService {
	s.now = now
	return s
}

// Submit runs the full reservation flow: validate, re-check the lead time,
// check conflicts against stored state, insert as pending. The fetch and the
// insert are not one transaction, so two near-simultaneous submissions can
// still both pass the conflict check; closing that window needs an exclusion
// constraint in the database itself.
func (s *ReservationService) Submit(input ReservationInput) (*models.Reservation, error) {
	now := s.now()

	date, slot, err := s.validate(input, now)
	if err != nil {
		return nil, err
	}

	// Same-day requests must leave the kitchen enough lead time. The slot
	// picker already hides these, but the API re-checks.
	if scheduling.SameDay(date, now) {
		open := scheduling.AvailableSlots(date, now, s.template, scheduling.LeadTimeMinutes)
		if !scheduling.Contains(open, slot) {
			return nil, ErrSlotUnavailable
		}
	}

	existing, err := s.store.TimesForDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if scheduling.HasConflict(slot, existing, scheduling.MinGapMinutes) {
		return nil, ErrSlotUnavailable
	}

	resv := &models.Reservation{
		Code:            uuid.New().String(),
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.TrimSpace(input.Email),
		Phone:           strings.TrimSpace(input.Phone),
		ReservationDate: input.Date,
		ReservationTime: slot.String(),
		Guests:          input.Guests,
		Status:          models.ReservationPending,
	}
	if req := strings.TrimSpace(input.SpecialRequests); req != "" {
		resv.SpecialRequests = &req
	}

	if err := s.store.Create(resv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	utils.InfoLogger.Printf("Reservation %s created for %s %s (%d guests)",
		resv.Code, resv.ReservationDate, resv.ReservationTime, resv.Guests)

	return resv, nil
}

// SlotStatus is one template slot with its bookability for a given date.
type SlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SlotsForDate reports availability for every template slot on date,
// combining the lead-time filter with the stored conflict state. This feeds
// the booking form's slot picker; Submit re-checks everything at submission
// time, so the result is advisory.
func (s *ReservationService) SlotsForDate(dateStr string) ([]SlotStatus, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	now := s.now()
	if beforeToday(date, now) {
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}

	existing, err := s.store.TimesForDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	open := scheduling.AvailableSlots(date, now, s.template, scheduling.LeadTimeMinutes)

	statuses := make([]SlotStatus, 0, len(s.template))
	for _, slot := range s.template {
		available := scheduling.Contains(open, slot) &&
			!scheduling.HasConflict(slot, existing, scheduling.MinGapMinutes)
		statuses = append(statuses, SlotStatus{Time: slot.String(), Available: available})
	}
	return statuses, nil
}

func (s *ReservationService) validate(input ReservationInput, now time.Time) (time.Time, scheduling.TimeOfDay, error) {
	var zero scheduling.TimeOfDay

	if len(strings.TrimSpace(input.Name)) < 2 {
		return time.Time{}, zero, fmt.Errorf("%w: name must be at least 2 characters", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		return time.Time{}, zero, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if countDigits(input.Phone) < 10 {
		return time.Time{}, zero, fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}
	if input.Guests < MinGuests || input.Guests > MaxGuests {
		return time.Time{}, zero, fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, MinGuests, MaxGuests)
	}

	date, err := time.ParseInLocation(dateLayout, input.Date, time.Local)
	if err != nil {
		return time.Time{}, zero, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if beforeToday(date, now) {
		return time.Time{}, zero, fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}
	// Closed on Mondays.
	if date.Weekday() == time.Monday {
		return time.Time{}, zero, fmt.Errorf("%w: the restaurant is closed on Mondays", ErrInvalidInput)
	}

	slot, err := scheduling.ParseTimeOfDay(input.Time)
	if err != nil {
		return time.Time{}, zero, fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}
	if !scheduling.Contains(s.template, slot) {
		return time.Time{}, zero, fmt.Errorf("%w: time is not a bookable slot", ErrInvalidInput)
	}

	return date, slot, nil
}

func beforeToday(date, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return date.Before(today) && !scheduling.SameDay(date, now)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
