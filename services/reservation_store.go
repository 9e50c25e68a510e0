package services

import (
	"gorm.io/gorm"

	"github.com/lamaison-az/restaurant-app/models"
	"github.com/lamaison-az/restaurant-app/scheduling"
	"github.com/lamaison-az/restaurant-app/utils"
)

// GormReservationStore backs ReservationStore with the application database.
type GormReservationStore struct {
	DB *gorm.DB
}

func NewGormReservationStore(db *gorm.DB) *GormReservationStore {
	return &GormReservationStore{DB: db}
}

func (g *GormReservationStore) TimesForDate(date string) ([]scheduling.TimeOfDay, error) {
	var raw []string
	err := g.DB.Model(&models.Reservation{}).
		Where("reservation_date = ? AND status <> ?", date, models.ReservationCancelled).
		Pluck("reservation_time", &raw).Error
	if err != nil {
		return nil, err
	}

	times := make([]scheduling.TimeOfDay, 0, len(raw))
	for _, s := range raw {
		t, err := scheduling.ParseTimeOfDay(s)
		if err != nil {
			// A malformed row should not block bookings for the whole day.
			utils.ErrorLogger.Printf("Skipping unparsable reservation time %q on %s: %v", s, date, err)
			continue
		}
		times = append(times, t)
	}
	return times, nil
}

func (g *GormReservationStore) Create(r *models.Reservation) error {
	return g.DB.Create(r).Error
}
