package models

import "time"

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation stores the civil date as "YYYY-MM-DD" and the slot as "HH:MM",
// both restaurant-local and timezone naive. Cancelled rows are kept for the
// admin history but never count against availability.
type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Code            string    `gorm:"type:varchar(36);not null;uniqueIndex" json:"code"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Email           string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string    `gorm:"type:varchar(50);not null" json:"phone"`
	ReservationDate string    `gorm:"type:varchar(10);not null;index" json:"reservation_date"`
	ReservationTime string    `gorm:"type:varchar(5);not null" json:"reservation_time"`
	Guests          int       `gorm:"not null" json:"guests"`
	SpecialRequests *string   `gorm:"type:text" json:"special_requests"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// CanTransitionTo enforces the status lifecycle: pending may confirm or
// cancel, confirmed may only cancel, cancelled is terminal.
func (r *Reservation) CanTransitionTo(status string) bool {
	switch r.Status {
	case ReservationPending:
		return status == ReservationConfirmed || status == ReservationCancelled
	case ReservationConfirmed:
		return status == ReservationCancelled
	default:
		return false
	}
}
