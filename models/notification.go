package models

import "time"

const (
	NotificationReservation = "reservation"
	NotificationContact     = "contact"
)

// Notification is an admin inbox row, written whenever a reservation request
// or contact message arrives. Delivery (email etc.) is out of scope.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Kind      string    `gorm:"type:varchar(30);not null" json:"kind"`
	Title     *string   `gorm:"type:varchar(100)" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsSeen    bool      `gorm:"not null;default:false" json:"is_seen"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
