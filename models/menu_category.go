package models

import "time"

type MenuCategory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	NameAz       string    `gorm:"type:varchar(100);not null" json:"name_az"`
	NameEn       string    `gorm:"type:varchar(100);not null;unique" json:"name_en"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
