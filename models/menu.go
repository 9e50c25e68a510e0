package models

import "time"

// MenuItem carries both site languages; the frontend picks name_az/name_en
// based on the active locale.
type MenuItem struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	CategoryID    uint         `gorm:"not null;index" json:"category_id"`
	Category      MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	NameAz        string       `gorm:"type:varchar(255);not null" json:"name_az"`
	NameEn        string       `gorm:"type:varchar(255);not null" json:"name_en"`
	DescriptionAz *string      `gorm:"type:text" json:"description_az"`
	DescriptionEn *string      `gorm:"type:text" json:"description_en"`
	Price         float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	IsVegan       bool         `gorm:"not null;default:false" json:"is_vegan"`
	IsSpicy       bool         `gorm:"not null;default:false" json:"is_spicy"`
	IsGlutenFree  bool         `gorm:"not null;default:false" json:"is_gluten_free"`
	IsAvailable   bool         `gorm:"not null;default:true" json:"is_available"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null" json:"updated_at"`
}
