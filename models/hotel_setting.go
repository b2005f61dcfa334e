package models

import (
	"time"

	"gorm.io/gorm"
)

// HotelSetting holds per-tenant configuration. One row per owner,
// created lazily on first access.
type HotelSetting struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID        uint   `gorm:"column:owner_id;uniqueIndex" json:"owner_id"`
	HotelName      string `gorm:"column:hotel_name;size:255;default:My Hotel" json:"hotel_name"`
	CurrencySymbol string `gorm:"column:currency_symbol;size:8;default:₹" json:"currency_symbol"`
	Timezone       string `gorm:"column:timezone;size:64;default:UTC" json:"timezone"`
}
