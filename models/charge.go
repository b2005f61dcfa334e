package models

import "time"

// BookingCharge is an append-only folio line (room service, laundry, ...).
// Corrections are recorded as new rows, existing rows are never updated.
type BookingCharge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	BookingID   uint   `gorm:"column:booking_id;index" json:"booking_id"`
	Description string `gorm:"column:description;size:255" json:"description"`
	AmountCents int64  `gorm:"column:amount_cents" json:"amount_cents"`
}
