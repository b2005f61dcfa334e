package models

import "time"

type PaymentMode string

const (
	PayCash PaymentMode = "CASH"
	PayCard PaymentMode = "CARD"
	PayUPI  PaymentMode = "UPI"
	PayBank PaymentMode = "BANK"
)

// BookingPayment is an append-only folio settlement row.
type BookingPayment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	BookingID     uint        `gorm:"column:booking_id;index" json:"booking_id"`
	AmountCents   int64       `gorm:"column:amount_cents" json:"amount_cents"`
	Mode          PaymentMode `gorm:"column:mode;size:20;default:CASH" json:"mode"`
	TransactionID string      `gorm:"column:transaction_id;size:128" json:"transaction_id,omitempty"`
}
