package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// ActiveBookingStatuses are the statuses that occupy a room for overlap
// purposes.
var ActiveBookingStatuses = []BookingStatus{BookingConfirmed, BookingCheckedIn}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

type BookingSource string

const (
	SourceWalkIn BookingSource = "WALK_IN"
	SourceWeb    BookingSource = "WEB"
	SourcePhone  BookingSource = "PHONE"
	SourceOTA    BookingSource = "OTA"
)

// Booking ties a guest to a room for a half-open [check_in, check_out)
// date range. TotalAmountCents and PaymentStatus are derived from the
// folio and persisted on every folio mutation; callers never set them.
// Bookings are never physically deleted — CANCELLED rows stay for audit.
type Booking struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID       uint   `gorm:"column:owner_id;index" json:"owner_id"`
	GuestID       uint   `gorm:"column:guest_id;index" json:"guest_id"`
	RoomID        *uint  `gorm:"column:room_id;index" json:"room_id,omitempty"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"check_out_date"`
	Nights       int       `gorm:"column:nights" json:"nights"`
	Adults       int       `gorm:"column:adults;default:1" json:"adults"`
	Children     int       `gorm:"column:children;default:0" json:"children"`

	Status        BookingStatus `gorm:"column:status;size:20;index" json:"status"`
	Source        BookingSource `gorm:"column:source;size:20;default:WALK_IN" json:"source"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;size:20;default:PENDING" json:"payment_status"`

	TotalAmountCents int64 `gorm:"column:total_amount_cents" json:"total_amount_cents"`
	PaidCents        int64 `gorm:"column:paid_cents" json:"paid_cents"`
	BalanceCents     int64 `gorm:"column:balance_cents" json:"balance_cents"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`

	Guest    Guest            `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Room     *Room            `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Charges  []BookingCharge  `gorm:"foreignKey:BookingID" json:"charges,omitempty"`
	Payments []BookingPayment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// Terminal reports whether no further transitions are allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingCheckedOut || s == BookingCancelled
}

// Active reports whether the booking occupies its room for overlap checks.
func (s BookingStatus) Active() bool {
	return s == BookingConfirmed || s == BookingCheckedIn
}
