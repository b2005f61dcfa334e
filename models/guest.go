package models

import (
	"time"

	"gorm.io/gorm"
)

// Guest is the tenant-scoped guest profile (CRM). Created lazily on first
// booking and updated on repeat bookings with the same phone number.
// TotalStays/TotalSpentCents are maintained by the checkout flow, they are
// never recomputed ad hoc.
type Guest struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID  uint   `gorm:"column:owner_id;index:idx_guests_owner_phone,unique" json:"owner_id"`
	FullName string `gorm:"column:full_name;size:255" json:"full_name"`
	Phone    string `gorm:"column:phone;size:20;index:idx_guests_owner_phone,unique" json:"phone"`
	Email    string `gorm:"column:email;size:255" json:"email,omitempty"`

	IsVIP         bool `gorm:"column:is_vip;default:false" json:"is_vip"`
	IsBlacklisted bool `gorm:"column:is_blacklisted;default:false" json:"is_blacklisted"`

	TotalStays      int   `gorm:"column:total_stays;default:0" json:"total_stays"`
	TotalSpentCents int64 `gorm:"column:total_spent_cents;default:0" json:"total_spent_cents"`
}
