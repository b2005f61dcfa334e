package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomDirty       RoomStatus = "DIRTY"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// Room is tenant-owned inventory. Status is mutated only through the room
// service; prices are minor currency units (paise), never floats.
type Room struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID    uint       `gorm:"column:owner_id;index:idx_rooms_owner_number,unique" json:"owner_id"`
	RoomNumber string     `gorm:"column:room_number;size:10;index:idx_rooms_owner_number,unique" json:"room_number"`
	RoomType   string     `gorm:"column:room_type;size:50" json:"room_type"`
	PriceCents int64      `gorm:"column:price_cents" json:"price_cents"`
	Status     RoomStatus `gorm:"column:status;size:20;default:AVAILABLE" json:"status"`
	Floor      string     `gorm:"column:floor;size:10" json:"floor,omitempty"`
}
