package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskType string

const (
	TaskCleaning    TaskType = "CLEANING"
	TaskMaintenance TaskType = "MAINTENANCE"
)

type TaskPriority string

const (
	PriorityNormal TaskPriority = "NORMAL"
	PriorityHigh   TaskPriority = "HIGH"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "PENDING"
	TaskCompleted TaskStatus = "COMPLETED"
)

// HousekeepingTask is a cleaning/maintenance work item. Checkout creates
// one automatically with HIGH priority; completing a CLEANING task flips
// the room back to AVAILABLE.
type HousekeepingTask struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID     uint         `gorm:"column:owner_id;index" json:"owner_id"`
	RoomID      uint         `gorm:"column:room_id;index" json:"room_id"`
	TaskType    TaskType     `gorm:"column:task_type;size:20;default:CLEANING" json:"task_type"`
	Priority    TaskPriority `gorm:"column:priority;size:10;default:NORMAL" json:"priority"`
	Status      TaskStatus   `gorm:"column:status;size:20;default:PENDING" json:"status"`
	Description string       `gorm:"column:description;size:255" json:"description,omitempty"`
	CompletedAt *time.Time   `gorm:"column:completed_at" json:"completed_at,omitempty"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
