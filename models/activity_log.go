package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is the tenant-scoped audit trail. Rows are append-only and
// written best-effort: a failed log write never fails the operation that
// produced it.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	OwnerID  uint           `gorm:"column:owner_id;index" json:"owner_id"`
	Action   string         `gorm:"column:action;size:50;index" json:"action"`
	Details  string         `gorm:"column:details;size:512" json:"details"`
	Metadata datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
}
