package services

import (
	"encoding/json"
	"log"

	"atithi-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityService writes the tenant audit trail. Writes are best-effort
// and happen outside the domain transaction: a failed log line is logged
// and dropped, never propagated.
type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

func (s *ActivityService) Record(ownerID uint, action, details string, meta map[string]interface{}) {
	entry := models.ActivityLog{
		OwnerID: ownerID,
		Action:  action,
		Details: details,
	}
	if len(meta) > 0 {
		if raw, err := json.Marshal(meta); err == nil {
			entry.Metadata = datatypes.JSON(raw)
		}
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("warning: failed to write activity log (%s): %v", action, err)
	}
}

func (s *ActivityService) List(ownerID uint, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []models.ActivityLog
	err := s.DB.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
