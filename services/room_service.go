package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atithi-backend/models"

	"gorm.io/gorm"
)

// RoomService owns room inventory and the room status machine. SetStatus
// is the only mutation path for room status; controllers never touch it
// directly.
type RoomService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewRoomService(db *gorm.DB, activity *ActivityService) *RoomService {
	return &RoomService{DB: db, Activity: activity}
}

// AVAILABLE ↔ OCCUPIED ↔ DIRTY → AVAILABLE, with MAINTENANCE reachable
// from the non-occupied states only.
var roomTransitions = map[models.RoomStatus][]models.RoomStatus{
	models.RoomAvailable:   {models.RoomOccupied, models.RoomMaintenance},
	models.RoomOccupied:    {models.RoomAvailable, models.RoomDirty},
	models.RoomDirty:       {models.RoomAvailable, models.RoomOccupied, models.RoomMaintenance},
	models.RoomMaintenance: {models.RoomAvailable},
}

func roomTransitionAllowed(from, to models.RoomStatus) bool {
	if from == to {
		return true
	}
	for _, t := range roomTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func (s *RoomService) Create(ownerID uint, room *models.Room) error {
	room.OwnerID = ownerID
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if room.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateErr(err) {
			return fmt.Errorf("%w: room number %s already exists", models.ErrConflict, room.RoomNumber)
		}
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (s *RoomService) Update(ownerID, roomID uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetByID(ownerID, roomID)
	if err != nil {
		return nil, err
	}
	// Status changes go through SetStatus/mark endpoints only.
	delete(updates, "status")
	delete(updates, "owner_id")
	if len(updates) > 0 {
		if err := s.DB.Model(room).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update room: %w", err)
		}
	}
	return room, nil
}

func (s *RoomService) GetByID(ownerID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Where("owner_id = ? AND id = ?", ownerID, roomID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) List(ownerID uint, roomType string, status models.RoomStatus) ([]models.Room, error) {
	q := s.DB.Where("owner_id = ?", ownerID)
	if roomType != "" {
		q = q.Where("room_type = ?", roomType)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rooms []models.Room
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// AvailableRooms lists bookable rooms of a type, cheapest first.
func (s *RoomService) AvailableRooms(ownerID uint, roomType string) ([]models.Room, error) {
	q := s.DB.Where("owner_id = ? AND status = ?", ownerID, models.RoomAvailable)
	if roomType != "" {
		q = q.Where("room_type = ?", roomType)
	}
	var rooms []models.Room
	if err := q.Order("price_cents ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("available rooms: %w", err)
	}
	return rooms, nil
}

// lockForBooking loads the room row under an exclusive lock. This is the
// serialization point for overlap checks: two concurrent creates on the
// same room queue here.
func (s *RoomService) lockForBooking(tx *gorm.DB, ownerID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := forUpdate(tx).Where("owner_id = ? AND id = ?", ownerID, roomID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock room: %w", err)
	}
	return &room, nil
}

// setStatus transitions a room inside the caller's transaction.
func (s *RoomService) setStatus(tx *gorm.DB, ownerID, roomID uint, target models.RoomStatus) error {
	var room models.Room
	err := forUpdate(tx).Where("owner_id = ? AND id = ?", ownerID, roomID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrRoomNotFound
	}
	if err != nil {
		return fmt.Errorf("load room: %w", err)
	}
	if room.Status == target {
		return nil
	}
	if !roomTransitionAllowed(room.Status, target) {
		return fmt.Errorf("%w: room %s -> %s", models.ErrInvalidTransition, room.Status, target)
	}
	if err := tx.Model(&room).Update("status", target).Error; err != nil {
		return fmt.Errorf("set room status: %w", err)
	}
	return nil
}

// MarkClean flips a room back to AVAILABLE and auto-completes its pending
// cleaning tasks.
func (s *RoomService) MarkClean(ctx context.Context, ownerID, roomID uint) (*models.Room, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.setStatus(tx, ownerID, roomID, models.RoomAvailable); err != nil {
			return err
		}
		now := time.Now().UTC()
		return tx.Model(&models.HousekeepingTask{}).
			Where("owner_id = ? AND room_id = ? AND status = ? AND task_type = ?",
				ownerID, roomID, models.TaskPending, models.TaskCleaning).
			Updates(map[string]interface{}{
				"status":       models.TaskCompleted,
				"completed_at": now,
			}).Error
	})
	if err != nil {
		return nil, wrapPersistence(err)
	}
	room, err := s.GetByID(ownerID, roomID)
	if err != nil {
		return nil, err
	}
	s.Activity.Record(ownerID, "HOUSEKEEPING",
		fmt.Sprintf("Room %s marked AVAILABLE", room.RoomNumber), nil)
	return room, nil
}

// MarkDirty flags a room for cleaning and opens a NORMAL-priority task so
// housekeeping sees it without waiting for a checkout.
func (s *RoomService) MarkDirty(ctx context.Context, ownerID, roomID uint) (*models.Room, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.setStatus(tx, ownerID, roomID, models.RoomDirty); err != nil {
			return err
		}
		task := models.HousekeepingTask{
			OwnerID:     ownerID,
			RoomID:      roomID,
			TaskType:    models.TaskCleaning,
			Priority:    models.PriorityNormal,
			Status:      models.TaskPending,
			Description: "Room marked dirty",
		}
		return tx.Create(&task).Error
	})
	if err != nil {
		return nil, wrapPersistence(err)
	}
	room, err := s.GetByID(ownerID, roomID)
	if err != nil {
		return nil, err
	}
	s.Activity.Record(ownerID, "HOUSEKEEPING",
		fmt.Sprintf("Room %s marked DIRTY", room.RoomNumber), nil)
	return room, nil
}

// MarkMaintenance blocks a room (out of order). Occupied rooms cannot be
// blocked; the transition table rejects it.
func (s *RoomService) MarkMaintenance(ctx context.Context, ownerID, roomID uint) (*models.Room, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.setStatus(tx, ownerID, roomID, models.RoomMaintenance)
	})
	if err != nil {
		return nil, wrapPersistence(err)
	}
	room, err := s.GetByID(ownerID, roomID)
	if err != nil {
		return nil, err
	}
	s.Activity.Record(ownerID, "MAINTENANCE",
		fmt.Sprintf("Room %s placed in MAINTENANCE", room.RoomNumber), nil)
	return room, nil
}

func (s *RoomService) ListTasks(ownerID uint, status models.TaskStatus) ([]models.HousekeepingTask, error) {
	q := s.DB.Preload("Room").Where("owner_id = ?", ownerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tasks []models.HousekeepingTask
	if err := q.Order("priority DESC, created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// CompleteTask marks a housekeeping task done; a completed CLEANING task
// makes the room AVAILABLE again in the same transaction.
func (s *RoomService) CompleteTask(ctx context.Context, ownerID, taskID uint) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := forUpdate(tx).Where("owner_id = ? AND id = ?", ownerID, taskID).First(&task).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrTaskNotFound
		}
		if err != nil {
			return fmt.Errorf("load task: %w", err)
		}
		if task.Status == models.TaskCompleted {
			return nil
		}
		now := time.Now().UTC()
		if err := tx.Model(&task).Updates(map[string]interface{}{
			"status":       models.TaskCompleted,
			"completed_at": now,
		}).Error; err != nil {
			return fmt.Errorf("complete task: %w", err)
		}
		if task.TaskType == models.TaskCleaning {
			if err := s.setStatus(tx, ownerID, task.RoomID, models.RoomAvailable); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapPersistence(err)
	}
	s.Activity.Record(ownerID, "HOUSEKEEPING",
		fmt.Sprintf("Task #%d completed", task.ID), nil)
	return &task, nil
}
