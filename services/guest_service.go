package services

import (
	"errors"
	"fmt"
	"strings"

	"atithi-backend/models"

	"gorm.io/gorm"
)

// GuestService owns the tenant-scoped guest directory.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// GuestInfo is the contact payload attached to a reservation request.
type GuestInfo struct {
	FullName string
	Phone    string
	Email    string
}

// Upsert finds or creates the guest for (owner, phone) inside the given
// transaction. Repeat bookings with the same phone update name/email to
// the latest values instead of duplicating the row. The unique index on
// (owner_id, phone) backstops the lost-update race: a duplicate insert is
// resolved by re-reading the winner.
func (s *GuestService) Upsert(tx *gorm.DB, ownerID uint, info GuestInfo) (*models.Guest, error) {
	phone := strings.TrimSpace(info.Phone)
	name := strings.TrimSpace(info.FullName)
	if phone == "" || name == "" {
		return nil, fmt.Errorf("%w: guest name and phone are required", models.ErrValidation)
	}

	var guest models.Guest
	err := tx.Where("owner_id = ? AND phone = ?", ownerID, phone).First(&guest).Error
	if err == nil {
		updates := map[string]interface{}{}
		if guest.FullName != name {
			updates["full_name"] = name
		}
		if info.Email != "" && guest.Email != info.Email {
			updates["email"] = info.Email
		}
		if len(updates) > 0 {
			if err := tx.Model(&guest).Updates(updates).Error; err != nil {
				return nil, fmt.Errorf("update guest: %w", err)
			}
		}
		return &guest, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup guest: %w", err)
	}

	guest = models.Guest{
		OwnerID:  ownerID,
		FullName: name,
		Phone:    phone,
		Email:    info.Email,
	}
	if err := tx.Create(&guest).Error; err != nil {
		if isDuplicateErr(err) {
			// Lost the insert race; the committed row wins.
			if err2 := tx.Where("owner_id = ? AND phone = ?", ownerID, phone).First(&guest).Error; err2 == nil {
				return &guest, nil
			}
		}
		return nil, fmt.Errorf("create guest: %w", err)
	}
	return &guest, nil
}

func (s *GuestService) GetByID(ownerID, guestID uint) (*models.Guest, error) {
	var guest models.Guest
	err := s.DB.Where("owner_id = ? AND id = ?", ownerID, guestID).First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return &guest, nil
}

// List returns the tenant's guests, optionally filtered by a search term
// matched against name, phone and email.
func (s *GuestService) List(ownerID uint, search string) ([]models.Guest, error) {
	q := s.DB.Where("owner_id = ?", ownerID)
	if term := strings.TrimSpace(search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, "%"+term+"%", like,
		)
	}
	var guests []models.Guest
	if err := q.Order("full_name ASC").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}

// GuestHistory is a guest profile plus their booking trail.
type GuestHistory struct {
	Guest    models.Guest     `json:"guest"`
	Bookings []models.Booking `json:"bookings"`
}

func (s *GuestService) History(ownerID, guestID uint) (*GuestHistory, error) {
	guest, err := s.GetByID(ownerID, guestID)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := s.DB.
		Preload("Room").
		Where("owner_id = ? AND guest_id = ?", ownerID, guestID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("guest history: %w", err)
	}
	return &GuestHistory{Guest: *guest, Bookings: bookings}, nil
}

func (s *GuestService) ToggleBlacklist(ownerID, guestID uint) (*models.Guest, error) {
	guest, err := s.GetByID(ownerID, guestID)
	if err != nil {
		return nil, err
	}
	guest.IsBlacklisted = !guest.IsBlacklisted
	if err := s.DB.Model(guest).Update("is_blacklisted", guest.IsBlacklisted).Error; err != nil {
		return nil, fmt.Errorf("toggle blacklist: %w", err)
	}
	return guest, nil
}

// recordStay bumps the aggregate stats on checkout, inside the checkout
// transaction so they move atomically with the booking status.
func (s *GuestService) recordStay(tx *gorm.DB, guestID uint, spentCents int64) error {
	return tx.Model(&models.Guest{}).
		Where("id = ?", guestID).
		Updates(map[string]interface{}{
			"total_stays":       gorm.Expr("total_stays + 1"),
			"total_spent_cents": gorm.Expr("total_spent_cents + ?", spentCents),
		}).Error
}
