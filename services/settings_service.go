package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"atithi-backend/models"

	"gorm.io/gorm"
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the tenant's settings row, creating defaults on first access.
func (s *SettingsService) Get(ctx context.Context, ownerID uint) (*models.HotelSetting, error) {
	var setting models.HotelSetting
	err := s.DB.WithContext(ctx).Where("owner_id = ?", ownerID).First(&setting).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrapPersistence(err)
	}

	setting = models.HotelSetting{
		OwnerID:        ownerID,
		HotelName:      "My Hotel",
		CurrencySymbol: "₹",
		Timezone:       "UTC",
	}
	if err := s.DB.WithContext(ctx).Create(&setting).Error; err != nil {
		if isDuplicateErr(err) {
			// Lost the first-access race; the other writer's row wins.
			if err := s.DB.WithContext(ctx).Where("owner_id = ?", ownerID).First(&setting).Error; err != nil {
				return nil, wrapPersistence(err)
			}
			return &setting, nil
		}
		return nil, wrapPersistence(err)
	}
	return &setting, nil
}

type SettingsUpdate struct {
	HotelName      *string `json:"hotel_name"`
	CurrencySymbol *string `json:"currency_symbol"`
	Timezone       *string `json:"timezone"`
}

func (s *SettingsService) Update(ctx context.Context, ownerID uint, in SettingsUpdate) (*models.HotelSetting, error) {
	setting, err := s.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if in.HotelName != nil {
		name := strings.TrimSpace(*in.HotelName)
		if name == "" {
			return nil, fmt.Errorf("%w: hotel name cannot be empty", models.ErrValidation)
		}
		setting.HotelName = name
	}
	if in.CurrencySymbol != nil {
		sym := strings.TrimSpace(*in.CurrencySymbol)
		if sym == "" {
			return nil, fmt.Errorf("%w: currency symbol cannot be empty", models.ErrValidation)
		}
		setting.CurrencySymbol = sym
	}
	if in.Timezone != nil {
		tz := strings.TrimSpace(*in.Timezone)
		if tz == "" {
			return nil, fmt.Errorf("%w: timezone cannot be empty", models.ErrValidation)
		}
		setting.Timezone = tz
	}

	if err := s.DB.WithContext(ctx).Save(setting).Error; err != nil {
		return nil, wrapPersistence(err)
	}
	return setting, nil
}
