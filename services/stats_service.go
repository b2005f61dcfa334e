package services

import (
	"context"
	"fmt"
	"time"

	"atithi-backend/models"

	"gorm.io/gorm"
)

// StatsService aggregates the dashboard numbers. Read-only: it relies on
// the derived booking columns being consistent at commit time, so nothing
// here re-walks the charge/payment ledgers.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type DailyRevenue struct {
	Date           string `json:"date"`
	CollectedCents int64  `json:"collected_cents"`
}

type DashboardStats struct {
	BilledCents    int64 `json:"billed_cents"`
	CollectedCents int64 `json:"collected_cents"`
	ActiveBookings int64 `json:"active_bookings"`
	OccupiedRooms  int64 `json:"occupied_rooms"`
	AvailableRooms int64 `json:"available_rooms"`

	Trend          []DailyRevenue   `json:"trend"`
	RecentBookings []models.Booking `json:"recent_bookings"`
}

func (s *StatsService) Dashboard(ctx context.Context, ownerID uint) (*DashboardStats, error) {
	db := s.DB.WithContext(ctx)
	stats := &DashboardStats{}

	err := db.Model(&models.Booking{}).
		Where("owner_id = ? AND status <> ?", ownerID, models.BookingCancelled).
		Select("COALESCE(SUM(total_amount_cents), 0)").
		Scan(&stats.BilledCents).Error
	if err != nil {
		return nil, fmt.Errorf("billed total: %w", err)
	}

	err = db.Model(&models.BookingPayment{}).
		Joins("JOIN bookings ON bookings.id = booking_payments.booking_id").
		Where("bookings.owner_id = ?", ownerID).
		Select("COALESCE(SUM(booking_payments.amount_cents), 0)").
		Scan(&stats.CollectedCents).Error
	if err != nil {
		return nil, fmt.Errorf("collected total: %w", err)
	}

	if err := db.Model(&models.Booking{}).
		Where("owner_id = ? AND status IN ?", ownerID, models.ActiveBookingStatuses).
		Count(&stats.ActiveBookings).Error; err != nil {
		return nil, fmt.Errorf("active bookings: %w", err)
	}

	// Dirty rooms count as occupied: they are not sellable yet.
	if err := db.Model(&models.Room{}).
		Where("owner_id = ? AND status IN ?", ownerID,
			[]models.RoomStatus{models.RoomOccupied, models.RoomDirty}).
		Count(&stats.OccupiedRooms).Error; err != nil {
		return nil, fmt.Errorf("occupied rooms: %w", err)
	}
	if err := db.Model(&models.Room{}).
		Where("owner_id = ? AND status = ?", ownerID, models.RoomAvailable).
		Count(&stats.AvailableRooms).Error; err != nil {
		return nil, fmt.Errorf("available rooms: %w", err)
	}

	today := dateOnly(time.Now().UTC())
	stats.Trend = make([]DailyRevenue, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)
		var collected int64
		err := db.Model(&models.BookingPayment{}).
			Joins("JOIN bookings ON bookings.id = booking_payments.booking_id").
			Where("bookings.owner_id = ?", ownerID).
			Where("booking_payments.created_at >= ? AND booking_payments.created_at < ?", day, next).
			Select("COALESCE(SUM(booking_payments.amount_cents), 0)").
			Scan(&collected).Error
		if err != nil {
			return nil, fmt.Errorf("trend day %s: %w", day.Format("2006-01-02"), err)
		}
		stats.Trend = append(stats.Trend, DailyRevenue{
			Date:           day.Format("2006-01-02"),
			CollectedCents: collected,
		})
	}

	if err := db.Preload("Guest").Preload("Room").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentBookings).Error; err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}
	return stats, nil
}
