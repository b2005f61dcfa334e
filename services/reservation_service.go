package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"atithi-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationService is the booking allocator: it validates date ranges,
// serializes overlap checks on the room row, drives the booking state
// machine and applies the cross-entity side effects each transition
// entails. All mutations are transaction scripts — the full effect of an
// operation is visible at its call site, there are no hidden listeners.
type ReservationService struct {
	DB       *gorm.DB
	Rooms    *RoomService
	Guests   *GuestService
	Activity *ActivityService
	Notifier Notifier
}

func NewReservationService(db *gorm.DB, rooms *RoomService, guests *GuestService, activity *ActivityService, notifier Notifier) *ReservationService {
	return &ReservationService{
		DB:       db,
		Rooms:    rooms,
		Guests:   guests,
		Activity: activity,
		Notifier: notifier,
	}
}

// CreateBookingInput is the reservation request. RoomID may be nil: the
// booking is then created PENDING, unassigned, and skips the room lock
// and overlap check entirely.
type CreateBookingInput struct {
	Guest    GuestInfo
	RoomID   *uint
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	Source   models.BookingSource
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create allocates a room to a guest for [check_in, check_out). The
// overlap check and the booking insert happen under an exclusive lock on
// the room row, so two concurrent creates for the same room always
// serialize: the loser sees ErrRoomConflict and nothing else changes.
// Notification dispatch runs strictly after commit, never under the lock.
func (s *ReservationService) Create(ctx context.Context, ownerID uint, in CreateBookingInput) (*models.Booking, error) {
	checkIn := dateOnly(in.CheckIn)
	checkOut := dateOnly(in.CheckOut)
	if !checkOut.After(checkIn) {
		return nil, models.ErrInvalidDateRange
	}
	if in.Adults <= 0 {
		in.Adults = 1
	}
	if in.Children < 0 {
		in.Children = 0
	}
	if in.Source == "" {
		in.Source = models.SourceWalkIn
	}

	nights := nightsBetween(checkIn, checkOut)
	var booking models.Booking

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var priceCents int64
		if in.RoomID != nil {
			room, err := s.Rooms.lockForBooking(tx, ownerID, *in.RoomID)
			if err != nil {
				return err
			}
			if room.Status == models.RoomMaintenance {
				return models.ErrRoomUnavailable
			}

			// Half-open interval overlap: existing.check_in < new.check_out
			// AND existing.check_out > new.check_in, over active statuses.
			var overlapping int64
			if err := tx.Model(&models.Booking{}).
				Where("owner_id = ? AND room_id = ?", ownerID, *in.RoomID).
				Where("status IN ?", models.ActiveBookingStatuses).
				Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
				Count(&overlapping).Error; err != nil {
				return fmt.Errorf("overlap check: %w", err)
			}
			if overlapping > 0 {
				return models.ErrRoomConflict
			}
			priceCents = room.PriceCents
		}

		guest, err := s.Guests.Upsert(tx, ownerID, in.Guest)
		if err != nil {
			return err
		}

		status := models.BookingPending
		if in.RoomID != nil {
			status = models.BookingConfirmed
		}
		total, paid, balance, payStatus := ComputeFolio(nights, priceCents, nil, nil)

		booking = models.Booking{
			OwnerID:          ownerID,
			GuestID:          guest.ID,
			RoomID:           in.RoomID,
			ReferenceCode:    newReferenceCode(),
			CheckInDate:      checkIn,
			CheckOutDate:     checkOut,
			Nights:           nights,
			Adults:           in.Adults,
			Children:         in.Children,
			Status:           status,
			Source:           in.Source,
			PaymentStatus:    payStatus,
			TotalAmountCents: total,
			PaidCents:        paid,
			BalanceCents:     balance,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		if in.RoomID != nil {
			if err := s.Rooms.setStatus(tx, ownerID, *in.RoomID, models.RoomOccupied); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, wrapPersistence(txErr)
	}

	created, err := s.Get(ctx, ownerID, booking.ID)
	if err != nil {
		return nil, err
	}

	s.Activity.Record(ownerID, "BOOKING",
		fmt.Sprintf("Booking %s created (%s)", created.ReferenceCode, created.Status),
		map[string]interface{}{"booking_id": created.ID, "source": created.Source})
	if created.Status == models.BookingConfirmed {
		go s.Notifier.BookingEvent(context.WithoutCancel(ctx), created, EventBookingConfirmed)
	}
	return created, nil
}

// Transition moves a booking to the target status and applies the plan
// from PlanTransition atomically: state change, room status, housekeeping
// task and guest stats commit together or not at all. Force skips the
// settled-folio precondition on checkout.
func (s *ReservationService) Transition(ctx context.Context, ownerID, bookingID uint, target models.BookingStatus, force bool) (*models.Booking, error) {
	var (
		booking models.Booking
		effects SideEffects
	)

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := forUpdate(tx).Preload("Guest").
			Where("owner_id = ? AND id = ?", ownerID, bookingID).
			First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}

		effects, err = PlanTransition(booking.Status, target)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{"status": target}
		switch target {
		case models.BookingCheckedIn:
			if booking.RoomID == nil {
				return fmt.Errorf("%w: cannot check in without an assigned room", models.ErrInvalidTransition)
			}
			updates["checked_in_at"] = now
		case models.BookingCheckedOut:
			if booking.BalanceCents > 0 && !force {
				return models.ErrUnsettledFolio
			}
			updates["checked_out_at"] = now
		case models.BookingCancelled:
			updates["cancelled_at"] = now
		}

		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		booking.Status = target

		if booking.RoomID != nil {
			if effects.RoomStatus != nil {
				if err := s.Rooms.setStatus(tx, ownerID, *booking.RoomID, *effects.RoomStatus); err != nil {
					return err
				}
			}
			if effects.ReleaseRoom {
				if err := s.releaseRoomIfVacant(tx, ownerID, *booking.RoomID, booking.ID); err != nil {
					return err
				}
			}
			if effects.CreateTask {
				task := models.HousekeepingTask{
					OwnerID:     ownerID,
					RoomID:      *booking.RoomID,
					TaskType:    models.TaskCleaning,
					Priority:    effects.TaskPriority,
					Status:      models.TaskPending,
					Description: fmt.Sprintf("Checkout cleaning for guest %s", booking.Guest.FullName),
				}
				if err := tx.Create(&task).Error; err != nil {
					return fmt.Errorf("create housekeeping task: %w", err)
				}
			}
		}

		if effects.UpdateGuestStats {
			if err := s.Guests.recordStay(tx, booking.GuestID, booking.TotalAmountCents); err != nil {
				return fmt.Errorf("update guest stats: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, wrapPersistence(txErr)
	}

	updated, err := s.Get(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}

	s.Activity.Record(ownerID, "BOOKING",
		fmt.Sprintf("Booking %s -> %s", updated.ReferenceCode, target),
		map[string]interface{}{"booking_id": updated.ID})
	go s.Notifier.BookingEvent(context.WithoutCancel(ctx), updated, effects.Event)
	return updated, nil
}

// releaseRoomIfVacant returns the room to AVAILABLE only when the
// cancelled booking was its active occupant: a room still claimed by
// another CONFIRMED/CHECKED_IN booking keeps its status.
func (s *ReservationService) releaseRoomIfVacant(tx *gorm.DB, ownerID, roomID, cancelledBookingID uint) error {
	var stillActive int64
	if err := tx.Model(&models.Booking{}).
		Where("owner_id = ? AND room_id = ? AND id <> ?", ownerID, roomID, cancelledBookingID).
		Where("status IN ?", models.ActiveBookingStatuses).
		Count(&stillActive).Error; err != nil {
		return fmt.Errorf("count active bookings: %w", err)
	}
	if stillActive > 0 {
		return nil
	}

	var room models.Room
	if err := tx.Where("owner_id = ? AND id = ?", ownerID, roomID).First(&room).Error; err != nil {
		return fmt.Errorf("load room: %w", err)
	}
	if room.Status != models.RoomOccupied {
		return nil
	}
	return s.Rooms.setStatus(tx, ownerID, roomID, models.RoomAvailable)
}

func (s *ReservationService) Get(ctx context.Context, ownerID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Guest").Preload("Room").Preload("Charges").Preload("Payments").
		Where("owner_id = ? AND id = ?", ownerID, bookingID).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &booking, nil
}

func (s *ReservationService) List(ctx context.Context, ownerID uint, status models.BookingStatus) ([]models.Booking, error) {
	q := s.DB.WithContext(ctx).
		Preload("Guest").Preload("Room").
		Where("owner_id = ?", ownerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var bookings []models.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
