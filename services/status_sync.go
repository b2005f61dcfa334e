package services

import (
	"fmt"

	"atithi-backend/models"
)

type NotificationEvent string

const (
	EventBookingConfirmed NotificationEvent = "BOOKING_CONFIRMED"
	EventGuestCheckedIn   NotificationEvent = "GUEST_CHECKED_IN"
	EventGuestCheckedOut  NotificationEvent = "GUEST_CHECKED_OUT"
	EventBookingCancelled NotificationEvent = "BOOKING_CANCELLED"
)

// SideEffects is the deterministic plan for one booking transition. Room
// and housekeeping effects are applied inside the same transaction as the
// status change; the notification event alone is dispatched post-commit.
type SideEffects struct {
	// RoomStatus, when set, is the target status for the booking's room.
	RoomStatus *models.RoomStatus
	// ReleaseRoom marks the room AVAILABLE, but only if the booking is
	// still the room's active occupant at apply time.
	ReleaseRoom bool

	CreateTask   bool
	TaskPriority models.TaskPriority

	UpdateGuestStats bool

	Event NotificationEvent
}

var bookingTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingCheckedIn, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCheckedIn, models.BookingCancelled},
	models.BookingCheckedIn: {models.BookingCheckedOut, models.BookingCancelled},
}

// PlanTransition validates a booking status change and returns the side
// effects it entails. It is pure: same inputs, same plan.
func PlanTransition(from, to models.BookingStatus) (SideEffects, error) {
	allowed := false
	for _, t := range bookingTransitions[from] {
		if t == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return SideEffects{}, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, from, to)
	}

	switch to {
	case models.BookingCheckedIn:
		occupied := models.RoomOccupied
		return SideEffects{RoomStatus: &occupied, Event: EventGuestCheckedIn}, nil
	case models.BookingCheckedOut:
		dirty := models.RoomDirty
		return SideEffects{
			RoomStatus:       &dirty,
			CreateTask:       true,
			TaskPriority:     models.PriorityHigh,
			UpdateGuestStats: true,
			Event:            EventGuestCheckedOut,
		}, nil
	case models.BookingCancelled:
		return SideEffects{ReleaseRoom: true, Event: EventBookingCancelled}, nil
	}
	return SideEffects{}, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, from, to)
}
