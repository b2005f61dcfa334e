package services

import (
	"context"
	"log"

	"atithi-backend/models"
)

// Notifier is the port to the external notification dispatcher
// (email/WhatsApp delivery lives outside this service). Implementations
// must not block the caller and must never fail a booking: dispatch is
// fire-and-forget, emitted once per committed transition.
type Notifier interface {
	BookingEvent(ctx context.Context, booking *models.Booking, event NotificationEvent)
}

// LogNotifier stands in for the dispatcher when no delivery backend is
// configured; it only records that an emission happened.
type LogNotifier struct{}

func (LogNotifier) BookingEvent(_ context.Context, booking *models.Booking, event NotificationEvent) {
	log.Printf("notify: booking #%d (%s) event=%s", booking.ID, booking.ReferenceCode, event)
}
