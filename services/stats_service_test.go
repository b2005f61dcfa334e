package services

import (
	"context"
	"testing"

	"atithi-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAggregates(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	svc := NewStatsService(st.DB)
	const owner = uint(1)

	occupied := seedRoom(t, st, owner, "101", 200000)
	seedRoom(t, st, owner, "102", 150000)
	seedRoom(t, st, 2, "101", 999999) // other tenant, must not leak in

	booking, err := st.Reservations.Create(ctx, owner, CreateBookingInput{
		Guest:    testGuest("Asha Verma", "9000000001"),
		RoomID:   &occupied.ID,
		CheckIn:  day(t, "2026-09-01"),
		CheckOut: day(t, "2026-09-03"),
	})
	require.NoError(t, err)
	_, err = st.Folio.AddPayment(ctx, owner, booking.ID, 100000, models.PayCash, "")
	require.NoError(t, err)

	// A cancelled booking contributes nothing to billed revenue.
	roomless, err := st.Reservations.Create(ctx, owner, CreateBookingInput{
		Guest:    testGuest("Cancelled", "9000000002"),
		CheckIn:  day(t, "2026-09-01"),
		CheckOut: day(t, "2026-09-02"),
	})
	require.NoError(t, err)
	_, err = st.Reservations.Transition(ctx, owner, roomless.ID, models.BookingCancelled, false)
	require.NoError(t, err)

	stats, err := svc.Dashboard(ctx, owner)
	require.NoError(t, err)

	assert.Equal(t, int64(400000), stats.BilledCents)
	assert.Equal(t, int64(100000), stats.CollectedCents)
	assert.Equal(t, int64(1), stats.ActiveBookings)
	assert.Equal(t, int64(1), stats.OccupiedRooms)
	assert.Equal(t, int64(1), stats.AvailableRooms)
	assert.Len(t, stats.Trend, 7)
	require.NotEmpty(t, stats.RecentBookings)
	for _, b := range stats.RecentBookings {
		assert.Equal(t, owner, b.OwnerID)
	}
}
