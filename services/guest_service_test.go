package services

import (
	"context"
	"testing"

	"atithi-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestUpsertCreatesAndReuses(t *testing.T) {
	st := newTestStack(t)
	const owner = uint(1)

	first, err := st.Guests.Upsert(st.DB, owner, GuestInfo{FullName: "Priya Singh", Phone: "9111111111", Email: "priya@example.com"})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	// Same phone: same row, name refreshed to the latest value.
	second, err := st.Guests.Upsert(st.DB, owner, GuestInfo{FullName: "Priya S.", Phone: "9111111111"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Priya S.", second.FullName)
	assert.Equal(t, "priya@example.com", second.Email, "empty email must not clobber the stored one")

	var count int64
	require.NoError(t, st.DB.Model(&models.Guest{}).Where("owner_id = ?", owner).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGuestUpsertScopedByTenant(t *testing.T) {
	st := newTestStack(t)

	a, err := st.Guests.Upsert(st.DB, 1, GuestInfo{FullName: "Shared Phone", Phone: "9222222222"})
	require.NoError(t, err)
	b, err := st.Guests.Upsert(st.DB, 2, GuestInfo{FullName: "Shared Phone", Phone: "9222222222"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID, "same phone under different tenants must be distinct guests")
}

func TestGuestUpsertValidation(t *testing.T) {
	st := newTestStack(t)

	_, err := st.Guests.Upsert(st.DB, 1, GuestInfo{FullName: "", Phone: "9333333333"})
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = st.Guests.Upsert(st.DB, 1, GuestInfo{FullName: "No Phone", Phone: "  "})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestGuestHistoryAndStats(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	const owner = uint(1)

	room := seedRoom(t, st, owner, "201", 150000)
	booking, err := st.Reservations.Create(ctx, owner, CreateBookingInput{
		Guest:    testGuest("Arjun Rao", "9444444444"),
		RoomID:   &room.ID,
		CheckIn:  day(t, "2026-09-01"),
		CheckOut: day(t, "2026-09-03"),
	})
	require.NoError(t, err)

	// Full stay: check in, settle, check out. Checkout bumps the stats.
	_, err = st.Reservations.Transition(ctx, owner, booking.ID, models.BookingCheckedIn, false)
	require.NoError(t, err)
	_, err = st.Folio.AddPayment(ctx, owner, booking.ID, 300000, models.PayCard, "card-1")
	require.NoError(t, err)
	_, err = st.Reservations.Transition(ctx, owner, booking.ID, models.BookingCheckedOut, false)
	require.NoError(t, err)

	history, err := st.Guests.History(owner, booking.GuestID)
	require.NoError(t, err)
	assert.Equal(t, 1, history.Guest.TotalStays)
	assert.Equal(t, int64(300000), history.Guest.TotalSpentCents)
	require.Len(t, history.Bookings, 1)
	assert.Equal(t, models.BookingCheckedOut, history.Bookings[0].Status)
}

func TestGuestToggleBlacklist(t *testing.T) {
	st := newTestStack(t)
	const owner = uint(1)

	guest, err := st.Guests.Upsert(st.DB, owner, GuestInfo{FullName: "Flagged Guest", Phone: "9555555555"})
	require.NoError(t, err)

	toggled, err := st.Guests.ToggleBlacklist(owner, guest.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsBlacklisted)

	toggled, err = st.Guests.ToggleBlacklist(owner, guest.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsBlacklisted)

	_, err = st.Guests.ToggleBlacklist(2, guest.ID)
	assert.ErrorIs(t, err, models.ErrGuestNotFound)
}
