package services

import (
	"context"
	"testing"

	"atithi-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFolio(t *testing.T) {
	charge := func(cents int64) models.BookingCharge {
		return models.BookingCharge{AmountCents: cents}
	}
	payment := func(cents int64) models.BookingPayment {
		return models.BookingPayment{AmountCents: cents}
	}

	cases := []struct {
		name        string
		nights      int
		priceCents  int64
		charges     []models.BookingCharge
		payments    []models.BookingPayment
		wantTotal   int64
		wantPaid    int64
		wantBalance int64
		wantStatus  models.PaymentStatus
	}{
		{
			name:   "rent only, nothing paid",
			nights: 3, priceCents: 250000,
			wantTotal: 750000, wantBalance: 750000,
			wantStatus: models.PaymentPending,
		},
		{
			name:   "charges add to total",
			nights: 2, priceCents: 100000,
			charges:   []models.BookingCharge{charge(15000), charge(5000)},
			wantTotal: 220000, wantBalance: 220000,
			wantStatus: models.PaymentPending,
		},
		{
			name:   "partial payment",
			nights: 2, priceCents: 100000,
			payments:  []models.BookingPayment{payment(50000)},
			wantTotal: 200000, wantPaid: 50000, wantBalance: 150000,
			wantStatus: models.PaymentPartial,
		},
		{
			name:   "exactly settled",
			nights: 1, priceCents: 80000,
			payments:  []models.BookingPayment{payment(30000), payment(50000)},
			wantTotal: 80000, wantPaid: 80000, wantBalance: 0,
			wantStatus: models.PaymentPaid,
		},
		{
			name:   "overpaid still PAID",
			nights: 1, priceCents: 80000,
			payments:  []models.BookingPayment{payment(100000)},
			wantTotal: 80000, wantPaid: 100000, wantBalance: -20000,
			wantStatus: models.PaymentPaid,
		},
		{
			name:       "zero-night zero-price folio is PAID",
			wantStatus: models.PaymentPaid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, paid, balance, status := ComputeFolio(tc.nights, tc.priceCents, tc.charges, tc.payments)
			assert.Equal(t, tc.wantTotal, total)
			assert.Equal(t, tc.wantPaid, paid)
			assert.Equal(t, tc.wantBalance, balance)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestFolioLifecycle(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	const owner = uint(1)

	room := seedRoom(t, st, owner, "101", 250000)
	booking, err := st.Reservations.Create(ctx, owner, CreateBookingInput{
		Guest:    testGuest("Asha Verma", "9000000001"),
		RoomID:   &room.ID,
		CheckIn:  day(t, "2026-09-01"),
		CheckOut: day(t, "2026-09-03"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(500000), booking.TotalAmountCents)
	require.Equal(t, models.PaymentPending, booking.PaymentStatus)

	// Minibar charge raises the total.
	snap, err := st.Folio.AddCharge(ctx, owner, booking.ID, "Minibar", 30000)
	require.NoError(t, err)
	assert.Equal(t, int64(530000), snap.TotalCents)
	assert.Equal(t, int64(530000), snap.BalanceCents)
	assert.Equal(t, models.PaymentPending, snap.PaymentStatus)
	assert.Len(t, snap.Charges, 1)

	// First payment settles part of the bill.
	snap, err = st.Folio.AddPayment(ctx, owner, booking.ID, 300000, models.PayUPI, "upi-123")
	require.NoError(t, err)
	assert.Equal(t, int64(300000), snap.PaidCents)
	assert.Equal(t, int64(230000), snap.BalanceCents)
	assert.Equal(t, models.PaymentPartial, snap.PaymentStatus)

	// Second payment clears it.
	snap, err = st.Folio.AddPayment(ctx, owner, booking.ID, 230000, models.PayCash, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), snap.BalanceCents)
	assert.Equal(t, models.PaymentPaid, snap.PaymentStatus)

	// The derived columns on the booking row match the snapshot.
	reloaded, err := st.Reservations.Get(ctx, owner, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(530000), reloaded.TotalAmountCents)
	assert.Equal(t, int64(530000), reloaded.PaidCents)
	assert.Equal(t, int64(0), reloaded.BalanceCents)
	assert.Equal(t, models.PaymentPaid, reloaded.PaymentStatus)
}

func TestFolioRejectsNonPositiveAmounts(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	const owner = uint(1)

	room := seedRoom(t, st, owner, "102", 100000)
	booking, err := st.Reservations.Create(ctx, owner, CreateBookingInput{
		Guest:    testGuest("Ravi Iyer", "9000000002"),
		RoomID:   &room.ID,
		CheckIn:  day(t, "2026-09-01"),
		CheckOut: day(t, "2026-09-02"),
	})
	require.NoError(t, err)

	_, err = st.Folio.AddCharge(ctx, owner, booking.ID, "Laundry", 0)
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
	_, err = st.Folio.AddCharge(ctx, owner, booking.ID, "Laundry", -500)
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
	_, err = st.Folio.AddPayment(ctx, owner, booking.ID, 0, models.PayCash, "")
	assert.ErrorIs(t, err, models.ErrInvalidAmount)

	_, err = st.Folio.AddCharge(ctx, owner, booking.ID, "   ", 500)
	assert.ErrorIs(t, err, models.ErrValidation)

	// Nothing leaked into the ledger.
	snap, err := st.Folio.GetFolio(ctx, owner, booking.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Charges)
	assert.Empty(t, snap.Payments)
}

func TestFolioTenantIsolation(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()

	room := seedRoom(t, st, 1, "103", 100000)
	booking, err := st.Reservations.Create(ctx, 1, CreateBookingInput{
		Guest:    testGuest("Meera Nair", "9000000003"),
		RoomID:   &room.ID,
		CheckIn:  day(t, "2026-09-01"),
		CheckOut: day(t, "2026-09-02"),
	})
	require.NoError(t, err)

	// Another tenant sees the booking as missing, not forbidden.
	_, err = st.Folio.GetFolio(ctx, 2, booking.ID)
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
	_, err = st.Folio.AddPayment(ctx, 2, booking.ID, 1000, models.PayCash, "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
