package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"atithi-backend/models"

	"gorm.io/gorm"
)

// FolioService maintains the running bill of a booking: append-only
// charges and payments plus the derived totals persisted on the booking
// row. Every mutation recomputes the derived fields in the same
// transaction, so readers never aggregate at query time.
type FolioService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewFolioService(db *gorm.DB, activity *ActivityService) *FolioService {
	return &FolioService{DB: db, Activity: activity}
}

// FolioSnapshot is the itemized bill returned to callers.
type FolioSnapshot struct {
	BookingID     uint                    `json:"booking_id"`
	ReferenceCode string                  `json:"reference_code"`
	GuestName     string                  `json:"guest_name"`
	RoomNumber    string                  `json:"room_number,omitempty"`
	CheckInDate   time.Time               `json:"check_in_date"`
	CheckOutDate  time.Time               `json:"check_out_date"`
	TotalCents    int64                   `json:"total_cents"`
	PaidCents     int64                   `json:"paid_cents"`
	BalanceCents  int64                   `json:"balance_cents"`
	PaymentStatus models.PaymentStatus    `json:"payment_status"`
	Charges       []models.BookingCharge  `json:"charges"`
	Payments      []models.BookingPayment `json:"payments"`
}

// ComputeFolio derives (total, paid, balance, payment status) from the
// rent and the ledger rows. Pure: the derivation rule is
//
//	total   = nights × price + Σcharges
//	balance = total − Σpayments
//	status  = PAID if balance ≤ 0, PARTIAL if anything was paid, else PENDING
func ComputeFolio(nights int, priceCents int64, charges []models.BookingCharge, payments []models.BookingPayment) (total, paid, balance int64, status models.PaymentStatus) {
	total = int64(nights) * priceCents
	for _, c := range charges {
		total += c.AmountCents
	}
	for _, p := range payments {
		paid += p.AmountCents
	}
	balance = total - paid
	switch {
	case balance <= 0:
		status = models.PaymentPaid
	case paid > 0:
		status = models.PaymentPartial
	default:
		status = models.PaymentPending
	}
	return total, paid, balance, status
}

// AddCharge appends a folio line and refreshes the derived totals.
func (s *FolioService) AddCharge(ctx context.Context, ownerID, bookingID uint, description string, amountCents int64) (*FolioSnapshot, error) {
	if amountCents <= 0 {
		return nil, models.ErrInvalidAmount
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: charge description is required", models.ErrValidation)
	}

	var snap *FolioSnapshot
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.lockBooking(tx, ownerID, bookingID)
		if err != nil {
			return err
		}
		charge := models.BookingCharge{
			BookingID:   booking.ID,
			Description: strings.TrimSpace(description),
			AmountCents: amountCents,
		}
		if err := tx.Create(&charge).Error; err != nil {
			return fmt.Errorf("insert charge: %w", err)
		}
		snap, err = s.recompute(tx, booking)
		return err
	})
	if err != nil {
		return nil, wrapPersistence(err)
	}
	s.Activity.Record(ownerID, "CHARGE",
		fmt.Sprintf("Added charge %q of %d to booking #%d", description, amountCents, bookingID),
		map[string]interface{}{"booking_id": bookingID, "amount_cents": amountCents})
	return snap, nil
}

// AddPayment records a settlement and refreshes the derived totals.
func (s *FolioService) AddPayment(ctx context.Context, ownerID, bookingID uint, amountCents int64, mode models.PaymentMode, txnID string) (*FolioSnapshot, error) {
	if amountCents <= 0 {
		return nil, models.ErrInvalidAmount
	}
	if mode == "" {
		mode = models.PayCash
	}

	var snap *FolioSnapshot
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.lockBooking(tx, ownerID, bookingID)
		if err != nil {
			return err
		}
		payment := models.BookingPayment{
			BookingID:     booking.ID,
			AmountCents:   amountCents,
			Mode:          mode,
			TransactionID: txnID,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		snap, err = s.recompute(tx, booking)
		return err
	})
	if err != nil {
		return nil, wrapPersistence(err)
	}
	s.Activity.Record(ownerID, "PAYMENT",
		fmt.Sprintf("Received %d via %s for booking #%d", amountCents, mode, bookingID),
		map[string]interface{}{"booking_id": bookingID, "amount_cents": amountCents, "mode": mode})
	return snap, nil
}

// GetFolio returns the itemized bill. Totals come from the derived
// columns, which every mutation keeps consistent.
func (s *FolioService) GetFolio(ctx context.Context, ownerID, bookingID uint) (*FolioSnapshot, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Guest").Preload("Room").Preload("Charges").Preload("Payments").
		Where("owner_id = ? AND id = ?", ownerID, bookingID).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get folio: %w", err)
	}
	return snapshotOf(&booking, booking.Charges, booking.Payments), nil
}

// lockBooking serializes folio mutations at booking granularity.
func (s *FolioService) lockBooking(tx *gorm.DB, ownerID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := forUpdate(tx).Preload("Guest").Preload("Room").
		Where("owner_id = ? AND id = ?", ownerID, bookingID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	return &booking, nil
}

// recompute re-derives the folio totals from the ledger rows and persists
// them onto the booking. Runs inside the caller's transaction.
func (s *FolioService) recompute(tx *gorm.DB, booking *models.Booking) (*FolioSnapshot, error) {
	var charges []models.BookingCharge
	if err := tx.Where("booking_id = ?", booking.ID).Order("id ASC").Find(&charges).Error; err != nil {
		return nil, fmt.Errorf("load charges: %w", err)
	}
	var payments []models.BookingPayment
	if err := tx.Where("booking_id = ?", booking.ID).Order("id ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}

	var priceCents int64
	if booking.RoomID != nil {
		var room models.Room
		if err := tx.Select("price_cents", "room_number").
			Where("id = ?", *booking.RoomID).First(&room).Error; err != nil {
			return nil, fmt.Errorf("load room price: %w", err)
		}
		priceCents = room.PriceCents
	}

	total, paid, balance, status := ComputeFolio(booking.Nights, priceCents, charges, payments)
	if err := tx.Model(booking).Updates(map[string]interface{}{
		"total_amount_cents": total,
		"paid_cents":         paid,
		"balance_cents":      balance,
		"payment_status":     status,
	}).Error; err != nil {
		return nil, fmt.Errorf("persist folio totals: %w", err)
	}
	booking.TotalAmountCents = total
	booking.PaidCents = paid
	booking.BalanceCents = balance
	booking.PaymentStatus = status

	return snapshotOf(booking, charges, payments), nil
}

func snapshotOf(booking *models.Booking, charges []models.BookingCharge, payments []models.BookingPayment) *FolioSnapshot {
	snap := &FolioSnapshot{
		BookingID:     booking.ID,
		ReferenceCode: booking.ReferenceCode,
		GuestName:     booking.Guest.FullName,
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		TotalCents:    booking.TotalAmountCents,
		PaidCents:     booking.PaidCents,
		BalanceCents:  booking.BalanceCents,
		PaymentStatus: booking.PaymentStatus,
		Charges:       charges,
		Payments:      payments,
	}
	if snap.Charges == nil {
		snap.Charges = []models.BookingCharge{}
	}
	if snap.Payments == nil {
		snap.Payments = []models.BookingPayment{}
	}
	if booking.Room != nil {
		snap.RoomNumber = booking.Room.RoomNumber
	}
	return snap
}
