package controllers

import (
	"net/http"
	"strings"
	"time"

	"atithi-backend/middleware"
	"atithi-backend/models"
	"atithi-backend/services"
	"atithi-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type GuestPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
}

type CreateBookingRequest struct {
	Guest    GuestPayload `json:"guest" binding:"required"`
	RoomID   *uint        `json:"room_id"`
	CheckIn  string       `json:"check_in" binding:"required"`
	CheckOut string       `json:"check_out" binding:"required"`
	Adults   int          `json:"adults"`
	Children int          `json:"children"`
	Source   string       `json:"source"`
}

type ChargeRequest struct {
	Description string `json:"description" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required"`
}

type TransitionRequest struct {
	Target string `json:"target" binding:"required"`
	Force  bool   `json:"force"`
}

type PaymentRequest struct {
	AmountCents   int64  `json:"amount_cents" binding:"required"`
	Mode          string `json:"mode" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	Reservations *services.ReservationService
	Folio        *services.FolioService
}

func NewBookingController(res *services.ReservationService, folio *services.FolioService) *BookingController {
	return &BookingController{Reservations: res, Folio: folio}
}

func parseDay(raw string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	return t, err == nil
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, ok := parseDay(req.CheckIn)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, ok := parseDay(req.CheckOut)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be YYYY-MM-DD")
		return
	}

	source := models.BookingSource(strings.ToUpper(strings.TrimSpace(req.Source)))
	if source == "" {
		source = models.SourceWalkIn
	}

	booking, err := bc.Reservations.Create(c.Request.Context(), middleware.OwnerID(c), services.CreateBookingInput{
		Guest: services.GuestInfo{
			FullName: req.Guest.FullName,
			Phone:    req.Guest.Phone,
			Email:    req.Guest.Email,
		},
		RoomID:   req.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   req.Adults,
		Children: req.Children,
		Source:   source,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GET /api/bookings?status=CHECKED_IN
func (bc *BookingController) GetBookings(c *gin.Context) {
	status := models.BookingStatus(strings.ToUpper(c.Query("status")))
	bookings, err := bc.Reservations.List(c.Request.Context(), middleware.OwnerID(c), status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, err := bc.Reservations.Get(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) transition(c *gin.Context, target models.BookingStatus, force bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, err := bc.Reservations.Transition(c.Request.Context(), middleware.OwnerID(c), id, target, force)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// POST /api/bookings/:id/transition
func (bc *BookingController) TransitionBooking(c *gin.Context) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	target := models.BookingStatus(strings.ToUpper(strings.TrimSpace(req.Target)))
	if req.Force && target == models.BookingCheckedOut {
		role := c.GetString(middleware.CtxRole)
		if role != middleware.RoleOwner && role != middleware.RoleManager {
			utils.JSONError(c, http.StatusForbidden, "forced checkout requires manager role")
			return
		}
	}
	bc.transition(c, target, req.Force)
}

// POST /api/bookings/:id/checkin
func (bc *BookingController) CheckIn(c *gin.Context) {
	bc.transition(c, models.BookingCheckedIn, false)
}

// POST /api/bookings/:id/checkout?force=true
// force waives an outstanding balance, so only managers and owners may
// use it. Regular checkout stays open to every role.
func (bc *BookingController) Checkout(c *gin.Context) {
	force := c.Query("force") == "true"
	if force {
		role := c.GetString(middleware.CtxRole)
		if role != middleware.RoleOwner && role != middleware.RoleManager {
			utils.JSONError(c, http.StatusForbidden, "forced checkout requires manager role")
			return
		}
	}
	bc.transition(c, models.BookingCheckedOut, force)
}

// POST /api/bookings/:id/cancel
func (bc *BookingController) Cancel(c *gin.Context) {
	bc.transition(c, models.BookingCancelled, false)
}

// GET /api/bookings/:id/folio
func (bc *BookingController) GetFolio(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	folio, err := bc.Folio.GetFolio(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, folio)
}

// POST /api/bookings/:id/charges
func (bc *BookingController) AddCharge(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	folio, err := bc.Folio.AddCharge(c.Request.Context(), middleware.OwnerID(c), id, req.Description, req.AmountCents)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, folio)
}

// POST /api/bookings/:id/payments
func (bc *BookingController) AddPayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	mode := models.PaymentMode(strings.ToUpper(strings.TrimSpace(req.Mode)))
	folio, err := bc.Folio.AddPayment(c.Request.Context(), middleware.OwnerID(c), id, req.AmountCents, mode, req.TransactionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, folio)
}
