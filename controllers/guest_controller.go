package controllers

import (
	"net/http"

	"atithi-backend/middleware"
	"atithi-backend/services"
	"atithi-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(guests *services.GuestService) *GuestController {
	return &GuestController{Guests: guests}
}

// GET /api/guests?q=smith
func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.Guests.List(middleware.OwnerID(c), c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// GET /api/guests/:id
func (gc *GuestController) GetGuest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	guest, err := gc.Guests.GetByID(middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// GET /api/guests/:id/history
func (gc *GuestController) GetGuestHistory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	history, err := gc.Guests.History(middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, history)
}

// PATCH /api/guests/:id/toggle-blacklist
func (gc *GuestController) ToggleBlacklist(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	guest, err := gc.Guests.ToggleBlacklist(middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}
