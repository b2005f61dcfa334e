package controllers

import (
	"net/http"
	"strings"

	"atithi-backend/middleware"
	"atithi-backend/models"
	"atithi-backend/services"
	"atithi-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
	RoomType   string `json:"room_type" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required"`
	Floor      string `json:"floor"`
}

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// GET /api/rooms?type=DELUXE&status=AVAILABLE
func (rc *RoomController) GetRooms(c *gin.Context) {
	status := models.RoomStatus(strings.ToUpper(c.Query("status")))
	rooms, err := rc.Rooms.List(middleware.OwnerID(c), c.Query("type"), status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/rooms/available
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.Rooms.AvailableRooms(middleware.OwnerID(c), c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/rooms/:id
func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByID(middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// POST /api/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room := &models.Room{
		RoomNumber: strings.TrimSpace(req.RoomNumber),
		RoomType:   strings.TrimSpace(req.RoomType),
		PriceCents: req.PriceCents,
		Floor:      req.Floor,
	}
	if room.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "room number is required")
		return
	}
	if room.PriceCents <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "price must be positive")
		return
	}

	if err := rc.Rooms.Create(middleware.OwnerID(c), room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// PATCH /api/rooms/:id
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	room, err := rc.Rooms.Update(middleware.OwnerID(c), id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// PATCH /api/rooms/:id/mark-clean
func (rc *RoomController) MarkClean(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.MarkClean(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// PATCH /api/rooms/:id/mark-dirty
func (rc *RoomController) MarkDirty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.MarkDirty(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// PATCH /api/rooms/:id/mark-maintenance  (role-gated in routes.go)
func (rc *RoomController) MarkMaintenance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.MarkMaintenance(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
