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

type HousekeepingController struct {
	Rooms *services.RoomService
}

func NewHousekeepingController(rooms *services.RoomService) *HousekeepingController {
	return &HousekeepingController{Rooms: rooms}
}

// GET /api/housekeeping?status=PENDING
func (hc *HousekeepingController) GetTasks(c *gin.Context) {
	status := models.TaskStatus(strings.ToUpper(c.Query("status")))
	tasks, err := hc.Rooms.ListTasks(middleware.OwnerID(c), status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tasks)
}

// PATCH /api/housekeeping/:id/complete
func (hc *HousekeepingController) CompleteTask(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	task, err := hc.Rooms.CompleteTask(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, task)
}
