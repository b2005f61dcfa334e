package controllers

import (
	"net/http"
	"strconv"

	"atithi-backend/middleware"
	"atithi-backend/services"
	"atithi-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController serves the back-office surfaces: activity feed,
// dashboard analytics and per-hotel settings.
type AdminController struct {
	Activity *services.ActivityService
	Stats    *services.StatsService
	Settings *services.SettingsService
}

func NewAdminController(activity *services.ActivityService, stats *services.StatsService, settings *services.SettingsService) *AdminController {
	return &AdminController{Activity: activity, Stats: stats, Settings: settings}
}

// GET /api/activity?limit=50
func (ac *AdminController) GetActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	logs, err := ac.Activity.List(middleware.OwnerID(c), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, logs)
}

// GET /api/stats
func (ac *AdminController) GetDashboard(c *gin.Context) {
	stats, err := ac.Stats.Dashboard(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// GET /api/settings/hotel
func (ac *AdminController) GetHotelSettings(c *gin.Context) {
	setting, err := ac.Settings.Get(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

// PUT /api/settings/hotel
func (ac *AdminController) UpdateHotelSettings(c *gin.Context) {
	var req services.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	setting, err := ac.Settings.Update(c.Request.Context(), middleware.OwnerID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
