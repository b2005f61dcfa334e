package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"atithi-backend/controllers"
	"atithi-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	hc *controllers.HousekeepingController,
	ac *controllers.AdminController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.Auth(jwtSecret))
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.POST("/:id/transition", bc.TransitionBooking)
			bookings.POST("/:id/checkin", bc.CheckIn)
			bookings.POST("/:id/checkout", bc.Checkout)
			bookings.POST("/:id/cancel", bc.Cancel)

			bookings.GET("/:id/folio", bc.GetFolio)
			bookings.POST("/:id/charges", bc.AddCharge)
			bookings.POST("/:id/payments", bc.AddPayment)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// must come before /:id
			rooms.GET("/available", rc.GetAvailableRooms)

			rooms.GET("/:id", rc.GetRoom)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id/mark-clean", rc.MarkClean)
			rooms.PATCH("/:id/mark-dirty", rc.MarkDirty)
			rooms.PATCH("/:id/mark-maintenance",
				middleware.RequireRole(middleware.RoleOwner, middleware.RoleManager),
				rc.MarkMaintenance)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuest)
			guests.GET("/:id/history", gc.GetGuestHistory)
			guests.PATCH("/:id/toggle-blacklist",
				middleware.RequireRole(middleware.RoleOwner, middleware.RoleManager),
				gc.ToggleBlacklist)
		}

		housekeeping := api.Group("/housekeeping")
		{
			housekeeping.GET("", hc.GetTasks)
			housekeeping.PATCH("/:id/complete", hc.CompleteTask)
		}

		api.GET("/activity", ac.GetActivity)
		api.GET("/stats", ac.GetDashboard)

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", ac.GetHotelSettings)
			settings.PUT("/hotel",
				middleware.RequireRole(middleware.RoleOwner, middleware.RoleManager),
				ac.UpdateHotelSettings)
		}
	}

	return r
}
