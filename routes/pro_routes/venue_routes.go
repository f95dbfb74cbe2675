package pro_routes

import (
	"github.com/jellies-true/pass-culture/controllers/pro/venue_controller"
	"github.com/jellies-true/pass-culture/middleware"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(rg *gin.RouterGroup) {
	venue := rg.Group("/venues")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := venue.Group("")
	protected.Use(middleware.ProAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Read
		protected.GET("", venue_controller.GetVenues)
		protected.GET("/:id", venue_controller.GetVenueByID)

		// Create
		protected.POST("", venue_controller.CreateVenue)

		// Update
		protected.PATCH("/:id", venue_controller.UpdateVenue)
	}
}
