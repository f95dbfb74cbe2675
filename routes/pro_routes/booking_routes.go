package pro_routes

import (
	"github.com/jellies-true/pass-culture/controllers/pro/booking_controller"
	"github.com/jellies-true/pass-culture/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup) {
	booking := rg.Group("/bookings")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := booking.Group("")
	protected.Use(middleware.ProAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Read
		protected.GET("", booking_controller.GetBookings)

		// Exports
		protected.GET("/csv", booking_controller.ExportBookingsCSV)
		protected.GET("/pdf", booking_controller.DownloadBookingsPDF)

		// Cancel (only write operation for bookings)
		protected.PATCH("/:id/cancel", booking_controller.CancelBooking)
	}
}
