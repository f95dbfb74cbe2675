package pro_routes

import (
	"github.com/jellies-true/pass-culture/controllers/pro/offer_controller"
	"github.com/jellies-true/pass-culture/controllers/pro/stock_controller"
	"github.com/jellies-true/pass-culture/middleware"

	"github.com/gin-gonic/gin"
)

func SetupOfferRoutes(rg *gin.RouterGroup) {
	offer := rg.Group("/offers")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := offer.Group("")
	protected.Use(middleware.ProAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Read
		protected.GET("", offer_controller.GetOffers)
		protected.GET("/stats", offer_controller.GetOfferStats)
		protected.GET("/navigation", offer_controller.GetCreationNavigation)
		protected.GET("/:id", offer_controller.GetOfferByID)
		protected.GET("/:id/navigation", offer_controller.GetOfferNavigation)

		// Create
		protected.POST("", offer_controller.CreateOffer)

		// Update
		protected.PATCH("/:id", offer_controller.UpdateOffer)
		protected.PATCH("/active-status", offer_controller.UpdateOffersActiveStatus)
		protected.POST("/archive", offer_controller.ArchiveOffers)

		// Delete
		protected.DELETE("/:id", offer_controller.DeleteDraftOffer)

		// Stocks
		protected.GET("/:id/stocks", stock_controller.GetStocks)
		protected.POST("/:id/stocks", stock_controller.UpsertStocks)
	}
}
