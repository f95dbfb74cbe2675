package adage_routes

import (
	adage_offer_controller "github.com/jellies-true/pass-culture/controllers/adage/offer_controller"

	"github.com/gin-gonic/gin"
)

// SetupAdageRoutes sets up the public institutional routes
func SetupAdageRoutes(rg *gin.RouterGroup) {
	adage := rg.Group("/adage")
	{
		// Collective offer catalogue
		adage.GET("/offers", adage_offer_controller.SearchCollectiveOffers)
		adage.GET("/offers/:id", adage_offer_controller.GetCollectiveOffer)

		// Pre-booking
		adage.POST("/offers/:id/prebook", adage_offer_controller.PrebookCollectiveOffer)
	}
}
