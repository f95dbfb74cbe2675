package pro_routes

import (
	"github.com/jellies-true/pass-culture/controllers/pro/offerer_controller"
	"github.com/jellies-true/pass-culture/middleware"

	"github.com/gin-gonic/gin"
)

func SetupOffererRoutes(rg *gin.RouterGroup) {
	offerer := rg.Group("/offerers")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════
	protected := offerer.Group("")
	protected.Use(middleware.ProAuthMiddleware())
	{
		protected.GET("", offerer_controller.GetOfferers)
		protected.GET("/:id", offerer_controller.GetOffererByID)
		protected.GET("/:id/stats", offerer_controller.GetOffererStats)
	}
}
