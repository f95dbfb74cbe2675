package pro_routes

import (
	"github.com/jellies-true/pass-culture/controllers/pro/user_controller"
	"github.com/jellies-true/pass-culture/middleware"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════
	protected := users.Group("")
	protected.Use(middleware.ProAuthMiddleware())
	{
		// Profile
		protected.PATCH("/profile", user_controller.UpdateProfile)

		// Activity logs
		protected.GET("/activity-logs", user_controller.GetActivityLogs)
	}
}
