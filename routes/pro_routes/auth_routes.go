package pro_routes

import (
	pro_auth_controller "github.com/jellies-true/pass-culture/controllers/pro/user_controller/auth"
	"github.com/jellies-true/pass-culture/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up pro authentication routes
func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	auth.POST("/login", pro_auth_controller.ProLogin)
	auth.GET("/google", pro_auth_controller.GoogleLogin)
	auth.GET("/google/callback", pro_auth_controller.GoogleCallback)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := auth.Group("")
	protected.Use(middleware.ProAuthMiddleware())
	{
		protected.POST("/logout", pro_auth_controller.ProLogout)
		protected.GET("/me", pro_auth_controller.GetMe)
	}
}
