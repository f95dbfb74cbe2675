// @title pass Culture Pro API
// @version 1.0
// @description pass Culture Pro Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jellies-true/pass-culture/config"
	_ "github.com/jellies-true/pass-culture/docs"
	"github.com/jellies-true/pass-culture/middleware"
	"github.com/jellies-true/pass-culture/routes/adage_routes"
	"github.com/jellies-true/pass-culture/routes/pro_routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// ✅ JWT secret is required for pro session tokens
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// ✅ Configure CORS properly for all content types including PDFs
	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetProFrontendURL(), "http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// ✅ Pro console routes (at /api/v1/pro prefix)
	proGroup := api.Group("/pro")
	proGroup.Use(middleware.RateLimiter(100, time.Minute))

	pro_routes.SetupAuthRoutes(proGroup)
	pro_routes.SetupOfferRoutes(proGroup)
	pro_routes.SetupBookingRoutes(proGroup)
	pro_routes.SetupReimbursementRoutes(proGroup)
	pro_routes.SetupVenueRoutes(proGroup)
	pro_routes.SetupOffererRoutes(proGroup)
	pro_routes.SetupUserRoutes(proGroup)
	log.Println("✅ Pro routes registered")

	// Public institutional catalogue (no rate limiter)
	adage_routes.SetupAdageRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
