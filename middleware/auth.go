package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/services"
	"github.com/jellies-true/pass-culture/utils"

	"github.com/gin-gonic/gin"
)

// ProAuthMiddleware validates the JWT token from cookie or Authorization
// header and checks the pro user's account status
func ProAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("auth_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}

			token = parts[1]
		}

		// Validate token
		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		// Touch the session so last activity stays current
		tokenHash := services.HashProToken(token)
		if err := services.GetProSessionService().UpdateSessionActivity(ctx, tokenHash); err != nil {
			log.Printf("[auth] failed to update session activity: %v", err)
			// Don't abort - session update failure shouldn't block the request
		}

		// Fetch account status from database
		var user models.ProUser
		if err := config.Gorm.WithContext(ctx).
			Select("status").
			Where("id = ?", claims.UserID).
			First(&user).Error; err != nil {
			log.Printf("[auth] failed to fetch user status: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - user not found"))
			c.Abort()
			return
		}

		if user.Status == "suspended" {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - account suspended"))
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)

		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated pro user's ID
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	return userID.(string), true
}

// GetUserEmailFromContext returns the authenticated pro user's email
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("userEmail")
	if !exists {
		return "", false
	}
	return email.(string), true
}
