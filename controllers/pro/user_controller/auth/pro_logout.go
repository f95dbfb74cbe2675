package pro_auth_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProLogout godoc
// @Summary Logout
// @Description Logout the current pro user and deactivate their sessions
// @Tags Pro - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/pro/users/logout [post]
func ProLogout(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if exists {
		log.Printf("[pro.logout] user logging out: %s", userIDStr)

		ctx, cancel := config.WithTimeout()
		defer cancel()

		userID, err := uuid.Parse(userIDStr.(string))
		if err == nil {
			sessionService := services.GetProSessionService()
			if err := sessionService.DeactivateSession(ctx, userID); err != nil {
				log.Printf("[pro.logout] failed to deactivate session: %v", err)
				// Don't fail the logout even if session deactivation fails
			}
		}
	}

	// Clear token cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
	log.Printf("[pro.logout] token cleared from cookie")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
