package pro_auth_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow by generating a state token, storing it in a secure cookie, and redirecting to Google's consent page
// @Tags Pro - Auth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Router /api/v1/pro/users/google/login [get]
func GoogleLogin(c *gin.Context) {
	// Generate state token
	state := uuid.New().String()

	c.SetCookie(
		"oauth_state", // name
		state,         // value
		3600,          // maxAge (1 hour)
		"/",           // path
		"",            // domain (empty = current domain)
		false,         // secure (false for localhost)
		true,          // httpOnly
	)
	c.SetSameSite(http.SameSiteLaxMode)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)

	log.Printf("[pro.google-login] redirecting to Google with state %s", state)

	c.Redirect(http.StatusTemporaryRedirect, url)
}
