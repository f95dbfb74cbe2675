package pro_auth_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/services"
	"github.com/jellies-true/pass-culture/utils"

	"github.com/gin-gonic/gin"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google OAuth. Verifies the state token, exchanges the authorization code, verifies the Google ID token, creates/updates the pro account, issues a JWT cookie, and redirects back to the pro console
// @Tags Pro - Auth
// @Produce json
// @Success 307 "Redirect to the pro console after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 401 {object} models.ApiResponse "Unauthorized or token exchange failure"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/pro/users/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("[pro.google-callback] state mismatch")
		redirectToProWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("[pro.google-callback] no authorization code")
		redirectToProWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("[pro.google-callback] exchange failed: %v", err)
		redirectToProWithError(c, "Failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		log.Printf("[pro.google-callback] no id_token in token response")
		redirectToProWithError(c, "Missing ID token")
		return
	}

	// Verify the ID token signature and audience against Google's keys
	idToken, err := config.OIDCVerifier.Verify(context.Background(), rawIDToken)
	if err != nil {
		log.Printf("[pro.google-callback] ID token verification failed: %v", err)
		redirectToProWithError(c, "Invalid ID token")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := idToken.Claims(&googleUser); err != nil {
		log.Printf("[pro.google-callback] decode failed: %v", err)
		redirectToProWithError(c, "Failed to decode user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = idToken.Subject
	}

	if googleID == "" {
		log.Printf("[pro.google-callback] no Google ID")
		redirectToProWithError(c, "Google ID not found")
		return
	}

	// Only verified Google emails may open a pro account
	if !googleUser.EmailVerified {
		log.Printf("[pro.google-callback] unverified email: %s", googleUser.Email)
		redirectToProWithError(c, "Google email is not verified")
		return
	}

	user, err := createOrUpdateProUser(c, &googleUser, googleID)
	if err != nil {
		log.Printf("[pro.google-callback] database error: %v", err)
		redirectToProWithError(c, fmt.Sprintf("Database error: %v", err))
		return
	}

	if user.Status == "suspended" {
		log.Printf("[pro.google-callback] suspended account: %s", user.Email)
		redirectToProWithError(c, "Account is suspended")
		return
	}

	// Log login event
	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("[pro.google-callback] failed to log login event: %v", err)
	}

	// Generate JWT token
	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.FullName())
	if err != nil {
		log.Printf("[pro.google-callback] JWT error: %v", err)
		redirectToProWithError(c, "Failed to generate token")
		return
	}

	// Create the session tied to the token
	ctx, cancel := config.WithTimeout()
	defer cancel()
	if _, err := services.GetProSessionService().CreateSession(ctx, user.ID, jwtToken, c.ClientIP(), c.Request.UserAgent()); err != nil {
		log.Printf("[pro.google-callback] failed to create session: %v", err)
		redirectToProWithError(c, "Failed to create session")
		return
	}

	// Set HTTP-only cookie with the token
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		jwtToken,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	log.Printf("[pro.google-callback] login successful: %s", user.Email)

	// Redirect to the pro console callback (no token in URL)
	frontendURL := config.GetProFrontendURL()
	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s/auth-popup", frontendURL))
}
