package pro_auth_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/services"
	"github.com/jellies-true/pass-culture/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProLogin godoc
// @Summary Login as a pro user
// @Description Authenticate with email and password. Returns a JWT token and creates a session
// @Tags Pro - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.ProLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.ProLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/pro/users/login [post]
func ProLogin(c *gin.Context) {
	log.Printf("[pro.login] attempt")

	var req models.ProLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Find user by email
	var user models.ProUser
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[pro.login] user not found: %s", req.Email)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		} else {
			log.Printf("[pro.login] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	// Check if suspended
	if user.Status == "suspended" {
		log.Printf("[pro.login] suspended account attempt: %s", req.Email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	}

	// SSO-only accounts have no password
	if user.PasswordHash == "" {
		log.Printf("[pro.login] password login on SSO account: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Use Google sign-in for this account"))
		return
	}

	// Verify password
	authService := services.GetProAuthService()
	if !authService.VerifyPassword(user.PasswordHash, req.Password) {
		log.Printf("[pro.login] invalid password: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	// Update last login
	now := time.Now()
	if err := config.Gorm.WithContext(ctx).
		Model(&user).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("[pro.login] failed to update last login: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	user.LastLoginAt = &now

	// Generate JWT token
	token, err := utils.GenerateJWT(user.ID, user.Email, user.FullName())
	if err != nil {
		log.Printf("[pro.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Create session
	sessionService := services.GetProSessionService()
	_, err = sessionService.CreateSession(
		ctx,
		user.ID,
		token,
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		log.Printf("[pro.login] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Record the login event for the device analytics
	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("[pro.login] failed to log login event: %v", err)
	}

	// Set token in HTTP cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		24*60*60,
		"/",
		"",
		false,
		true,
	)

	log.Printf("[pro.login] success: %s (%s)", user.Email, user.ID)

	response := models.ProLoginResponse{
		User:  user,
		Token: token,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", response))
}
