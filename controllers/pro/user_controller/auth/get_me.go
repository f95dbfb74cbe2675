package pro_auth_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMe godoc
// @Summary Get current pro user profile
// @Description Returns the logged-in user's profile with their offerer. Used to check authentication on page reload
// @Tags Pro - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ProUser}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Router /api/v1/pro/users/me [get]
func GetMe(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.ProUser
	if err := config.Gorm.WithContext(ctx).
		Preload("Offerer").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "User not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if user.Status == "suspended" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	}

	log.Printf("[pro.me] retrieved: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile retrieved", user))
}
