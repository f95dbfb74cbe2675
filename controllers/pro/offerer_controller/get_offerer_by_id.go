package offerer_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOffererByID godoc
// @Summary Get a single offerer
// @Description Retrieve one offerer with its venues
// @Tags Pro - Offerers
// @Produce json
// @Param id path string true "Offerer ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid offerer ID"
// @Failure 404 {object} models.ApiResponse "Offerer not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offerers/{id} [get]
func GetOffererByID(c *gin.Context) {
	offererID := c.Param("id")

	if _, err := uuid.Parse(offererID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offerer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var offerer models.Offerer
	if err := config.Gorm.WithContext(ctx).
		Preload("Venues").
		First(&offerer, "id = ?", offererID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offerer not found"))
			return
		}
		log.Printf("[offerer.get] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offerer fetched successfully", offerer))
}
