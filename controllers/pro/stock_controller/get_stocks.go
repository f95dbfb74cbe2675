package stock_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStocks godoc
// @Summary Get the stocks of an offer
// @Description Retrieve every stock attached to an offer, oldest first
// @Tags Pro - Stocks
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid offer ID"
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers/{id}/stocks [get]
func GetStocks(c *gin.Context) {
	offerID := c.Param("id")

	if _, err := uuid.Parse(offerID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Make sure the offer exists before listing its stocks
	var offer models.Offer
	if err := config.Gorm.WithContext(ctx).
		Select("id, kind").
		First(&offer, "id = ?", offerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
			return
		}
		log.Printf("[stock.list] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	stocks := make([]models.Stock, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("offer_id = ?", offerID).
		Order("created_at ASC").
		Find(&stocks).Error; err != nil {
		log.Printf("[stock.list] failed to fetch stocks: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stocks"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stocks fetched successfully", stocks))
}
