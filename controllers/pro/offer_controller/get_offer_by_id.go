package offer_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/offerstatus"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOfferByID godoc
// @Summary Get a single offer
// @Description Retrieve one offer with its stocks, venue and resolved display status
// @Tags Pro - Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} models.ApiResponse{data=models.OfferResponse}
// @Failure 400 {object} models.ApiResponse "Invalid offer ID"
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers/{id} [get]
func GetOfferByID(c *gin.Context) {
	offerID := c.Param("id")

	if _, err := uuid.Parse(offerID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var offer models.Offer
	if err := config.Gorm.WithContext(ctx).
		Preload("Stocks").
		Preload("Venue").
		First(&offer, "id = ?", offerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
			return
		}
		log.Printf("[offer.get] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	response := models.OfferResponse{
		Offer:  offer,
		Status: offerstatus.Resolve(&offer, time.Now()),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offer fetched successfully", response))
}
