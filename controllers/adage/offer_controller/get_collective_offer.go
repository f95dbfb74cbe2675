package adage_offer_controller

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

// GetCollectiveOffer godoc
// @Summary Get one collective offer
// @Description Retrieve one collective offer for a teacher. Offers that are not currently bookable are hidden
// @Tags Adage - Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} models.ApiResponse{data=models.OfferResponse}
// @Failure 400 {object} models.ApiResponse "Invalid offer ID"
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/adage/offers/{id} [get]
func GetCollectiveOffer(c *gin.Context) {
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
		Where("kind IN ?", []models.OfferKind{
			models.OfferKindCollectiveBookable,
			models.OfferKindCollectiveTemplate,
		}).
		First(&offer, "id = ?", offerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
			return
		}
		log.Printf("[adage.offer] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Unpublished or moderated offers are invisible to teachers
	status := offerstatus.Resolve(&offer, time.Now())
	if status != models.StatusActive && status != models.StatusSoldOut && status != models.StatusExpired {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offer fetched successfully", models.OfferResponse{
		Offer:  offer,
		Status: status,
	}))
}
