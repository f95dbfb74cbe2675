package offer_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteDraftOffer godoc
// @Summary Delete a draft offer
// @Description Permanently delete an offer that was never published. Only drafts can be deleted; stocks go with them
// @Tags Pro - Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 409 {object} models.ApiResponse "Offer is not a draft"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers/{id} [delete]
func DeleteDraftOffer(c *gin.Context) {
	offerID := c.Param("id")

	if _, err := uuid.Parse(offerID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var offer models.Offer
	if err := config.Gorm.WithContext(ctx).
		First(&offer, "id = ?", offerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
			return
		}
		log.Printf("[offer.delete-draft] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if offer.RawStatus != models.StatusDraft {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Only draft offers can be deleted"))
		return
	}

	// Stocks are removed by the cascade; drafts have no bookings
	if err := config.Gorm.WithContext(ctx).
		Select("Stocks").
		Delete(&offer).Error; err != nil {
		log.Printf("[offer.delete-draft] failed to delete offer %s: %v", offerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete offer"))
		return
	}

	log.Printf("[offer.delete-draft] deleted draft offer %s (%s)", offerID, offer.Name)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Draft offer deleted successfully", gin.H{
		"id": offer.ID,
	}))
}
