package offer_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
)

// ArchiveOffers godoc
// @Summary Archive a batch of offers
// @Description Archive offers. Archival is terminal: the offers leave every list screen and cannot be reactivated
// @Tags Pro - Offers
// @Accept json
// @Produce json
// @Param request body models.ArchiveOffersRequest true "Offer IDs to archive"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers/archive [post]
func ArchiveOffers(c *gin.Context) {
	var req models.ArchiveOffersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Already-archived offers keep their original archival date
	result := config.Gorm.WithContext(ctx).
		Model(&models.Offer{}).
		Where("id IN ?", req.OfferIDs).
		Where("archived_at IS NULL").
		Updates(map[string]interface{}{
			"archived_at": time.Now(),
			"is_active":   false,
		})

	if result.Error != nil {
		log.Printf("[offer.archive] bulk archive failed: %v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to archive offers"))
		return
	}

	log.Printf("[offer.archive] archived %d/%d offers", result.RowsAffected, len(req.OfferIDs))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offers archived successfully", gin.H{
		"requested": len(req.OfferIDs),
		"archived":  result.RowsAffected,
	}))
}
