package offer_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
)

// UpdateOffersActiveStatus godoc
// @Summary Bulk publish or pause offers
// @Description Set is_active on a batch of offers. Archived, rejected and pending offers are skipped
// @Tags Pro - Offers
// @Accept json
// @Produce json
// @Param request body models.UpdateOffersActiveStatusRequest true "Offer IDs and target status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers/active-status [patch]
func UpdateOffersActiveStatus(c *gin.Context) {
	var req models.UpdateOffersActiveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Archived offers never change state again; rejected and pending
	// offers stay under moderation control.
	updates := map[string]interface{}{"is_active": req.IsActive}
	if req.IsActive {
		// Publishing a draft promotes it to a real offer
		updates["raw_status"] = models.StatusActive
	}

	result := config.Gorm.WithContext(ctx).
		Model(&models.Offer{}).
		Where("id IN ?", req.OfferIDs).
		Where("archived_at IS NULL").
		Where("raw_status NOT IN ?", []models.OfferStatus{models.StatusRejected, models.StatusPending}).
		Updates(updates)

	if result.Error != nil {
		log.Printf("[offer.active-status] bulk update failed: %v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update offers"))
		return
	}

	log.Printf("[offer.active-status] set is_active=%t on %d/%d offers", req.IsActive, result.RowsAffected, len(req.OfferIDs))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offers updated successfully", gin.H{
		"requested": len(req.OfferIDs),
		"updated":   result.RowsAffected,
		"is_active": req.IsActive,
	}))
}
