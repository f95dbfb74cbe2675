package offer_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/offerstatus"

	"github.com/gin-gonic/gin"
)

// GetOfferStats godoc
// @Summary Get offer counts per display status
// @Description Aggregate offer counts per resolved display status and kind, for the list screen tabs
// @Tags Pro - Offers
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.OfferStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers/stats [get]
func GetOfferStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Display statuses are derived from stocks, so the counting happens
	// after resolution rather than in SQL.
	var offers []models.Offer
	if err := config.Gorm.WithContext(ctx).
		Preload("Stocks").
		Find(&offers).Error; err != nil {
		log.Printf("[offer.stats] failed to fetch offers: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offer stats"))
		return
	}

	now := time.Now()
	stats := models.OfferStatsResponse{Total: int64(len(offers))}

	for i := range offers {
		offer := &offers[i]

		switch offerstatus.Resolve(offer, now) {
		case models.StatusDraft:
			stats.Draft++
		case models.StatusPending:
			stats.Pending++
		case models.StatusRejected:
			stats.Rejected++
		case models.StatusActive:
			stats.Active++
		case models.StatusInactive:
			stats.Inactive++
		case models.StatusSoldOut:
			stats.SoldOut++
		case models.StatusExpired:
			stats.Expired++
		case models.StatusArchived:
			stats.Archived++
		}

		if offer.Kind.IsCollective() {
			stats.Collective++
		} else {
			stats.Individual++
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offer stats fetched successfully", stats))
}
