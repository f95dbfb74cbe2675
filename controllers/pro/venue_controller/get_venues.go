package venue_controller

import (
	"log"
	"net/http"

	venue_cache "github.com/jellies-true/pass-culture/cache"
	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
)

// GetVenues godoc
// @Summary Get venues
// @Description Retrieve the venue list for the filter dropdowns, with per-venue offer counts. Served from an in-memory cache
// @Tags Pro - Venues
// @Produce json
// @Param offererId query string false "Restrict to one offerer"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/venues [get]
func GetVenues(c *gin.Context) {
	offererID := c.Query("offererId")

	// Step 1: Try the cache first
	if venues, offerCounts, ok := venue_cache.GetList(offererID); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Venues fetched successfully", gin.H{
			"venues":       venues,
			"offer_counts": offerCounts,
		}))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Fetch venues
	query := config.Gorm.WithContext(ctx).Model(&models.Venue{}).
		Select("id, name, is_virtual").
		Order("name ASC")
	if offererID != "" {
		query = query.Where("offerer_id = ?", offererID)
	}

	venues := make([]models.VenueListItem, 0)
	if err := query.Scan(&venues).Error; err != nil {
		log.Printf("[venue.list] failed to fetch venues: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch venues"))
		return
	}

	// Step 3: Count offers per venue
	type countRow struct {
		VenueID string
		Count   int
	}
	counts := make([]countRow, 0)
	if err := config.Gorm.WithContext(ctx).Model(&models.Offer{}).
		Select("venue_id, COUNT(*) AS count").
		Where("archived_at IS NULL").
		Group("venue_id").
		Scan(&counts).Error; err != nil {
		log.Printf("[venue.list] failed to count offers: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch venues"))
		return
	}

	offerCounts := make(map[string]int, len(counts))
	for _, row := range counts {
		offerCounts[row.VenueID] = row.Count
	}

	// Step 4: Fill the cache for the next request
	venue_cache.SetList(offererID, venues, offerCounts)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Venues fetched successfully", gin.H{
		"venues":       venues,
		"offer_counts": offerCounts,
	}))
}
