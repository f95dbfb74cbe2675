package venue_controller

import (
	"log"
	"net/http"

	venue_cache "github.com/jellies-true/pass-culture/cache"
	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVenueByID godoc
// @Summary Get a single venue
// @Description Retrieve one venue with its offerer
// @Tags Pro - Venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid venue ID"
// @Failure 404 {object} models.ApiResponse "Venue not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/venues/{id} [get]
func GetVenueByID(c *gin.Context) {
	venueID := c.Param("id")

	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid venue ID"))
		return
	}

	// Cache hit skips the database entirely
	if venue, ok := venue_cache.GetVenue(venueID); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Venue fetched successfully", venue))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var venue models.Venue
	if err := config.Gorm.WithContext(ctx).
		Preload("Offerer").
		First(&venue, "id = ?", venueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Venue not found"))
			return
		}
		log.Printf("[venue.get] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	venue_cache.SetVenue(venueID, &venue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Venue fetched successfully", &venue))
}
