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

// UpdateVenue godoc
// @Summary Update a venue
// @Description Partially update a venue. The SIRET and offerer binding are immutable
// @Tags Pro - Venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param venue body models.UpdateVenueRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Venue not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/venues/{id} [patch]
func UpdateVenue(c *gin.Context) {
	venueID := c.Param("id")

	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid venue ID"))
		return
	}

	var req models.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var venue models.Venue
	if err := config.Gorm.WithContext(ctx).
		First(&venue, "id = ?", venueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Venue not found"))
			return
		}
		log.Printf("[venue.update] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PublicName != nil {
		updates["public_name"] = *req.PublicName
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.City != nil {
		updates["city"] = *req.City
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&venue).
		Updates(updates).Error; err != nil {
		log.Printf("[venue.update] failed to update venue %s: %v", venueID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update venue"))
		return
	}

	venue_cache.Invalidate()

	log.Printf("[venue.update] updated venue %s", venueID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Venue updated successfully", venue))
}
