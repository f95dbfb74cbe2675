package venue_controller

import (
	"log"
	"net/http"

	venue_cache "github.com/jellies-true/pass-culture/cache"
	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateVenue godoc
// @Summary Create a new venue
// @Description Create a venue attached to an offerer. Physical venues carry a SIRET, virtual ones do not
// @Tags Pro - Venues
// @Accept json
// @Produce json
// @Param venue body models.CreateVenueRequest true "Venue details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "SIRET already registered"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/venues [post]
func CreateVenue(c *gin.Context) {
	var req models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// A virtual venue has no SIRET; a physical one must carry it
	if req.IsVirtual && req.SIRET != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Virtual venues cannot carry a SIRET"))
		return
	}
	if !req.IsVirtual && req.SIRET == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Physical venues require a SIRET"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Validate offerer exists
	var offerer models.Offerer
	if err := config.Gorm.WithContext(ctx).
		Select("id, siren").
		First(&offerer, "id = ?", req.OffererID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offerer_id"))
		} else {
			log.Printf("[venue.create] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// A venue's SIRET must extend its offerer's SIREN
	if req.SIRET != nil && (*req.SIRET)[:9] != offerer.SIREN {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "SIRET does not match the offerer's SIREN"))
		return
	}

	// Refuse a duplicate SIRET early for a clean error message
	if req.SIRET != nil {
		var count int64
		if err := config.Gorm.WithContext(ctx).
			Model(&models.Venue{}).
			Where("siret = ?", *req.SIRET).
			Count(&count).Error; err == nil && count > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "SIRET already registered"))
			return
		}
	}

	venue := models.Venue{
		OffererID:  req.OffererID,
		Name:       req.Name,
		PublicName: req.PublicName,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		SIRET:      req.SIRET,
		IsVirtual:  req.IsVirtual,
	}

	if err := config.Gorm.WithContext(ctx).Create(&venue).Error; err != nil {
		log.Printf("[venue.create] failed to create venue: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create venue: "+err.Error()))
		return
	}

	venue_cache.Invalidate()

	log.Printf("[venue.create] created venue %s (%s)", venue.ID, venue.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Venue created successfully", venue))
}
