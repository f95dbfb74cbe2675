package offer_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/navigation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateOffer godoc
// @Summary Create a new offer
// @Description Create a draft offer (individual, collective bookable or collective template) attached to a venue
// @Tags Pro - Offers
// @Accept json
// @Produce json
// @Param offer body models.CreateOfferRequest true "Offer details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers [post]
func CreateOffer(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Validate venue exists
	var venue models.Venue
	if err := config.Gorm.WithContext(ctx).
		Select("id, name, public_name, offerer_id").
		First(&venue, "id = ?", req.VenueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[offer.create] invalid venue_id: %s", req.VenueID)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid venue_id"))
		} else {
			log.Printf("[offer.create] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Create offer model (UUID v7 auto-generated in BeforeCreate hook)
	// Every offer starts its life as an inactive draft.
	offer := models.Offer{
		Name:         req.Name,
		Description:  req.Description,
		Kind:         req.Kind,
		RawStatus:    models.StatusDraft,
		IsActive:     false,
		IsEditable:   true,
		CategoryID:   req.CategoryID,
		CreationMode: models.CreationModeManual,
		BookingEmail: req.BookingEmail,
		VenueID:      req.VenueID,
	}

	// Step 4: Save to database
	if err := config.Gorm.WithContext(ctx).Create(&offer).Error; err != nil {
		log.Printf("[offer.create] failed to create offer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create offer: "+err.Error()))
		return
	}

	log.Printf("[offer.create] created %s offer %s (%s)", offer.Kind, offer.ID, offer.Name)

	// Step 5: Compute the wizard steps so the client can jump to the next one
	requestID := ""
	if req.RequestID != nil {
		requestID = *req.RequestID
	}
	steps, err := navigation.ComputeSteps(navigation.Params{
		Kind:       offer.Kind,
		Mode:       navigation.ModeCreation,
		Status:     models.StatusDraft,
		ActiveStep: navigation.StepDetails,
		OfferID:    &offer.ID,
		RequestID:  requestID,
	})
	if err != nil {
		log.Printf("[offer.create] failed to compute steps: %v", err)
		// Offer is created; navigation is a convenience for the client
		steps = nil
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Offer created successfully", gin.H{
		"offer": models.OfferResponse{Offer: offer, Status: models.StatusDraft},
		"steps": steps,
	}))
}
