package offer_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/offerstatus"
	"github.com/jellies-true/pass-culture/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateOffer godoc
// @Summary Update an offer
// @Description Partially update an offer. Archived, rejected and pending offers are not editable
// @Tags Pro - Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param offer body models.UpdateOfferRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.OfferResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 409 {object} models.ApiResponse "Offer not editable"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers/{id} [patch]
func UpdateOffer(c *gin.Context) {
	offerID := c.Param("id")

	if _, err := uuid.Parse(offerID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer ID"))
		return
	}

	var req models.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Fetch the offer
	var offer models.Offer
	if err := config.Gorm.WithContext(ctx).
		First(&offer, "id = ?", offerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
			return
		}
		log.Printf("[offer.update] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Step 2: Refuse edits on archived or moderated offers
	if offer.IsArchived() {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Archived offers cannot be edited"))
		return
	}
	if !offer.IsEditable || offer.RawStatus == models.StatusRejected || offer.RawStatus == models.StatusPending {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Offer is not editable"))
		return
	}

	// Step 3: Build the update map from the provided fields only
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.BookingEmail != nil {
		updates["booking_email"] = *req.BookingEmail
	}
	published := false
	if req.IsActive != nil {
		// A draft becomes a real offer the first time it is published
		if *req.IsActive && offer.RawStatus == models.StatusDraft {
			updates["raw_status"] = models.StatusActive
			published = true
		}
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	// Step 4: Persist
	if err := config.Gorm.WithContext(ctx).
		Model(&offer).
		Updates(updates).Error; err != nil {
		log.Printf("[offer.update] failed to update offer %s: %v", offerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update offer"))
		return
	}

	// Step 5: Reload with stocks for status resolution
	if err := config.Gorm.WithContext(ctx).
		Preload("Stocks").
		Preload("Venue").
		First(&offer, "id = ?", offerID).Error; err != nil {
		log.Printf("[offer.update] failed to reload offer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	log.Printf("[offer.update] updated offer %s", offerID)

	if published {
		go notifyOfferPublished(&offer)
	}

	response := models.OfferResponse{
		Offer:  offer,
		Status: offerstatus.Resolve(&offer, time.Now()),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offer updated successfully", response))
}

// notifyOfferPublished emails the offer's booking contact once the offer
// goes live, when one is set
func notifyOfferPublished(offer *models.Offer) {
	if offer.BookingEmail == nil || *offer.BookingEmail == "" {
		return
	}

	venueName := ""
	if offer.Venue != nil {
		venueName = offer.Venue.DisplayName()
	}

	emailData := services.OfferValidationEmailData{
		RecipientEmail: *offer.BookingEmail,
		RecipientName:  venueName,
		OfferName:      offer.Name,
		VenueName:      venueName,
		Approved:       true,
		OfferLink:      config.GetProFrontendURL() + "/offers/" + offer.ID.String(),
	}

	if err := services.GetResendClient().SendOfferValidationEmail(emailData); err != nil {
		log.Printf("[offer.update] failed to send publication email: %v", err)
	}
}
