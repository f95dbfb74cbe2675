package offer_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/navigation"
	"github.com/jellies-true/pass-culture/offerstatus"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOfferNavigation godoc
// @Summary Get the wizard navigation for an offer
// @Description Compute the ordered wizard steps (labels, URLs, active flag) for an offer in the requested mode
// @Tags Pro - Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Param mode query string false "Navigation mode" Enums(creation, edition, read-only) default(edition)
// @Param activeStep query string false "Currently displayed step" default(details)
// @Param requestId query string false "Duplication-from-template request ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers/{id}/navigation [get]
func GetOfferNavigation(c *gin.Context) {
	offerID := c.Param("id")

	id, err := uuid.Parse(offerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer ID"))
		return
	}

	mode := navigation.Mode(c.DefaultQuery("mode", string(navigation.ModeEdition)))
	if !mode.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid mode"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var offer models.Offer
	if err := config.Gorm.WithContext(ctx).
		Preload("Stocks").
		First(&offer, "id = ?", offerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
			return
		}
		log.Printf("[offer.navigation] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	status := offerstatus.Resolve(&offer, time.Now())

	steps, err := navigation.ComputeSteps(navigation.Params{
		Kind:       offer.Kind,
		Mode:       mode,
		Status:     status,
		ActiveStep: navigation.StepID(c.DefaultQuery("activeStep", string(navigation.StepDetails))),
		OfferID:    &id,
		RequestID:  c.Query("requestId"),
	})
	if err != nil {
		if errors.Is(err, navigation.ErrInvalidOfferID) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer identifier"))
			return
		}
		log.Printf("[offer.navigation] failed to compute steps: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Navigation computed successfully", gin.H{
		"offer_id": offer.ID,
		"kind":     offer.Kind,
		"status":   status,
		"mode":     mode,
		"steps":    steps,
	}))
}
