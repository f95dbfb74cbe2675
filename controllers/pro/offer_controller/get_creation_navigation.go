package offer_controller

import (
	"net/http"

	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/navigation"

	"github.com/gin-gonic/gin"
)

// GetCreationNavigation godoc
// @Summary Get the wizard navigation for a new offer
// @Description Compute the creation wizard steps before any offer exists. Only the first step carries a URL
// @Tags Pro - Offers
// @Produce json
// @Param kind query string true "Offer kind" Enums(individual, collective-bookable, collective-template)
// @Param activeStep query string false "Currently displayed step" default(details)
// @Param requestId query string false "Duplication-from-template request ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/pro/offers/navigation [get]
func GetCreationNavigation(c *gin.Context) {
	kind := models.OfferKind(c.Query("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid kind"))
		return
	}

	steps, err := navigation.ComputeSteps(navigation.Params{
		Kind:       kind,
		Mode:       navigation.ModeCreation,
		Status:     models.StatusDraft,
		ActiveStep: navigation.StepID(c.DefaultQuery("activeStep", string(navigation.StepDetails))),
		RequestID:  c.Query("requestId"),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to compute steps"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Navigation computed successfully", gin.H{
		"kind":  kind,
		"mode":  navigation.ModeCreation,
		"steps": steps,
	}))
}
