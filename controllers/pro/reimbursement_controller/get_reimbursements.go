package reimbursement_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
)

// GetReimbursements godoc
// @Summary Get reimbursements grouped by venue
// @Description Retrieve reimbursed bookings grouped per venue with the total paid out to each. Reimbursements run every fifteen days, retroactively covering counterpart-validated bookings
// @Tags Pro - Reimbursements
// @Produce json
// @Param venueId query string false "Venue ID filter"
// @Param periodBeginningDate query string false "Reimbursement period start (YYYY-MM-DD)"
// @Param periodEndingDate query string false "Reimbursement period end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/reimbursements [get]
func GetReimbursements(c *gin.Context) {
	venueID := c.Query("venueId")
	periodStart := c.Query("periodBeginningDate")
	periodEnd := c.Query("periodEndingDate")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := fetchReimbursementRows(ctx, venueID, periodStart, periodEnd)
	if err != nil {
		log.Printf("[reimbursement.list] failed to fetch reimbursements: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reimbursements"))
		return
	}

	venues := groupByVenue(rows)

	totalAmount := 0.0
	for _, venue := range venues {
		totalAmount += venue.TotalAmount
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reimbursements fetched successfully", gin.H{
		"venues":       venues,
		"total_amount": totalAmount,
	}))
}
