package reimbursement_controller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
)

// ExportReimbursementsCSV godoc
// @Summary Export reimbursement details as CSV
// @Description Download the reimbursement details as a CSV file. Accepts the same filters as the reimbursements list
// @Tags Pro - Reimbursements
// @Produce text/csv
// @Param venueId query string false "Venue ID filter"
// @Param periodBeginningDate query string false "Reimbursement period start (YYYY-MM-DD)"
// @Param periodEndingDate query string false "Reimbursement period end (YYYY-MM-DD)"
// @Success 200 "CSV file"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/reimbursements/csv [get]
func ExportReimbursementsCSV(c *gin.Context) {
	venueID := c.Query("venueId")
	periodStart := c.Query("periodBeginningDate")
	periodEnd := c.Query("periodEndingDate")

	// Exports ignore pagination; the export always covers every matching row
	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	rows, err := fetchReimbursementRows(ctx, venueID, periodStart, periodEnd)
	if err != nil {
		log.Printf("[reimbursement.export-csv] failed to fetch reimbursements: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reimbursements"))
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"reimbursed_at", "venue_name", "offer_name", "token", "beneficiary_name", "quantity", "amount"}
	if err := writer.Write(header); err != nil {
		log.Printf("[reimbursement.export-csv] failed to write header: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build CSV"))
		return
	}

	for _, row := range rows {
		record := []string{
			row.ReimbursedAt.Format(time.RFC3339),
			venueLabel(row),
			row.OfferName,
			row.Token,
			row.BeneficiaryName,
			strconv.Itoa(row.Quantity),
			strconv.FormatFloat(row.Amount, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			log.Printf("[reimbursement.export-csv] failed to write row: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build CSV"))
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("[reimbursement.export-csv] flush failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build CSV"))
		return
	}

	filename := fmt.Sprintf("reimbursements-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv", buf.Bytes())

	log.Printf("[reimbursement.export-csv] exported %d reimbursements", len(rows))
}
