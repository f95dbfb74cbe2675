package booking_controller

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
	"github.com/jellies-true/pass-culture/searchfilters"

	"github.com/gin-gonic/gin"
)

// ExportBookingsCSV godoc
// @Summary Export bookings as CSV
// @Description Download the filtered bookings as a CSV file. Accepts the same filters as the bookings list
// @Tags Pro - Bookings
// @Produce text/csv
// @Success 200 "CSV file"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/bookings/csv [get]
func ExportBookingsCSV(c *gin.Context) {
	filters := searchfilters.Decode(c.Request.URL.Query(), searchfilters.AudienceIndividual)
	status := c.Query("bookingStatus")

	// Exports ignore pagination; the export always covers every matching row
	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	rows, err := fetchBookingRows(ctx, filters, status)
	if err != nil {
		log.Printf("[booking.export-csv] failed to fetch bookings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch bookings"))
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"token", "offer_name", "venue_name", "beneficiary_name", "beneficiary_email", "quantity", "amount", "status", "beginning_datetime", "booked_at"}
	if err := writer.Write(header); err != nil {
		log.Printf("[booking.export-csv] failed to write header: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build CSV"))
		return
	}

	for _, row := range rows {
		beginning := ""
		if row.BeginningDatetime != nil {
			beginning = row.BeginningDatetime.Format(time.RFC3339)
		}
		record := []string{
			row.Token,
			row.OfferName,
			row.VenueName,
			row.BeneficiaryName,
			row.BeneficiaryEmail,
			strconv.Itoa(row.Quantity),
			strconv.FormatFloat(row.Amount, 'f', 2, 64),
			row.Status,
			beginning,
			row.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			log.Printf("[booking.export-csv] failed to write row: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build CSV"))
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("[booking.export-csv] flush failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build CSV"))
		return
	}

	filename := fmt.Sprintf("bookings-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv", buf.Bytes())

	log.Printf("[booking.export-csv] exported %d bookings", len(rows))
}
