package booking_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/searchfilters"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// DownloadBookingsPDF godoc
// @Summary Download bookings as PDF
// @Description Generate and download a PDF recap of the filtered bookings. Accepts the same filters as the bookings list
// @Tags Pro - Bookings
// @Produce octet-stream
// @Success 200 "PDF file"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/bookings/pdf [get]
func DownloadBookingsPDF(c *gin.Context) {
	filters := searchfilters.Decode(c.Request.URL.Query(), searchfilters.AudienceIndividual)
	status := c.Query("bookingStatus")

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	rows, err := fetchBookingRows(ctx, filters, status)
	if err != nil {
		log.Printf("[booking.download-pdf] failed to fetch bookings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch bookings"))
		return
	}

	pdfBuffer := generateBookingsPDF(rows)

	filename := fmt.Sprintf("bookings-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[booking.download-pdf] exported %d bookings", len(rows))
}

// generateBookingsPDF lays out the bookings recap document
func generateBookingsPDF(rows []models.BookingListRow) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Colors
	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("BOOKINGS", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("pass Culture Pro", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generated on %s — %d bookings", time.Now().Format("Jan 02, 2006"), len(rows)), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Table header
	m.Row(6, func() {
		m.Col(2, func() {
			m.Text("Token", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text("Offer", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(3, func() {
			m.Text("Beneficiary", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(1, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Amount", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	// Rows
	var totalAmount float64
	for _, row := range rows {
		totalAmount += row.Amount
		m.Row(6, func() {
			m.Col(2, func() {
				m.Text(row.Token, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(row.OfferName, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(3, func() {
				m.Text(row.BeneficiaryName, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(1, func() {
				m.Text(fmt.Sprintf("%d", row.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%.2f EUR", row.Amount), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Total
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("%.2f EUR", totalAmount), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(12, func() {})

	// Footer
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("© 2026 pass Culture. All rights reserved.", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	// Output to buffer
	buf, err := m.Output()
	if err != nil {
		log.Printf("[booking.download-pdf] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}
