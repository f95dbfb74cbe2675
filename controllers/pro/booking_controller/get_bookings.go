package booking_controller

import (
	"log"
	"math"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/searchfilters"

	"github.com/gin-gonic/gin"
)

// BookingsPerPage is the fixed page size of the bookings screen.
const BookingsPerPage = 20

// GetBookings godoc
// @Summary Get paginated bookings
// @Description Retrieve bookings across the user's offers, filtered by the shared list screen filters
// @Tags Pro - Bookings
// @Produce json
// @Param offererId query string false "Offerer ID filter"
// @Param venueId query string false "Venue ID filter"
// @Param name query string false "Offer name filter"
// @Param bookingStatus query string false "Booking status filter" Enums(pending, confirmed, used, cancelled, reimbursed)
// @Param periodBeginningDate query string false "Booking period start (YYYY-MM-DD)"
// @Param periodEndingDate query string false "Booking period end (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/bookings [get]
func GetBookings(c *gin.Context) {
	filters := searchfilters.Decode(c.Request.URL.Query(), searchfilters.AudienceIndividual)
	defaults := searchfilters.DefaultsFor(searchfilters.AudienceIndividual)
	status := c.Query("bookingStatus")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := fetchBookingRows(ctx, filters, status)
	if err != nil {
		log.Printf("[booking.list] failed to fetch bookings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch bookings"))
		return
	}

	// Paginate
	total := len(rows)
	totalPages := int(math.Ceil(float64(total) / float64(BookingsPerPage)))
	start := (filters.Page - 1) * BookingsPerPage
	if start > total {
		start = total
	}
	end := start + BookingsPerPage
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       filters.Page,
		Limit:      BookingsPerPage,
		Total:      total,
		TotalPages: totalPages,
	}
	if searchfilters.HasActiveFilters(filters, defaults) {
		meta.Query = searchfilters.Encode(filters, searchfilters.AudienceIndividual).Encode()
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Bookings fetched successfully", rows[start:end], meta))
}
