package offerer_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOffererStats godoc
// @Summary Get the offerer dashboard statistics
// @Description Aggregate venue, offer, booking and revenue counts for one offerer, plus its most booked offers
// @Tags Pro - Offerers
// @Produce json
// @Param id path string true "Offerer ID"
// @Success 200 {object} models.ApiResponse{data=models.OffererStatsResponse}
// @Failure 400 {object} models.ApiResponse "Invalid offerer ID"
// @Failure 404 {object} models.ApiResponse "Offerer not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offerers/{id}/stats [get]
func GetOffererStats(c *gin.Context) {
	offererID := c.Param("id")

	parsedID, err := uuid.Parse(offererID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offerer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Make sure the offerer exists
	var offerer models.Offerer
	if err := config.Gorm.WithContext(ctx).
		Select("id").
		First(&offerer, "id = ?", offererID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offerer not found"))
			return
		}
		log.Printf("[offerer.stats] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	stats := models.OffererStatsResponse{OffererID: parsedID}

	// Venue count
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Venue{}).
		Where("offerer_id = ?", offererID).
		Count(&stats.VenueCount).Error; err != nil {
		log.Printf("[offerer.stats] failed to count venues: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	// Offer counts (archived offers are gone from every screen)
	offerBase := config.Gorm.WithContext(ctx).
		Model(&models.Offer{}).
		Joins("JOIN venues ON venues.id = offers.venue_id").
		Where("venues.offerer_id = ?", offererID).
		Where("offers.archived_at IS NULL")

	if err := offerBase.Session(&gorm.Session{}).Count(&stats.OfferCount).Error; err != nil {
		log.Printf("[offerer.stats] failed to count offers: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	if err := offerBase.Session(&gorm.Session{}).
		Where("offers.is_active = ? AND offers.raw_status = ?", true, models.StatusActive).
		Count(&stats.PublishedOffers).Error; err != nil {
		log.Printf("[offerer.stats] failed to count published offers: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	// Booking count and revenue over non-cancelled bookings
	row := config.Gorm.WithContext(ctx).
		Table("bookings").
		Select("COUNT(*) AS count, COALESCE(SUM(bookings.amount), 0) AS revenue").
		Joins("JOIN stocks ON stocks.id = bookings.stock_id").
		Joins("JOIN offers ON offers.id = stocks.offer_id").
		Joins("JOIN venues ON venues.id = offers.venue_id").
		Where("venues.offerer_id = ?", offererID).
		Where("bookings.status != ?", models.BookingStatusCancelled)

	var bookingAgg struct {
		Count   int64
		Revenue float64
	}
	if err := row.Scan(&bookingAgg).Error; err != nil {
		log.Printf("[offerer.stats] failed to aggregate bookings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}
	stats.BookingCount = bookingAgg.Count
	stats.Revenue = bookingAgg.Revenue

	// Top 5 most booked offers
	topOffers := make([]models.OffererStatsOffer, 0, 5)
	if err := config.Gorm.WithContext(ctx).
		Table("offers").
		Select("offers.id, offers.name, COUNT(bookings.id) AS booking_count").
		Joins("JOIN venues ON venues.id = offers.venue_id").
		Joins("JOIN stocks ON stocks.offer_id = offers.id").
		Joins("JOIN bookings ON bookings.stock_id = stocks.id").
		Where("venues.offerer_id = ?", offererID).
		Where("bookings.status != ?", models.BookingStatusCancelled).
		Group("offers.id, offers.name").
		Order("booking_count DESC").
		Limit(5).
		Scan(&topOffers).Error; err != nil {
		log.Printf("[offerer.stats] failed to fetch top offers: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}
	stats.TopOffers = topOffers

	log.Printf("[offerer.stats] retrieved for %s: venues=%d, offers=%d, bookings=%d",
		offererID, stats.VenueCount, stats.OfferCount, stats.BookingCount)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offerer stats retrieved", stats))
}
