package booking_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CancelBooking godoc
// @Summary Cancel a booking
// @Description Cancel a confirmed or pending booking, release the stock quantity and notify the offer's booking contact
// @Tags Pro - Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid booking ID"
// @Failure 404 {object} models.ApiResponse "Booking not found"
// @Failure 409 {object} models.ApiResponse "Booking cannot be cancelled"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/bookings/{id}/cancel [patch]
func CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")

	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid booking ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var booking models.Booking
	if err := config.Gorm.WithContext(ctx).
		Preload("Stock").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Booking not found"))
			return
		}
		log.Printf("[booking.cancel] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Used and reimbursed bookings are settled; cancelling twice is a no-op error
	if !booking.IsCancellable() {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Booking cannot be cancelled"))
		return
	}

	now := time.Now()
	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The WHERE guard makes concurrent cancels race for a single row
		// update, so the stock is released exactly once
		result := tx.Model(&models.Booking{}).
			Where("id = ? AND status IN ?", booking.ID, models.CancellableStatuses).
			Updates(map[string]interface{}{
				"status":       models.BookingStatusCancelled,
				"cancelled_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Release the quantity back to the stock unless it is unlimited
		if booking.Stock != nil && !booking.Stock.IsUnlimited() {
			if err := tx.Model(&models.Stock{}).
				Where("id = ?", booking.StockID).
				Update("remaining_quantity", gorm.Expr("remaining_quantity + ?", booking.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Booking cannot be cancelled"))
			return
		}
		log.Printf("[booking.cancel] failed to cancel booking %s: %v", bookingID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to cancel booking"))
		return
	}

	log.Printf("[booking.cancel] cancelled booking %s (token %s)", bookingID, booking.Token)

	// Notify the offer's booking contact asynchronously
	go notifyBookingCancelled(&booking)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Booking cancelled successfully", gin.H{
		"id":           booking.ID,
		"token":        booking.Token,
		"status":       models.BookingStatusCancelled,
		"cancelled_at": now,
	}))
}

// notifyBookingCancelled emails the offer's booking contact, when one is set
func notifyBookingCancelled(booking *models.Booking) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var contact struct {
		OfferName    string
		VenueName    string
		BookingEmail *string
	}
	if err := config.Gorm.WithContext(ctx).
		Table("stocks").
		Select(`offers.name AS offer_name, COALESCE(venues.public_name, venues.name) AS venue_name, offers.booking_email`).
		Joins("JOIN offers ON offers.id = stocks.offer_id").
		Joins("JOIN venues ON venues.id = offers.venue_id").
		Where("stocks.id = ?", booking.StockID).
		Scan(&contact).Error; err != nil {
		log.Printf("[booking.cancel] failed to fetch booking contact: %v", err)
		return
	}

	if contact.BookingEmail == nil || *contact.BookingEmail == "" {
		return
	}

	emailData := services.BookingCancellationEmailData{
		RecipientEmail:  *contact.BookingEmail,
		BeneficiaryName: booking.BeneficiaryFirstName + " " + booking.BeneficiaryLastName,
		BookingToken:    booking.Token,
		OfferName:       contact.OfferName,
		VenueName:       contact.VenueName,
		Amount:          booking.Amount,
	}

	if err := services.GetResendClient().SendBookingCancellationEmail(emailData); err != nil {
		log.Printf("[booking.cancel] failed to send cancellation email: %v", err)
	}
}
