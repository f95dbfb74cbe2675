package adage_offer_controller

import (
	"crypto/rand"
	"log"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/offerstatus"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrebookCollectiveOffer godoc
// @Summary Prebook a collective offer
// @Description Create a pending booking for a teacher on a bookable collective offer. The stock quantity is reserved immediately
// @Tags Adage - Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body models.PrebookCollectiveOfferRequest true "Teacher details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 409 {object} models.ApiResponse "Offer not bookable"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/adage/offers/{id}/prebook [post]
func PrebookCollectiveOffer(c *gin.Context) {
	offerID := c.Param("id")

	if _, err := uuid.Parse(offerID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer ID"))
		return
	}

	var req models.PrebookCollectiveOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Fetch the offer with stocks
	var offer models.Offer
	if err := config.Gorm.WithContext(ctx).
		Preload("Stocks").
		Where("kind = ?", models.OfferKindCollectiveBookable).
		First(&offer, "id = ?", offerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
			return
		}
		log.Printf("[adage.prebook] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Step 2: The offer must currently be bookable
	now := time.Now()
	if status := offerstatus.Resolve(&offer, now); status != models.StatusActive {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Offer is not bookable"))
		return
	}

	// Step 3: Pick the first stock still open for booking
	var target *models.Stock
	for i := range offer.Stocks {
		stock := &offer.Stocks[i]
		if stock.IsSoldOut() || stock.HasBookingLimitPassed(now) {
			continue
		}
		target = stock
		break
	}
	if target == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Offer is not bookable"))
		return
	}

	// Step 4: Create the pending booking and reserve the quantity
	booking := models.Booking{
		StockID:              target.ID,
		Token:                newBookingToken(),
		BeneficiaryEmail:     req.TeacherEmail,
		BeneficiaryFirstName: req.TeacherFirstName,
		BeneficiaryLastName:  req.TeacherLastName,
		Quantity:             1,
		Amount:               target.Price,
		Status:               models.BookingStatusPending,
	}

	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		if !target.IsUnlimited() {
			// The WHERE guard keeps the quantity from going negative
			// under concurrent prebookings
			result := tx.Model(&models.Stock{}).
				Where("id = ? AND remaining_quantity > 0", target.ID).
				Update("remaining_quantity", gorm.Expr("remaining_quantity - 1"))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Offer is not bookable"))
			return
		}
		log.Printf("[adage.prebook] transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to prebook offer"))
		return
	}

	log.Printf("[adage.prebook] created booking %s (token %s) on offer %s", booking.ID, booking.Token, offerID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Offer prebooked successfully", booking))
}

// newBookingToken generates the 6 character counterpart token printed on
// booking confirmations.
func newBookingToken() string {
	const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand is the kernel; failure here is unrecoverable
		panic(err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}
