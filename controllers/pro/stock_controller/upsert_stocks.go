package stock_controller

import (
	"log"
	"net/http"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpsertStocks godoc
// @Summary Create or update the stocks of an offer
// @Description Upsert a batch of stocks in one transaction. Entries with an id update an existing stock, the rest are created. Template offers carry no stocks
// @Tags Pro - Stocks
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body models.UpsertStocksRequest true "Stocks to create or update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 409 {object} models.ApiResponse "Offer cannot hold stocks"
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers/{id}/stocks [post]
func UpsertStocks(c *gin.Context) {
	offerID := c.Param("id")

	parsedOfferID, err := uuid.Parse(offerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer ID"))
		return
	}

	var req models.UpsertStocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Fetch the offer and check it can hold stocks
	var offer models.Offer
	if err := config.Gorm.WithContext(ctx).
		First(&offer, "id = ?", offerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
			return
		}
		log.Printf("[stock.upsert] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if offer.Kind.IsTemplate() {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Template offers cannot hold stocks"))
		return
	}
	if offer.IsArchived() {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Archived offers cannot be edited"))
		return
	}

	// Step 2: Apply the whole batch in one transaction
	saved := make([]models.Stock, 0, len(req.Stocks))
	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Stocks {
			if entry.ID != nil {
				// Update an existing stock; it must belong to this offer
				var stock models.Stock
				if err := tx.First(&stock, "id = ? AND offer_id = ?", entry.ID, parsedOfferID).Error; err != nil {
					return err
				}
				stock.Price = entry.Price
				stock.RemainingQuantity = entry.RemainingQuantity
				stock.BookingLimitDatetime = entry.BookingLimitDatetime
				stock.BeginningDatetime = entry.BeginningDatetime
				if err := tx.Save(&stock).Error; err != nil {
					return err
				}
				saved = append(saved, stock)
				continue
			}

			stock := models.Stock{
				OfferID:              parsedOfferID,
				Price:                entry.Price,
				RemainingQuantity:    entry.RemainingQuantity,
				BookingLimitDatetime: entry.BookingLimitDatetime,
				BeginningDatetime:    entry.BeginningDatetime,
			}
			if err := tx.Create(&stock).Error; err != nil {
				return err
			}
			saved = append(saved, stock)
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Stock does not belong to this offer"))
			return
		}
		log.Printf("[stock.upsert] transaction failed for offer %s: %v", offerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save stocks"))
		return
	}

	log.Printf("[stock.upsert] saved %d stocks for offer %s", len(saved), offerID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stocks saved successfully", saved))
}
