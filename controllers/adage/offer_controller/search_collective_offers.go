package adage_offer_controller

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/offerstatus"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SearchCollectiveOffers godoc
// @Summary Search bookable collective offers
// @Description Public search over collective offers for teachers. Only offers whose resolved status is ACTIVE are returned
// @Tags Adage - Offers
// @Produce json
// @Param q query string false "Name search"
// @Param categoryId query string false "Category filter"
// @Param venueId query string false "Venue filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/adage/offers [get]
func SearchCollectiveOffers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.Gorm.Model(&models.Offer{}).
		Where("kind = ?", models.OfferKindCollectiveBookable).
		Where("archived_at IS NULL").
		Where("is_active = ?", true).
		Where("raw_status = ?", models.StatusActive)

	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}
	if categoryID := c.Query("categoryId"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if venueID := c.Query("venueId"); venueID != "" {
		query = query.Where("venue_id = ?", venueID)
	}

	offers := make([]models.Offer, 0)
	if err := query.
		Order("created_at DESC").
		Preload("Stocks").
		Preload("Venue", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, public_name, city, postal_code, is_virtual")
		}).
		Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offers"))
		return
	}

	// Sold-out and expired offers are active in the database but not
	// bookable; the resolver weeds them out.
	now := time.Now()
	visible := make([]models.OfferResponse, 0, len(offers))
	for i := range offers {
		status := offerstatus.Resolve(&offers[i], now)
		if status != models.StatusActive {
			continue
		}
		visible = append(visible, models.OfferResponse{Offer: offers[i], Status: status})
	}

	// Paginate the visible offers
	total := len(visible)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Offers fetched successfully", visible[start:end], meta))
}
