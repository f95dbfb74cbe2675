package offer_controller

import (
	"math"
	"net/http"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/offerstatus"
	"github.com/jellies-true/pass-culture/searchfilters"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OffersPerPage is the fixed page size of the pro list screens.
const OffersPerPage = 10

// GetOffers godoc
// @Summary Get paginated offers
// @Description Retrieve the authenticated user's offers filtered by the list screen search filters
// @Tags Pro - Offers
// @Produce json
// @Param audience query string false "List audience" Enums(individual, collective, collective-template) default(individual)
// @Param name query string false "Name or ISBN filter"
// @Param offererId query string false "Offerer ID filter"
// @Param venueId query string false "Venue ID filter"
// @Param categoryId query string false "Category ID filter"
// @Param status query string false "Display status filter"
// @Param creationMode query string false "Creation mode filter" Enums(manual, imported)
// @Param periodBeginningDate query string false "Creation period start (YYYY-MM-DD)"
// @Param periodEndingDate query string false "Creation period end (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offers [get]
func GetOffers(c *gin.Context) {
	// Step 1: Decode the search filters for the requested audience
	audience := searchfilters.Audience(c.DefaultQuery("audience", string(searchfilters.AudienceIndividual)))
	filters := searchfilters.Decode(c.Request.URL.Query(), audience)
	defaults := searchfilters.DefaultsFor(audience)

	// Step 2: Build query from the stored fields
	query := config.Gorm.Model(&models.Offer{})
	query = applyStoredFilters(query, filters, audience)

	// Step 3: Fetch matching offers with stocks and venue
	offers := make([]models.Offer, 0)
	if err := query.
		Order("created_at DESC").
		Preload("Stocks").
		Preload("Venue", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, public_name, offerer_id, is_virtual")
		}).
		Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offers"))
		return
	}

	// Step 4: Resolve display statuses, then apply the status filter.
	// The display status depends on stocks and clocks, so it cannot be
	// pushed into the WHERE clause.
	now := time.Now()
	rows := make([]models.OfferListRow, 0, len(offers))
	for i := range offers {
		offer := &offers[i]
		status := offerstatus.Resolve(offer, now)
		if filters.Status != searchfilters.All && filters.Status != string(status) {
			continue
		}

		venueName := ""
		if offer.Venue != nil {
			venueName = offer.Venue.DisplayName()
		}

		rows = append(rows, models.OfferListRow{
			ID:        offer.ID,
			Name:      offer.Name,
			Kind:      offer.Kind,
			Status:    status,
			IsActive:  offer.IsActive,
			VenueName: venueName,
			StockSize: len(offer.Stocks),
			ThumbURL:  offer.ThumbURL,
			CreatedAt: offer.CreatedAt,
		})
	}

	// Step 5: Paginate the resolved rows
	total := len(rows)
	totalPages := int(math.Ceil(float64(total) / float64(OffersPerPage)))
	start := (filters.Page - 1) * OffersPerPage
	if start > total {
		start = total
	}
	end := start + OffersPerPage
	if end > total {
		end = total
	}

	// Step 6: Prepare pagination meta with the canonical query string
	meta := &models.Pagination{
		Page:       filters.Page,
		Limit:      OffersPerPage,
		Total:      total,
		TotalPages: totalPages,
	}
	if searchfilters.HasActiveFilters(filters, defaults) {
		meta.Query = searchfilters.Encode(filters, audience).Encode()
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Offers fetched successfully", rows[start:end], meta))
}

// applyStoredFilters narrows the query with every filter that maps to a
// stored column. The status filter is applied after resolution instead.
func applyStoredFilters(query *gorm.DB, filters searchfilters.SearchFilters, audience searchfilters.Audience) *gorm.DB {
	// Audience selects the offer kinds shown by the screen
	switch audience {
	case searchfilters.AudienceIndividual:
		query = query.Where("kind = ?", models.OfferKindIndividual)
	default:
		if filters.CollectiveOfferType == "template" {
			query = query.Where("kind = ?", models.OfferKindCollectiveTemplate)
		} else if filters.CollectiveOfferType == "offer" {
			query = query.Where("kind = ?", models.OfferKindCollectiveBookable)
		} else {
			query = query.Where("kind IN ?", []models.OfferKind{
				models.OfferKindCollectiveBookable,
				models.OfferKindCollectiveTemplate,
			})
		}
	}

	if filters.NameOrISBN != "" {
		query = query.Where("name ILIKE ?", "%"+filters.NameOrISBN+"%")
	}
	if filters.OffererID != searchfilters.All {
		query = query.Where("venue_id IN (?)",
			config.Gorm.Model(&models.Venue{}).Select("id").Where("offerer_id = ?", filters.OffererID))
	}
	if filters.VenueID != searchfilters.All {
		query = query.Where("venue_id = ?", filters.VenueID)
	}
	if filters.CategoryID != searchfilters.All {
		query = query.Where("category_id = ?", filters.CategoryID)
	}
	if filters.CreationMode != searchfilters.All {
		query = query.Where("creation_mode = ?", filters.CreationMode)
	}
	if filters.PeriodBeginningDate != "" {
		query = query.Where("created_at >= ?", filters.PeriodBeginningDate)
	}
	if filters.PeriodEndingDate != "" {
		// Inclusive upper bound: the whole ending day counts
		query = query.Where("created_at < ?::date + 1", filters.PeriodEndingDate)
	}

	return query
}
