package booking_controller

import (
	"context"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/searchfilters"

	"gorm.io/gorm"
)

// fetchBookingRows runs the shared bookings query behind the list screen
// and both exports. Filters come from the same codec as the offer list, so
// a shared URL selects the same rows everywhere.
func fetchBookingRows(ctx context.Context, filters searchfilters.SearchFilters, status string) ([]models.BookingListRow, error) {
	query := config.Gorm.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id, bookings.token, offers.id AS offer_id, offers.name AS offer_name,
			COALESCE(venues.public_name, venues.name) AS venue_name,
			bookings.beneficiary_email,
			TRIM(bookings.beneficiary_first_name || ' ' || bookings.beneficiary_last_name) AS beneficiary_name,
			bookings.quantity, bookings.amount, bookings.status,
			stocks.beginning_datetime, bookings.created_at`).
		Joins("JOIN stocks ON stocks.id = bookings.stock_id").
		Joins("JOIN offers ON offers.id = stocks.offer_id").
		Joins("JOIN venues ON venues.id = offers.venue_id")

	query = applyBookingFilters(query, filters, status)

	rows := make([]models.BookingListRow, 0)
	if err := query.Order("bookings.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func applyBookingFilters(query *gorm.DB, filters searchfilters.SearchFilters, status string) *gorm.DB {
	if filters.OffererID != searchfilters.All {
		query = query.Where("venues.offerer_id = ?", filters.OffererID)
	}
	if filters.VenueID != searchfilters.All {
		query = query.Where("venues.id = ?", filters.VenueID)
	}
	if filters.NameOrISBN != "" {
		query = query.Where("offers.name ILIKE ?", "%"+filters.NameOrISBN+"%")
	}
	if filters.PeriodBeginningDate != "" {
		query = query.Where("bookings.created_at >= ?", filters.PeriodBeginningDate)
	}
	if filters.PeriodEndingDate != "" {
		// Inclusive upper bound: the whole ending day counts
		query = query.Where("bookings.created_at < ?::date + 1", filters.PeriodEndingDate)
	}
	if status != "" && status != searchfilters.All {
		query = query.Where("bookings.status = ?", status)
	}
	return query
}
