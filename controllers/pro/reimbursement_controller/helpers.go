package reimbursement_controller

import (
	"context"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/google/uuid"
)

// fetchReimbursementRows runs the shared reimbursements query behind the
// list screen and the CSV export. Only reimbursed bookings qualify; the
// period filter runs on the reimbursement date, not the booking date.
func fetchReimbursementRows(ctx context.Context, venueID, periodStart, periodEnd string) ([]models.ReimbursementRow, error) {
	query := config.Gorm.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id AS booking_id, bookings.token,
			offers.id AS offer_id, offers.name AS offer_name,
			venues.id AS venue_id, COALESCE(venues.public_name, venues.name) AS venue_name,
			venues.is_virtual, offerers.name AS offerer_name,
			TRIM(bookings.beneficiary_first_name || ' ' || bookings.beneficiary_last_name) AS beneficiary_name,
			bookings.quantity, bookings.amount, bookings.updated_at AS reimbursed_at`).
		Joins("JOIN stocks ON stocks.id = bookings.stock_id").
		Joins("JOIN offers ON offers.id = stocks.offer_id").
		Joins("JOIN venues ON venues.id = offers.venue_id").
		Joins("JOIN offerers ON offerers.id = venues.offerer_id").
		Where("bookings.status = ?", models.BookingStatusReimbursed)

	if venueID != "" {
		query = query.Where("venues.id = ?", venueID)
	}
	if periodStart != "" {
		query = query.Where("bookings.updated_at >= ?", periodStart)
	}
	if periodEnd != "" {
		// Inclusive upper bound: the whole ending day counts
		query = query.Where("bookings.updated_at < ?::date + 1", periodEnd)
	}

	rows := make([]models.ReimbursementRow, 0)
	if err := query.Order("bookings.updated_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// venueLabel renders a venue the way the pro console names it: virtual
// venues show under "<offerer> - Offre numérique".
func venueLabel(row models.ReimbursementRow) string {
	if row.IsVirtual {
		return row.OffererName + " - Offre numérique"
	}
	return row.VenueName
}

// groupByVenue folds reimbursement rows into per-venue summaries. Rows
// arrive sorted by reimbursement date, so venues come out ordered by
// their most recent payout and keep that order inside each group.
func groupByVenue(rows []models.ReimbursementRow) []models.VenueReimbursementSummary {
	summaries := make([]models.VenueReimbursementSummary, 0)
	index := make(map[uuid.UUID]int)

	for _, row := range rows {
		i, ok := index[row.VenueID]
		if !ok {
			i = len(summaries)
			index[row.VenueID] = i
			summaries = append(summaries, models.VenueReimbursementSummary{
				VenueID:   row.VenueID,
				VenueName: venueLabel(row),
				Bookings:  make([]models.ReimbursementRow, 0, 1),
			})
		}
		summaries[i].Bookings = append(summaries[i].Bookings, row)
		summaries[i].BookingsCount++
		summaries[i].TotalAmount += row.Amount * float64(row.Quantity)
	}
	return summaries
}
