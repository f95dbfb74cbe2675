// Package offerstatus derives the display status of an offer from its raw
// persisted fields. The result is always recomputed, never stored, so a row
// can never carry a stale status.
package offerstatus

import (
	"time"

	"github.com/jellies-true/pass-culture/models"
)

// Resolve returns the canonical display status for an offer. Rules are
// evaluated in strict precedence order, first match wins:
//
//  1. archived
//  2. rejected
//  3. pending moderation
//  4. draft
//  5. deactivated
//  6. every booking window closed (expired)
//  7. every stock exhausted (sold out)
//  8. active
//
// Template collective offers carry no bookable capacity, so rules 6-7 never
// apply to them. A nil or empty stock list is treated as "no stocks", not as
// an error.
func Resolve(offer *models.Offer, now time.Time) models.OfferStatus {
	if offer.IsArchived() {
		return models.StatusArchived
	}
	if offer.RawStatus == models.StatusRejected {
		return models.StatusRejected
	}
	if offer.RawStatus == models.StatusPending {
		return models.StatusPending
	}
	if offer.RawStatus == models.StatusDraft {
		return models.StatusDraft
	}
	if !offer.IsActive {
		return models.StatusInactive
	}
	if !offer.Kind.IsTemplate() {
		if allBookingLimitsPassed(offer.Stocks, now) {
			return models.StatusExpired
		}
		if allStocksSoldOut(offer.Stocks) {
			return models.StatusSoldOut
		}
	}
	return models.StatusActive
}

// allBookingLimitsPassed reports whether the offer can no longer be booked
// because every stock's booking window closed. Requires at least one stock;
// a stock without a limit keeps the offer bookable.
func allBookingLimitsPassed(stocks []models.Stock, now time.Time) bool {
	if len(stocks) == 0 {
		return false
	}
	for i := range stocks {
		if !stocks[i].HasBookingLimitPassed(now) {
			return false
		}
	}
	return true
}

// allStocksSoldOut reports whether every stock has exactly zero units left.
// Requires at least one stock; an unlimited stock is never exhausted.
func allStocksSoldOut(stocks []models.Stock) bool {
	if len(stocks) == 0 {
		return false
	}
	for i := range stocks {
		if !stocks[i].IsSoldOut() {
			return false
		}
	}
	return true
}
