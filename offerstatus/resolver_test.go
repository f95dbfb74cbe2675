package offerstatus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jellies-true/pass-culture/models"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func activeOffer() *models.Offer {
	return &models.Offer{
		Kind:      models.OfferKindIndividual,
		RawStatus: models.StatusActive,
		IsActive:  true,
	}
}

func TestResolve_ArchivedWinsOverEverything(t *testing.T) {
	archivedAt := now.Add(-time.Hour)

	tests := []struct {
		name  string
		offer *models.Offer
	}{
		{
			name: "archived rejected offer",
			offer: &models.Offer{
				Kind:       models.OfferKindIndividual,
				RawStatus:  models.StatusRejected,
				ArchivedAt: &archivedAt,
			},
		},
		{
			name: "archived active offer with sold out stocks",
			offer: &models.Offer{
				Kind:       models.OfferKindIndividual,
				RawStatus:  models.StatusActive,
				IsActive:   true,
				ArchivedAt: &archivedAt,
				Stocks:     []models.Stock{{RemainingQuantity: intPtr(0)}},
			},
		},
		{
			name: "archived draft",
			offer: &models.Offer{
				Kind:       models.OfferKindCollectiveTemplate,
				RawStatus:  models.StatusDraft,
				ArchivedAt: &archivedAt,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, models.StatusArchived, Resolve(tt.offer, now))
		})
	}
}

func TestResolve_ModerationStatusesPrecedeActivation(t *testing.T) {
	tests := []struct {
		raw  models.OfferStatus
		want models.OfferStatus
	}{
		{models.StatusRejected, models.StatusRejected},
		{models.StatusPending, models.StatusPending},
		{models.StatusDraft, models.StatusDraft},
	}

	for _, tt := range tests {
		t.Run(string(tt.raw), func(t *testing.T) {
			// isActive false would otherwise resolve to INACTIVE, but the
			// moderation status takes precedence.
			offer := &models.Offer{
				Kind:      models.OfferKindIndividual,
				RawStatus: tt.raw,
				IsActive:  false,
			}
			assert.Equal(t, tt.want, Resolve(offer, now))
		})
	}
}

func TestResolve_Inactive(t *testing.T) {
	offer := activeOffer()
	offer.IsActive = false
	assert.Equal(t, models.StatusInactive, Resolve(offer, now))
}

func TestResolve_Expired(t *testing.T) {
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	t.Run("all booking limits passed", func(t *testing.T) {
		offer := activeOffer()
		offer.Stocks = []models.Stock{
			{BookingLimitDatetime: timePtr(past), RemainingQuantity: intPtr(5)},
			{BookingLimitDatetime: timePtr(past), RemainingQuantity: intPtr(0)},
		}
		assert.Equal(t, models.StatusExpired, Resolve(offer, now))
	})

	t.Run("one stock still bookable", func(t *testing.T) {
		offer := activeOffer()
		offer.Stocks = []models.Stock{
			{BookingLimitDatetime: timePtr(past), RemainingQuantity: intPtr(5)},
			{BookingLimitDatetime: timePtr(future), RemainingQuantity: intPtr(5)},
		}
		assert.Equal(t, models.StatusActive, Resolve(offer, now))
	})

	t.Run("stock without a limit never expires", func(t *testing.T) {
		offer := activeOffer()
		offer.Stocks = []models.Stock{
			{BookingLimitDatetime: timePtr(past), RemainingQuantity: intPtr(5)},
			{RemainingQuantity: intPtr(5)},
		}
		assert.Equal(t, models.StatusActive, Resolve(offer, now))
	})

	t.Run("expired wins over sold out", func(t *testing.T) {
		offer := activeOffer()
		offer.Stocks = []models.Stock{
			{BookingLimitDatetime: timePtr(past), RemainingQuantity: intPtr(0)},
		}
		assert.Equal(t, models.StatusExpired, Resolve(offer, now))
	})
}

func TestResolve_SoldOut(t *testing.T) {
	t.Run("every stock at zero", func(t *testing.T) {
		offer := activeOffer()
		offer.Stocks = []models.Stock{
			{RemainingQuantity: intPtr(0)},
			{RemainingQuantity: intPtr(0)},
		}
		assert.Equal(t, models.StatusSoldOut, Resolve(offer, now))
	})

	t.Run("single zero stock", func(t *testing.T) {
		// active offer, one stock, remaining quantity zero
		offer := activeOffer()
		offer.Stocks = []models.Stock{{RemainingQuantity: intPtr(0)}}
		assert.Equal(t, models.StatusSoldOut, Resolve(offer, now))
	})

	t.Run("unlimited stock is never exhausted", func(t *testing.T) {
		offer := activeOffer()
		offer.Stocks = []models.Stock{
			{RemainingQuantity: intPtr(0)},
			{RemainingQuantity: nil},
		}
		assert.Equal(t, models.StatusActive, Resolve(offer, now))
	})

	t.Run("zero stocks is never sold out", func(t *testing.T) {
		offer := activeOffer()
		offer.Stocks = nil
		assert.Equal(t, models.StatusActive, Resolve(offer, now))
	})
}

func TestResolve_TemplateSkipsCapacityRules(t *testing.T) {
	t.Run("active template without stocks", func(t *testing.T) {
		offer := &models.Offer{
			Kind:      models.OfferKindCollectiveTemplate,
			RawStatus: models.StatusActive,
			IsActive:  true,
		}
		assert.Equal(t, models.StatusActive, Resolve(offer, now))
	})

	t.Run("template ignores exhausted stocks", func(t *testing.T) {
		// A template never has quantities; if a row sneaks one in anyway
		// the capacity rules still must not fire.
		offer := &models.Offer{
			Kind:      models.OfferKindCollectiveTemplate,
			RawStatus: models.StatusActive,
			IsActive:  true,
			Stocks:    []models.Stock{{RemainingQuantity: intPtr(0)}},
		}
		assert.Equal(t, models.StatusActive, Resolve(offer, now))
	})

	t.Run("deactivated template", func(t *testing.T) {
		offer := &models.Offer{
			Kind:      models.OfferKindCollectiveTemplate,
			RawStatus: models.StatusActive,
			IsActive:  false,
		}
		assert.Equal(t, models.StatusInactive, Resolve(offer, now))
	})
}

func TestResolve_Active(t *testing.T) {
	future := now.Add(24 * time.Hour)
	offer := activeOffer()
	offer.Stocks = []models.Stock{
		{BookingLimitDatetime: timePtr(future), RemainingQuantity: intPtr(12)},
	}
	assert.Equal(t, models.StatusActive, Resolve(offer, now))
}
