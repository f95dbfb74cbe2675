package reimbursement_controller

import (
	"testing"
	"time"

	"github.com/jellies-true/pass-culture/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByVenue(t *testing.T) {
	venueA := uuid.Must(uuid.NewV7())
	venueB := uuid.Must(uuid.NewV7())
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	rows := []models.ReimbursementRow{
		{VenueID: venueA, VenueName: "Librairie de la Place", Amount: 12.50, Quantity: 2, ReimbursedAt: now},
		{VenueID: venueB, VenueName: "Théâtre du Nord", Amount: 30.00, Quantity: 1, ReimbursedAt: now.Add(-time.Hour)},
		{VenueID: venueA, VenueName: "Librairie de la Place", Amount: 8.00, Quantity: 1, ReimbursedAt: now.Add(-2 * time.Hour)},
	}

	venues := groupByVenue(rows)
	require.Len(t, venues, 2)

	// Venues keep the order of their first (most recent) row
	assert.Equal(t, venueA, venues[0].VenueID)
	assert.Equal(t, "Librairie de la Place", venues[0].VenueName)
	assert.Equal(t, 2, venues[0].BookingsCount)
	assert.InDelta(t, 33.00, venues[0].TotalAmount, 0.001)
	require.Len(t, venues[0].Bookings, 2)

	assert.Equal(t, venueB, venues[1].VenueID)
	assert.Equal(t, 1, venues[1].BookingsCount)
	assert.InDelta(t, 30.00, venues[1].TotalAmount, 0.001)
}

func TestGroupByVenue_Empty(t *testing.T) {
	venues := groupByVenue(nil)
	assert.NotNil(t, venues)
	assert.Empty(t, venues)
}

func TestVenueLabel(t *testing.T) {
	physical := models.ReimbursementRow{VenueName: "Cinéma Le Rex", OffererName: "UGC"}
	assert.Equal(t, "Cinéma Le Rex", venueLabel(physical))

	// Virtual venues show under the offerer's digital-offers label
	virtual := models.ReimbursementRow{VenueName: "Offre numérique", OffererName: "UGC", IsVirtual: true}
	assert.Equal(t, "UGC - Offre numérique", venueLabel(virtual))
}
