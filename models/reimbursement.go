package models

import (
	"time"

	"github.com/google/uuid"
)

// ReimbursementRow is one reimbursed booking line of the pro
// reimbursements screen and its CSV export. The payment run flips the
// booking status, so updated_at carries the reimbursement date.
type ReimbursementRow struct {
	BookingID       uuid.UUID `json:"booking_id"`
	Token           string    `json:"token"`
	OfferID         uuid.UUID `json:"offer_id"`
	OfferName       string    `json:"offer_name"`
	VenueID         uuid.UUID `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	OffererName     string    `json:"offerer_name"`
	IsVirtual       bool      `json:"is_virtual"`
	BeneficiaryName string    `json:"beneficiary_name"`
	Quantity        int       `json:"quantity"`
	Amount          float64   `json:"amount"`
	ReimbursedAt    time.Time `json:"reimbursed_at"`
}

// VenueReimbursementSummary groups the reimbursed bookings of one venue
// with the total paid out to it.
type VenueReimbursementSummary struct {
	VenueID       uuid.UUID          `json:"venue_id"`
	VenueName     string             `json:"venue_name"`
	BookingsCount int                `json:"bookings_count"`
	TotalAmount   float64            `json:"total_amount"`
	Bookings      []ReimbursementRow `json:"bookings"`
}
