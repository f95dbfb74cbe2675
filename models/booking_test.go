package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_IsCancellable(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusPending}).IsCancellable())
	assert.True(t, (&Booking{Status: BookingStatusConfirmed}).IsCancellable())

	// Settled or already-cancelled bookings must never be cancelled again,
	// otherwise the stock quantity would be released twice
	assert.False(t, (&Booking{Status: BookingStatusUsed}).IsCancellable())
	assert.False(t, (&Booking{Status: BookingStatusReimbursed}).IsCancellable())
	assert.False(t, (&Booking{Status: BookingStatusCancelled}).IsCancellable())
}

func TestCancellableStatuses(t *testing.T) {
	// The slice drives the SQL status guard on cancellation; it must
	// match IsCancellable exactly
	for _, status := range CancellableStatuses {
		assert.True(t, (&Booking{Status: status}).IsCancellable())
	}
	assert.Len(t, CancellableStatuses, 2)
}
