package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStock_IsUnlimited(t *testing.T) {
	qty := 5
	assert.True(t, (&Stock{}).IsUnlimited())
	assert.False(t, (&Stock{RemainingQuantity: &qty}).IsUnlimited())
}

func TestStock_IsSoldOut(t *testing.T) {
	zero := 0
	one := 1

	assert.True(t, (&Stock{RemainingQuantity: &zero}).IsSoldOut())
	assert.False(t, (&Stock{RemainingQuantity: &one}).IsSoldOut())

	// An unlimited stock is never sold out
	assert.False(t, (&Stock{}).IsSoldOut())
}

func TestStock_HasBookingLimitPassed(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&Stock{BookingLimitDatetime: &past}).HasBookingLimitPassed(now))
	assert.False(t, (&Stock{BookingLimitDatetime: &future}).HasBookingLimitPassed(now))

	// No limit means the booking window never closes
	assert.False(t, (&Stock{}).HasBookingLimitPassed(now))
}
