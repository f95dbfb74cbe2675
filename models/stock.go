package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock is a priced, quantity-bounded inventory unit owned by exactly one
// offer (destroyed with it). RemainingQuantity nil means unlimited.
type Stock struct {
	ID                   uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OfferID              uuid.UUID  `json:"offer_id" gorm:"type:uuid;not null;index"`
	Price                float64    `json:"price" gorm:"type:numeric(10,2);not null;check:price >= 0"`
	RemainingQuantity    *int       `json:"remaining_quantity" gorm:"check:remaining_quantity IS NULL OR remaining_quantity >= 0"`
	BookingLimitDatetime *time.Time `json:"booking_limit_datetime"`
	BeginningDatetime    *time.Time `json:"beginning_datetime"`
	CreatedAt            time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Stock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Stock) TableName() string {
	return "stocks"
}

// IsUnlimited reports whether the stock has no quantity bound.
func (s *Stock) IsUnlimited() bool {
	return s.RemainingQuantity == nil
}

// IsSoldOut reports whether the stock has exactly zero units left. An
// unlimited stock is never sold out.
func (s *Stock) IsSoldOut() bool {
	return s.RemainingQuantity != nil && *s.RemainingQuantity == 0
}

// HasBookingLimitPassed reports whether the booking window closed before
// now. A stock without a limit never expires.
func (s *Stock) HasBookingLimitPassed(now time.Time) bool {
	return s.BookingLimitDatetime != nil && s.BookingLimitDatetime.Before(now)
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type UpsertStockRequest struct {
	ID                   *uuid.UUID `json:"id"`
	Price                float64    `json:"price" binding:"min=0"`
	RemainingQuantity    *int       `json:"remaining_quantity" binding:"omitempty,min=0"`
	BookingLimitDatetime *time.Time `json:"booking_limit_datetime"`
	BeginningDatetime    *time.Time `json:"beginning_datetime"`
}

type UpsertStocksRequest struct {
	Stocks []UpsertStockRequest `json:"stocks" binding:"required,min=1,dive"`
}
