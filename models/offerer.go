package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Offerer statuses mirror the moderation lifecycle of the legal entity.
const (
	OffererStatusPending   = "pending"
	OffererStatusValidated = "validated"
	OffererStatusRejected  = "rejected"
)

// Offerer is the legal entity (structure) venues belong to.
type Offerer struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null;index"`
	SIREN      string    `json:"siren" gorm:"column:siren;not null;uniqueIndex"`
	Address    string    `json:"address" gorm:"not null;default:''"`
	PostalCode string    `json:"postal_code" gorm:"not null;default:''"`
	City       string    `json:"city" gorm:"not null;default:''"`
	Status     string    `json:"status" gorm:"not null;default:'pending';check:status IN ('pending', 'validated', 'rejected')"`
	Venues     []Venue   `json:"venues,omitempty" gorm:"foreignKey:OffererID;references:ID"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (o *Offerer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Offerer) TableName() string {
	return "offerers"
}

// OffererStatsResponse is the pro home dashboard payload.
type OffererStatsResponse struct {
	OffererID       uuid.UUID           `json:"offerer_id"`
	VenueCount      int64               `json:"venue_count"`
	OfferCount      int64               `json:"offer_count"`
	PublishedOffers int64               `json:"published_offers"`
	BookingCount    int64               `json:"booking_count"`
	Revenue         float64             `json:"revenue"`
	TopOffers       []OffererStatsOffer `json:"top_offers"`
}

type OffererStatsOffer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BookingCount int64     `json:"booking_count"`
}
