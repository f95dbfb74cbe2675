package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Enums
// ═══════════════════════════════════════════════════════════

// OfferKind discriminates the three offer shapes. Handlers and the wizard
// navigator switch exhaustively on it instead of probing optional fields.
type OfferKind string

const (
	OfferKindIndividual         OfferKind = "individual"
	OfferKindCollectiveBookable OfferKind = "collective-bookable"
	OfferKindCollectiveTemplate OfferKind = "collective-template"
)

// IsCollective reports whether the kind is one of the two collective shapes.
func (k OfferKind) IsCollective() bool {
	return k == OfferKindCollectiveBookable || k == OfferKindCollectiveTemplate
}

// IsTemplate reports whether the kind is the showcase-only collective shape.
func (k OfferKind) IsTemplate() bool {
	return k == OfferKindCollectiveTemplate
}

// Valid reports whether k is one of the three known kinds.
func (k OfferKind) Valid() bool {
	switch k {
	case OfferKindIndividual, OfferKindCollectiveBookable, OfferKindCollectiveTemplate:
		return true
	}
	return false
}

// OfferStatus covers both the raw backend statuses persisted on the row
// (DRAFT, PENDING, REJECTED, ACTIVE) and the derived display statuses
// (INACTIVE, SOLD_OUT, EXPIRED, ARCHIVED) computed by the offerstatus
// package. The derived values are never stored.
type OfferStatus string

const (
	StatusDraft    OfferStatus = "DRAFT"
	StatusPending  OfferStatus = "PENDING"
	StatusRejected OfferStatus = "REJECTED"
	StatusActive   OfferStatus = "ACTIVE"
	StatusInactive OfferStatus = "INACTIVE"
	StatusSoldOut  OfferStatus = "SOLD_OUT"
	StatusExpired  OfferStatus = "EXPIRED"
	StatusArchived OfferStatus = "ARCHIVED"
)

// Creation modes (list filter values).
const (
	CreationModeManual   = "manual"
	CreationModeImported = "imported"
)

// ═══════════════════════════════════════════════════════════
// Main Offer Model (GORM)
// ═══════════════════════════════════════════════════════════

type Offer struct {
	ID           uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string      `json:"name" gorm:"not null;index"`
	Description  string      `json:"description" gorm:"not null;default:''"`
	Kind         OfferKind   `json:"kind" gorm:"not null;check:kind IN ('individual', 'collective-bookable', 'collective-template');index"`
	RawStatus    OfferStatus `json:"raw_status" gorm:"not null;default:'DRAFT';check:raw_status IN ('DRAFT', 'PENDING', 'REJECTED', 'ACTIVE');index"`
	IsActive     bool        `json:"is_active" gorm:"not null;default:false;index"`
	IsEditable   bool        `json:"is_editable" gorm:"not null;default:true"`
	ArchivedAt   *time.Time  `json:"archived_at,omitempty"`
	CategoryID   string      `json:"category_id" gorm:"not null;default:'';index"`
	CreationMode string      `json:"creation_mode" gorm:"not null;default:'manual';check:creation_mode IN ('manual', 'imported')"`
	BookingEmail *string     `json:"booking_email,omitempty"`
	ThumbURL     *string     `json:"thumb_url,omitempty"`
	VenueID      uuid.UUID   `json:"venue_id" gorm:"type:uuid;not null;index"`
	Venue        *Venue      `json:"venue,omitempty" gorm:"foreignKey:VenueID;references:ID"`
	Stocks       []Stock     `json:"stocks" gorm:"foreignKey:OfferID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Offer) TableName() string {
	return "offers"
}

// IsArchived reports whether the offer has been archived. Archival is
// terminal: an archived offer never leaves that state.
func (o *Offer) IsArchived() bool {
	return o.ArchivedAt != nil
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CreateOfferRequest struct {
	Name         string    `json:"name" binding:"required" example:"Visite guidée du musée"`
	Description  string    `json:"description" example:"Une visite d'une heure"`
	Kind         OfferKind `json:"kind" binding:"required,oneof=individual collective-bookable collective-template"`
	CategoryID   string    `json:"category_id" binding:"required" example:"MUSEE"`
	VenueID      uuid.UUID `json:"venue_id" binding:"required"`
	BookingEmail *string   `json:"booking_email" binding:"omitempty,email"`
	// Template collective offer this one is duplicated from, if any.
	RequestID *string `json:"request_id"`
}

type UpdateOfferRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	CategoryID   *string `json:"category_id"`
	BookingEmail *string `json:"booking_email" binding:"omitempty,email"`
	IsActive     *bool   `json:"is_active"`
}

type UpdateOffersActiveStatusRequest struct {
	OfferIDs []uuid.UUID `json:"offer_ids" binding:"required,min=1"`
	IsActive bool        `json:"is_active"`
}

type ArchiveOffersRequest struct {
	OfferIDs []uuid.UUID `json:"offer_ids" binding:"required,min=1"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// OfferListRow is a single row of the pro list screen. Status carries the
// resolved display status, not the raw one.
type OfferListRow struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Kind      OfferKind   `json:"kind"`
	Status    OfferStatus `json:"status"`
	IsActive  bool        `json:"is_active"`
	VenueName string      `json:"venue_name"`
	StockSize int         `json:"stock_size"`
	ThumbURL  *string     `json:"thumb_url,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type OfferResponse struct {
	Offer
	Status OfferStatus `json:"status"`
}

type OfferStatsResponse struct {
	Total      int64 `json:"total"`
	Draft      int64 `json:"draft"`
	Pending    int64 `json:"pending"`
	Rejected   int64 `json:"rejected"`
	Active     int64 `json:"active"`
	Inactive   int64 `json:"inactive"`
	SoldOut    int64 `json:"sold_out"`
	Expired    int64 `json:"expired"`
	Archived   int64 `json:"archived"`
	Individual int64 `json:"individual"`
	Collective int64 `json:"collective"`
}
