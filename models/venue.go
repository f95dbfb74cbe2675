package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Venue is a physical or virtual place offers are attached to.
type Venue struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OffererID  uuid.UUID `json:"offerer_id" gorm:"type:uuid;not null;index"`
	Offerer    *Offerer  `json:"offerer,omitempty" gorm:"foreignKey:OffererID;references:ID"`
	Name       string    `json:"name" gorm:"not null;index"`
	PublicName *string   `json:"public_name,omitempty"`
	Address    string    `json:"address" gorm:"not null;default:''"`
	PostalCode string    `json:"postal_code" gorm:"not null;default:''"`
	City       string    `json:"city" gorm:"not null;default:''"`
	SIRET      *string   `json:"siret,omitempty" gorm:"column:siret;uniqueIndex"`
	IsVirtual  bool      `json:"is_virtual" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Venue) TableName() string {
	return "venues"
}

// DisplayName prefers the public-facing name when one is set.
func (v *Venue) DisplayName() string {
	if v.PublicName != nil && *v.PublicName != "" {
		return *v.PublicName
	}
	return v.Name
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CreateVenueRequest struct {
	OffererID  uuid.UUID `json:"offerer_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	PublicName *string   `json:"public_name"`
	Address    string    `json:"address"`
	PostalCode string    `json:"postal_code"`
	City       string    `json:"city"`
	SIRET      *string   `json:"siret" binding:"omitempty,len=14,numeric"`
	IsVirtual  bool      `json:"is_virtual"`
}

type UpdateVenueRequest struct {
	Name       *string `json:"name"`
	PublicName *string `json:"public_name"`
	Address    *string `json:"address"`
	PostalCode *string `json:"postal_code"`
	City       *string `json:"city"`
}

// VenueListItem feeds filter dropdowns; cached in-memory.
type VenueListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsVirtual bool      `json:"is_virtual"`
}
