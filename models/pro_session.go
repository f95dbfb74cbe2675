package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProSession represents an active pro console session
type ProSession struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	TokenHash      string    `json:"-" gorm:"not null;uniqueIndex"` // Hash of JWT token
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	LastActivityAt time.Time `json:"last_activity_at" gorm:"index"`
	ExpiresAt      time.Time `json:"expires_at" gorm:"index"`
	IsActive       bool      `json:"is_active" gorm:"default:true;index"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *ProSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	// Set default expiry to 24 hours if not set
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = time.Now().Add(24 * time.Hour)
	}
	// Set initial last activity
	if s.LastActivityAt.IsZero() {
		s.LastActivityAt = time.Now()
	}
	return nil
}

// TableName specifies the table name
func (ProSession) TableName() string {
	return "pro_sessions"
}

// IsExpired checks if session has expired
func (s *ProSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
