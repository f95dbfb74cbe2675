package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

// ProUser is a venue manager account on the pro console.
type ProUser struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	FirstName    string     `json:"first_name" gorm:"not null;default:''"`
	LastName     string     `json:"last_name" gorm:"not null;default:''"`
	PhoneNumber  string     `json:"phone_number"`
	PasswordHash string     `json:"-" gorm:""` // Empty for SSO-only accounts
	GoogleID     *string    `json:"-" gorm:"column:google_id;uniqueIndex"`
	OffererID    *uuid.UUID `json:"offerer_id,omitempty" gorm:"type:uuid;index"`
	Offerer      *Offerer   `json:"offerer,omitempty" gorm:"foreignKey:OffererID;references:ID"`
	Status       string     `json:"status" gorm:"not null;index"` // active, suspended
	LastLoginAt  *time.Time `json:"last_login_at"`
	JoinedAt     time.Time  `json:"joined_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (u *ProUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	// Set default status if not provided
	if u.Status == "" {
		u.Status = "active"
	}
	return nil
}

// TableName specifies the table name
func (ProUser) TableName() string {
	return "pro_users"
}

// FullName joins first and last names for display.
func (u *ProUser) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// ════════════════════════════════════════════════════════════
// Request / Response Models
// ════════════════════════════════════════════════════════════

// ProLoginRequest is the request to login
type ProLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProLoginResponse is the login payload (token also set as HTTP cookie)
type ProLoginResponse struct {
	User  ProUser `json:"user"`
	Token string  `json:"token"`
}

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
}

// GoogleUserInfo holds the claims read from a verified Google ID token
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}
