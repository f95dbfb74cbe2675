package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses. A booking moves confirmed → used → reimbursed, or is
// cancelled; pending is the adage prebooking state awaiting the institution.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusUsed       = "used"
	BookingStatusCancelled  = "cancelled"
	BookingStatusReimbursed = "reimbursed"
)

// Booking is a beneficiary's claim on a stock.
type Booking struct {
	ID                   uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	StockID              uuid.UUID  `json:"stock_id" gorm:"type:uuid;not null;index"`
	Stock                *Stock     `json:"stock,omitempty" gorm:"foreignKey:StockID;references:ID"`
	Token                string     `json:"token" gorm:"not null;uniqueIndex"`
	BeneficiaryEmail     string     `json:"beneficiary_email" gorm:"not null;index"`
	BeneficiaryFirstName string     `json:"beneficiary_first_name" gorm:"not null;default:''"`
	BeneficiaryLastName  string     `json:"beneficiary_last_name" gorm:"not null;default:''"`
	Quantity             int        `json:"quantity" gorm:"not null;default:1;check:quantity > 0"`
	Amount               float64    `json:"amount" gorm:"type:numeric(10,2);not null"`
	Status               string     `json:"status" gorm:"not null;default:'confirmed';check:status IN ('pending', 'confirmed', 'used', 'cancelled', 'reimbursed');index"`
	UsedAt               *time.Time `json:"used_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt            time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// CancellableStatuses are the statuses a booking may be cancelled from.
// Used and reimbursed bookings are settled; cancelled ones stay cancelled.
var CancellableStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

// IsCancellable reports whether the booking can still be cancelled
func (b *Booking) IsCancellable() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// BookingListRow is one line of the pro bookings screen and of the
// CSV/PDF exports.
type BookingListRow struct {
	ID                uuid.UUID  `json:"id"`
	Token             string     `json:"token"`
	OfferID           uuid.UUID  `json:"offer_id"`
	OfferName         string     `json:"offer_name"`
	VenueName         string     `json:"venue_name"`
	BeneficiaryEmail  string     `json:"beneficiary_email"`
	BeneficiaryName   string     `json:"beneficiary_name"`
	Quantity          int        `json:"quantity"`
	Amount            float64    `json:"amount"`
	Status            string     `json:"status"`
	BeginningDatetime *time.Time `json:"beginning_datetime,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// PrebookCollectiveOfferRequest is the adage prebooking payload.
type PrebookCollectiveOfferRequest struct {
	TeacherEmail     string `json:"teacher_email" binding:"required,email"`
	TeacherFirstName string `json:"teacher_first_name" binding:"required"`
	TeacherLastName  string `json:"teacher_last_name" binding:"required"`
}
