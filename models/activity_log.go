package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Resource types tracked by the action history.
const (
	ResourceTypeOffer   = "offer"
	ResourceTypeStock   = "stock"
	ResourceTypeVenue   = "venue"
	ResourceTypeOfferer = "offerer"
	ResourceTypeBooking = "booking"
	ResourceTypeUser    = "user"
)

// Activity statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ActivityLog represents a pro user action history entry
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:idx_activity_user_date,sort:desc"`
	UserEmail    string         `json:"user_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"`                                             // created_offer, updated_venue, archived_offer, etc.
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"` // offer, stock, venue, offerer, booking
	ResourceID   string         `json:"resource_id" gorm:"not null;index"`
	ResourceName string         `json:"resource_name"` // Human readable: offer name, venue name, etc.
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"`    // success, failed
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_user_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	// Default status to success if not set
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ════════════════════════════════════════════════════════════
// Changes Structure
// ════════════════════════════════════════════════════════════

// ActivityChanges represents the before/after changes
type ActivityChanges struct {
	Before map[string]interface{} `json:"before"`
	After  map[string]interface{} `json:"after"`
}

// MarshalJSON converts ActivityChanges to JSON
func (ac ActivityChanges) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"before": ac.Before,
		"after":  ac.After,
	})
}

// UnmarshalJSON parses JSON into ActivityChanges
func (ac *ActivityChanges) UnmarshalJSON(data []byte) error {
	var m map[string]map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	ac.Before = m["before"]
	ac.After = m["after"]
	return nil
}

// ════════════════════════════════════════════════════════════
// Request/Response Models
// ════════════════════════════════════════════════════════════

// ActivityLogResponse is the response for activity log data
type ActivityLogResponse struct {
	ID           uuid.UUID              `json:"id"`
	UserID       uuid.UUID              `json:"user_id"`
	UserEmail    string                 `json:"user_email"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	ResourceName string                 `json:"resource_name"`
	Changes      map[string]interface{} `json:"changes"`
	Status       string                 `json:"status"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	IPAddress    string                 `json:"ip_address"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ToResponse converts ActivityLog to ActivityLogResponse
func (al *ActivityLog) ToResponse() ActivityLogResponse {
	changes := make(map[string]interface{})
	if al.Changes != nil {
		_ = json.Unmarshal(al.Changes, &changes)
	}

	return ActivityLogResponse{
		ID:           al.ID,
		UserID:       al.UserID,
		UserEmail:    al.UserEmail,
		Action:       al.Action,
		ResourceType: al.ResourceType,
		ResourceID:   al.ResourceID,
		ResourceName: al.ResourceName,
		Changes:      changes,
		Status:       al.Status,
		ErrorMessage: al.ErrorMessage,
		IPAddress:    al.IPAddress,
		CreatedAt:    al.CreatedAt,
	}
}
