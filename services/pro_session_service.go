package services

import (
	"context"
	"log"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/google/uuid"
)

// ProSessionService handles pro user session operations
type ProSessionService struct{}

// NewProSessionService creates a new session service
func NewProSessionService() *ProSessionService {
	return &ProSessionService{}
}

// CreateSession creates a new pro user session
func (s *ProSessionService) CreateSession(
	ctx context.Context,
	userID uuid.UUID,
	token string,
	ipAddress string,
	userAgent string,
) (*models.ProSession, error) {
	authService := GetProAuthService()
	tokenHash := authService.HashToken(token)

	session := &models.ProSession{
		ID:             uuid.Must(uuid.NewV7()),
		UserID:         userID,
		TokenHash:      tokenHash,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		CreatedAt:      time.Now(),
		LastActivityAt: time.Now(),
		ExpiresAt:      authService.GetSessionExpiration(),
		IsActive:       true,
	}

	if err := config.Gorm.WithContext(ctx).Create(session).Error; err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for user %s", session.ID, userID)
	return session, nil
}

// UpdateSessionActivity updates the last activity timestamp for a session
func (s *ProSessionService) UpdateSessionActivity(
	ctx context.Context,
	tokenHash string,
) error {
	if err := config.Gorm.WithContext(ctx).
		Model(&models.ProSession{}).
		Where("token_hash = ? AND is_active = ?", tokenHash, true).
		Update("last_activity_at", time.Now()).Error; err != nil {
		log.Printf("[session] failed to update session activity: %v", err)
		return err
	}
	return nil
}

// DeactivateSession marks all active sessions for a user as inactive (logout)
func (s *ProSessionService) DeactivateSession(
	ctx context.Context,
	userID uuid.UUID,
) error {
	if err := config.Gorm.WithContext(ctx).
		Model(&models.ProSession{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error; err != nil {
		log.Printf("[session] failed to deactivate session: %v", err)
		return err
	}

	log.Printf("[session] deactivated sessions for user %s", userID)
	return nil
}

// GetActiveSessionsByUser gets all active sessions for a pro user
func (s *ProSessionService) GetActiveSessionsByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.ProSession, error) {
	var sessions []models.ProSession
	if err := config.Gorm.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, time.Now()).
		Find(&sessions).Error; err != nil {
		log.Printf("[session] failed to get active sessions: %v", err)
		return nil, err
	}
	return sessions, nil
}

// CleanupExpiredSessions removes expired sessions (run periodically)
func (s *ProSessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	result := config.Gorm.WithContext(ctx).
		Where("expires_at < ? OR (is_active = ? AND last_activity_at < ?)",
			time.Now(),
			false,
			time.Now().Add(-7*24*time.Hour), // Keep inactive sessions for 7 days
		).
		Delete(&models.ProSession{})

	if result.Error != nil {
		log.Printf("[session] failed to cleanup expired sessions: %v", result.Error)
		return 0, result.Error
	}

	log.Printf("[session] cleaned up %d expired sessions", result.RowsAffected)
	return result.RowsAffected, nil
}

// CountActiveSessions counts total active sessions across all pro users
func (s *ProSessionService) CountActiveSessions(ctx context.Context) (int64, error) {
	var count int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.ProSession{}).
		Where("is_active = ? AND expires_at > ?", true, time.Now()).
		Count(&count).Error; err != nil {
		log.Printf("[session] failed to count active sessions: %v", err)
		return 0, err
	}
	return count, nil
}

// Global instance
var proSessionService *ProSessionService

// GetProSessionService returns the global session service instance
func GetProSessionService() *ProSessionService {
	if proSessionService == nil {
		proSessionService = NewProSessionService()
	}
	return proSessionService
}
