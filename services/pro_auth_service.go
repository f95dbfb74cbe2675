package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ProAuthService handles pro user authentication operations
type ProAuthService struct{}

// NewProAuthService creates a new pro auth service
func NewProAuthService() *ProAuthService {
	return &ProAuthService{}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *ProAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *ProAuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 12 characters
func (s *ProAuthService) ValidatePassword(password string) bool {
	return len(password) >= 12
}

// ════════════════════════════════════════════════════════════
// Session Token Management
// ════════════════════════════════════════════════════════════

// GenerateSessionToken generates a cryptographically secure random token
// Returns 64 character hex string (32 bytes)
func (s *ProAuthService) GenerateSessionToken() (string, error) {
	token := make([]byte, 32)
	_, err := rand.Read(token)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(token), nil
}

// HashToken hashes a token using SHA256 for storage in database
func (s *ProAuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// GetSessionExpiration returns the expiration time for a session
// Sessions last 24 hours
func (s *ProAuthService) GetSessionExpiration() time.Time {
	return time.Now().Add(24 * time.Hour)
}

// IsSessionExpired checks if a session has expired
func (s *ProAuthService) IsSessionExpired(expiresAt time.Time) bool {
	return time.Now().After(expiresAt)
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var proAuthService *ProAuthService

// GetProAuthService returns the global pro auth service instance
func GetProAuthService() *ProAuthService {
	if proAuthService == nil {
		proAuthService = NewProAuthService()
	}
	return proAuthService
}

// Convenience functions using global service

// HashProPassword hashes a password using the global service
func HashProPassword(password string) (string, error) {
	return GetProAuthService().HashPassword(password)
}

// VerifyProPassword verifies a password using the global service
func VerifyProPassword(hash, password string) bool {
	return GetProAuthService().VerifyPassword(hash, password)
}

// ValidateProPassword validates password requirements using the global service
func ValidateProPassword(password string) bool {
	return GetProAuthService().ValidatePassword(password)
}

// GenerateProSessionToken generates a token using the global service
func GenerateProSessionToken() (string, error) {
	return GetProAuthService().GenerateSessionToken()
}

// HashProToken hashes a token using the global service
func HashProToken(token string) string {
	return GetProAuthService().HashToken(token)
}
