package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProAuthService_HashAndVerifyPassword(t *testing.T) {
	svc := NewProAuthService()

	hash, err := svc.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hash)

	assert.True(t, svc.VerifyPassword(hash, "correct-horse-battery"))
	assert.False(t, svc.VerifyPassword(hash, "wrong-password"))
	assert.False(t, svc.VerifyPassword("not-a-bcrypt-hash", "correct-horse-battery"))
}

func TestProAuthService_ValidatePassword(t *testing.T) {
	svc := NewProAuthService()

	assert.False(t, svc.ValidatePassword(""))
	assert.False(t, svc.ValidatePassword("short"))
	assert.False(t, svc.ValidatePassword("elevenchars"))
	assert.True(t, svc.ValidatePassword("twelve-chars"))
	assert.True(t, svc.ValidatePassword("a-much-longer-passphrase"))
}

func TestProAuthService_GenerateSessionToken(t *testing.T) {
	svc := NewProAuthService()

	token1, err := svc.GenerateSessionToken()
	require.NoError(t, err)
	assert.Len(t, token1, 64)

	token2, err := svc.GenerateSessionToken()
	require.NoError(t, err)
	assert.NotEqual(t, token1, token2)
}

func TestProAuthService_HashToken(t *testing.T) {
	svc := NewProAuthService()

	hash := svc.HashToken("some-token")
	assert.Len(t, hash, 64)

	// Deterministic, unlike the password hash
	assert.Equal(t, hash, svc.HashToken("some-token"))
	assert.NotEqual(t, hash, svc.HashToken("other-token"))
}

func TestProAuthService_SessionExpiration(t *testing.T) {
	svc := NewProAuthService()

	expiresAt := svc.GetSessionExpiration()
	assert.True(t, expiresAt.After(time.Now().Add(23*time.Hour)))
	assert.False(t, svc.IsSessionExpired(expiresAt))

	assert.True(t, svc.IsSessionExpired(time.Now().Add(-time.Minute)))
}
