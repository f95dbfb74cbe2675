package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.Must(uuid.NewV7())
	token, err := GenerateJWT(userID, "pro@example.com", "Jeanne Dupont")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "pro@example.com", claims.Email)
	assert.Equal(t, "Jeanne Dupont", claims.Name)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")

	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "pro@example.com", "Jeanne")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(uuid.Must(uuid.NewV7()), "pro@example.com", "Jeanne")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing prefix", header: "abc.def.ghi", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
