package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminJSONNeverExposesPasswordHash(t *testing.T) {
	admin := &Admin{
		ID:           "9f4c7b40-1f3a-4a8e-9d7c-0f1f2e3d4c5b",
		Email:        "admin@aaeng.com",
		PasswordHash: "$2a$10$secrethash",
		Name:         "Admin",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(admin)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secrethash")
	assert.NotContains(t, string(data), "passwordHash")
	assert.Contains(t, string(data), `"email":"admin@aaeng.com"`)
}

func TestLoginRequestValidate(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		req := &LoginRequest{Email: "  Admin@AAEng.COM ", Password: "pw"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "admin@aaeng.com", req.Email)
	})

	t.Run("rejects missing email", func(t *testing.T) {
		err := (&LoginRequest{Password: "pw"}).Validate()
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		err := (&LoginRequest{Email: "not-an-email", Password: "pw"}).Validate()
		require.Error(t, err)
	})

	t.Run("rejects missing password", func(t *testing.T) {
		err := (&LoginRequest{Email: "admin@aaeng.com"}).Validate()
		require.Error(t, err)
	})
}
