// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelcleo/storefront/internal/config"
	"github.com/raphaelcleo/storefront/internal/utils"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	utils.SetJWTSecret("test-secret")

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTL:      1,
			AdminUsername: "admin",
			AdminPassword: "tajne-heslo",
		},
	}

	svc, err := NewAuthService(cfg)
	require.NoError(t, err)
	return svc
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.Login(&LoginRequest{Username: "admin", Password: "tajne-heslo"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(&LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginRequest{Username: "root", Password: "tajne-heslo"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginValidatesRequest(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(&LoginRequest{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
