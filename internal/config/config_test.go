package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "distribution-api", cfg.App.Name)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 5, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 5*time.Hour, cfg.Auth.TokenTTL())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "24")
	t.Setenv("APP_PORT", "4000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
}

func TestTokenTTLFallsBackWhenNonPositive(t *testing.T) {
	cfg := AuthConfig{JWTSecret: "x", TokenTTLHours: 0}
	assert.Equal(t, 5*time.Hour, cfg.TokenTTL())
}
