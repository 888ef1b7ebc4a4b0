package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_MODE", ModeLocal)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
}

func TestLoadPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORE_MODE", ModePostgres)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("STORE_MODE", "redis")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_MODE")
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("STORE_MODE", ModePostgres)
	t.Setenv("DATABASE_URL", "postgres://localhost/shop")
	t.Setenv("APP_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://localhost/shop", cfg.DatabaseURL)
}
