package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SCRIBE_DB_DSN", "postgres://localhost/scribe?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("SCRIBE_DB_DSN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SCRIBE_DB_DSN", "postgres://localhost/scribe?sslmode=disable")
	t.Setenv("SCRIBE_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("SCRIBE_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("SCRIBE_DB_MAX_OPEN_CONNS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)

	sc := cfg.StoreConfig()
	assert.Equal(t, cfg.DatabaseDSN, sc.DSN)
	assert.Equal(t, 25, sc.MaxOpenConns)
}
