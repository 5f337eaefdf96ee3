package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/school")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.False(t, cfg.IsProduction)
		assert.Zero(t, cfg.DBMaxConns)
	})

	t.Run("Missing DSN", func(t *testing.T) {
		t.Setenv("DB_DSN", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Prod Environment", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/school")
		t.Setenv("APP_ENV", "prod")
		t.Setenv("PROD_ORIGINS", "https://portal.example.edu")

		cfg, err := Load()
		require.NoError(t, err)

		assert.True(t, cfg.IsProduction)
		assert.Equal(t, "https://portal.example.edu", cfg.ProdOrigins)
	})

	t.Run("Invalid Max Conns", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/school")
		t.Setenv("DB_MAX_CONNS", "lots")

		_, err := Load()
		assert.Error(t, err)
	})
}
