package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ResepMakanan", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.EnableCompression)

	assert.Equal(t, "gemini-3-flash-preview", cfg.AI.Model)
	assert.Equal(t, 0.7, cfg.AI.Temperature)
	assert.Equal(t, 0.95, cfg.AI.TopP)

	assert.NotEmpty(t, cfg.Chat.Greeting)
	assert.Equal(t, 3, cfg.Catalog.RelatedLimit)
	assert.Equal(t, 5, cfg.Catalog.FeaturedLimit)
	assert.Contains(t, cfg.Catalog.FallbackImageURL, "photo-1546069901-ba9599a7e63c")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RESEPMAKANAN_SERVER_PORT", "9090")
	t.Setenv("RESEPMAKANAN_APP_ENVIRONMENT", "production")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	t.Run("missing app name", func(t *testing.T) {
		cfg := base()
		cfg.App.Name = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())

		cfg.Server.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := base()
		cfg.AI.Temperature = 2.5
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative catalog limits", func(t *testing.T) {
		cfg := base()
		cfg.Catalog.RelatedLimit = -1
		assert.Error(t, cfg.Validate())
	})
}
