package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("DASHBOARD_URL", "https://dream.example.test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Empty(t, cfg.Discord.GuildID)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, "/dashboard", cfg.Dashboard.PathPrefix)
	assert.Equal(t, 10*time.Second, cfg.Dashboard.Timeout)
	assert.Equal(t, "https://dream.example.test", cfg.Sprites.BaseURL)
	assert.Empty(t, cfg.CatalogDir)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("SPRITE_BASE_URL", "https://sprites.example.test")
	t.Setenv("CATALOG_DIR", "/data/catalog")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, 3*time.Second, cfg.Dashboard.Timeout)
	assert.Equal(t, "https://sprites.example.test", cfg.Sprites.BaseURL)
	assert.Equal(t, "/data/catalog", cfg.CatalogDir)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "")
	t.Setenv("DASHBOARD_URL", "https://dream.example.test")

	_, err := Load()
	assert.ErrorContains(t, err, "DISCORD_APP_ID")
}

func TestLoad_BadDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env:")
}
