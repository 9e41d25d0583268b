package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Redis     RedisConfig
	Dashboard DashboardConfig
	Sprites   SpriteConfig

	// CatalogDir holds species.json, moves.json, items.json and regions.json.
	// The embedded tables are used when empty.
	CatalogDir string `env:"CATALOG_DIR"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN,required,notEmpty"`
	AppID   string `env:"DISCORD_APP_ID,required,notEmpty"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. Editor sessions are kept
// in memory when URL is empty.
type RedisConfig struct {
	URL string        `env:"REDIS_URL"`
	TTL time.Duration `env:"EDITOR_TTL" envDefault:"24h"`
}

// DashboardConfig locates the dashboard REST API
type DashboardConfig struct {
	URL        string        `env:"DASHBOARD_URL,required,notEmpty"`
	PathPrefix string        `env:"DASHBOARD_PATH_PREFIX" envDefault:"/dashboard"`
	Timeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

// SpriteConfig locates the sprite host
type SpriteConfig struct {
	// BaseURL defaults to the dashboard URL
	BaseURL string `env:"SPRITE_BASE_URL"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Sprites.BaseURL == "" {
		cfg.Sprites.BaseURL = cfg.Dashboard.URL
	}
	if cfg.Dashboard.Timeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	return cfg, nil
}
