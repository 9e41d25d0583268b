package services

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	"github.com/KirkDiggler/dream-bot-discord/internal/clients/dashboard"
	"github.com/KirkDiggler/dream-bot-discord/internal/repositories/editors"
	"github.com/KirkDiggler/dream-bot-discord/internal/services/editor"
	"github.com/KirkDiggler/dream-bot-discord/internal/sprite"
)

// Provider holds all service instances
type Provider struct {
	EditorService editor.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DashboardClient  dashboard.Client // Required
	EditorRepository editors.Repository
	Catalog          *catalog.Catalog
	SpriteResolver   *sprite.Resolver
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil || cfg.DashboardClient == nil {
		return nil, errors.New("dashboard client is required")
	}

	// Use in-memory repository if none provided
	repo := cfg.EditorRepository
	if repo == nil {
		repo = editors.NewInMemoryRepository()
	}

	cat := cfg.Catalog
	if cat == nil {
		var err error
		cat, err = catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	return &Provider{
		EditorService: editor.NewService(&editor.ServiceConfig{
			Client:     cfg.DashboardClient,
			Repository: repo,
			Catalog:    cat,
			Resolver:   cfg.SpriteResolver,
		}),
	}, nil
}
