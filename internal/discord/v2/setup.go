package v2

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/routers"
	"github.com/KirkDiggler/dream-bot-discord/internal/services/editor"
	"github.com/bwmarrin/discordgo"
)

// Config wires the interaction pipeline
type Config struct {
	Service       editor.Service // Required
	SpriteBaseURL string

	// RateLimit keeps per-user request counts, in memory when nil
	RateLimit middleware.RateLimitStore

	// DeferAfter overrides how long a handler may run before the
	// interaction is acknowledged
	DeferAfter time.Duration
}

// Bot is the assembled pipeline with its routers
type Bot struct {
	Pipeline *core.Pipeline
	Dream    *routers.DreamRouter
}

// Setup builds the pipeline. Global middleware must be in place before
// routers register, so the order here matters.
func Setup(cfg *Config) (*Bot, error) {
	if cfg == nil || cfg.Service == nil {
		return nil, errors.New("editor service is required")
	}

	deferCfg := middleware.DefaultDeferConfig()
	if cfg.DeferAfter > 0 {
		deferCfg.DeferAfter = cfg.DeferAfter
	}
	// Modals have to be the first answer to an interaction
	deferCfg.SkipActions = []string{builders.ActionText, builders.ActionLevels}

	pipeline := core.NewPipeline()
	pipeline.Use(
		middleware.RecoveryMiddleware(),
		middleware.LoggingMiddleware(nil),
		middleware.ErrorMiddleware(nil),
		middleware.DeferMiddleware(deferCfg),
	)

	dream, err := routers.NewDreamRouter(&routers.DreamRouterConfig{
		Pipeline:      pipeline,
		Service:       cfg.Service,
		SpriteBaseURL: cfg.SpriteBaseURL,
		RateLimit:     cfg.RateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dream router: %w", err)
	}

	return &Bot{
		Pipeline: pipeline,
		Dream:    dream,
	}, nil
}

// HandleInteraction is the discordgo handler for every interaction
func (b *Bot) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.Pipeline.Execute(context.Background(), s, i); err != nil {
		log.Printf("[Discord] Failed to answer interaction %s: %v", i.ID, err)
	}
}

// CommandCreator creates application commands
type CommandCreator interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// RegisterCommands creates the bot's slash commands. An empty guildID
// registers them globally.
func (b *Bot) RegisterCommands(s CommandCreator, appID, guildID string) error {
	for _, cmd := range b.Dream.Commands() {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}
	return nil
}
