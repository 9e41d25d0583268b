package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	"github.com/KirkDiggler/dream-bot-discord/internal/clients/dashboard"
	"github.com/KirkDiggler/dream-bot-discord/internal/config"
	v2 "github.com/KirkDiggler/dream-bot-discord/internal/discord/v2"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/dream-bot-discord/internal/repositories/editors"
	"github.com/KirkDiggler/dream-bot-discord/internal/services"
	"github.com/KirkDiggler/dream-bot-discord/internal/sprite"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	log.Printf("Dashboard: %s%s", cfg.Dashboard.URL, cfg.Dashboard.PathPrefix)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	httpClient := &http.Client{Timeout: cfg.Dashboard.Timeout}

	dashboardClient, err := dashboard.New(&dashboard.Config{
		BaseURL:    cfg.Dashboard.URL,
		PathPrefix: cfg.Dashboard.PathPrefix,
		HttpClient: httpClient,
	})
	if err != nil {
		log.Fatalf("Failed to create dashboard client: %v", err)
	}

	cat, err := loadCatalog(cfg.CatalogDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	resolver := sprite.NewResolver(sprite.NewCachingProber(sprite.NewHTTPProber(cfg.Sprites.BaseURL, httpClient)))

	// Editor sessions and rate limits live in memory unless Redis is reachable
	repo := editors.NewInMemoryRepository()
	var rateLimit middleware.RateLimitStore = middleware.NewMemoryRateLimitStore()

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory editor sessions")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory editor sessions")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Println("Successfully connected to Redis")

				repo, err = editors.NewRedisRepository(&editors.RedisConfig{
					Client: redisClient,
					TTL:    cfg.Redis.TTL,
				})
				if err != nil {
					log.Fatalf("Failed to create editor repository: %v", err)
				}
				rateLimit = middleware.NewRedisRateLimitStore(redisClient)

				log.Println("Using Redis for editor sessions")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory editor sessions")
	}

	provider, err := services.NewProvider(&services.ProviderConfig{
		DashboardClient:  dashboardClient,
		EditorRepository: repo,
		Catalog:          cat,
		SpriteResolver:   resolver,
	})
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	bot, err := v2.Setup(&v2.Config{
		Service:       provider.EditorService,
		SpriteBaseURL: cfg.Sprites.BaseURL,
		RateLimit:     rateLimit,
	})
	if err != nil {
		log.Fatalf("Failed to set up handlers: %v", err)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	dg.AddHandler(bot.HandleInteraction)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := bot.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

func loadCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.Default()
	}
	log.Printf("Loading catalog from %s", dir)
	return catalog.LoadDir(dir)
}
