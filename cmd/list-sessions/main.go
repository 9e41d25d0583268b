package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dream-bot-discord/internal/repositories/editors"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := editors.NewRedis(client)

	records, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list editor sessions: %v", err)
	}

	fmt.Printf("Found %d editor sessions:\n", len(records))
	for _, r := range records {
		version := "unknown"
		if r.State != nil && r.State.GameVersion != "" {
			version = r.State.GameVersion
		}
		fmt.Printf("  %s user=%s game=%s updated=%s\n",
			r.ID, r.UserID, version, r.UpdatedAt.Format(time.RFC3339))
	}
}
