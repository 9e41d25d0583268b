package editors

import (
	"time"

	"github.com/KirkDiggler/dream-bot-discord/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an untouched editor session is kept
const DefaultTTL = 24 * time.Hour

// NewRedis creates a new Redis-backed editor repository
func NewRedis(client redis.UniversalClient) Repository {
	repo, err := NewRedisRepository(&RedisConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		TimeProvider:  &RealTimeProvider{},
		TTL:           DefaultTTL,
	})
	if err != nil {
		// This should never happen with valid configuration
		panic(err)
	}
	return repo
}
