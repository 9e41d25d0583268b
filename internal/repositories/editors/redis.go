package editors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	internal "github.com/KirkDiggler/dream-bot-discord/internal"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const indexKey = "editors"

func editorKey(id string) string {
	return fmt.Sprintf("editor:%s", id)
}

func userKey(userID string) string {
	return fmt.Sprintf("user:%s:editor", userID)
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	ttl           time.Duration
}

type RedisConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider

	// TTL expires idle editor sessions; zero keeps them forever
	TTL time.Duration
}

func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Client == nil {
		return nil, internal.NewMissingParamError("Client")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
		ttl:           cfg.TTL,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = &RealTimeProvider{}
	}

	return repo, nil
}

func (r *redisRepo) set(ctx context.Context, record *Record) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal editor session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, editorKey(record.ID), string(jsonData), r.ttl)
	pipe.Set(ctx, userKey(record.UserID), record.ID, r.ttl)
	pipe.SAdd(ctx, indexKey, record.ID)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set editor session in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) Create(ctx context.Context, record *Record) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if record.UserID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}
	if record.ID == "" {
		record.ID = r.uuidGenerator.New()
	}

	now := r.timeProvider.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	return r.set(ctx, record)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("editor ID is required")
	}

	jsonData, err := r.client.Get(ctx, editorKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("editor session '%s' not found", id).
				WithMeta("editor_id", id)
		}
		return nil, fmt.Errorf("failed to get editor session from Redis: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal editor session: %w", err)
	}

	return &record, nil
}

func (r *redisRepo) GetByUser(ctx context.Context, userID string) (*Record, error) {
	if userID == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}

	id, err := r.client.Get(ctx, userKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("no editor session for user '%s'", userID).
				WithMeta("user_id", userID)
		}
		return nil, fmt.Errorf("failed to get user editor from Redis: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *redisRepo) Update(ctx context.Context, record *Record) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if record.ID == "" {
		return dnderr.InvalidArgument("editor ID is required")
	}

	record.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, record)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	record, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, editorKey(id))
	pipe.Del(ctx, userKey(record.UserID))
	pipe.SRem(ctx, indexKey, id)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete editor session from Redis: %w", err)
	}

	return nil
}

// List returns every live record, oldest first. Index entries whose record
// has expired are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*Record, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list editor sessions from Redis: %w", err)
	}

	found := make([]*Record, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			record, err := r.Get(gctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get editor session %s: %w", id, err)
			}
			found[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(found))
	for _, record := range found {
		if record != nil {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	return records, nil
}
