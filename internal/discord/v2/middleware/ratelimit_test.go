package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/core"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	counts map[string]int
	err    error
}

func (f *fakeStore) Increment(_ context.Context, key string, _ time.Duration) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[key]++
	return f.counts[key], nil
}

func okHandler(calls *int) core.Handler {
	return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		*calls++
		return &core.HandlerResult{Response: core.NewResponse("ok")}, nil
	})
}

func TestRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	var calls int
	store := &fakeStore{counts: map[string]int{}}
	handler := UserRateLimitMiddleware(2, time.Minute, store)(okHandler(&calls))

	ctx := core.NewTestInteractionContext().WithUserID("u1").AsCommand("dream", "profile")
	for range 3 {
		_, err := handler.Handle(ctx.InteractionContext)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, calls)

	result, err := handler.Handle(ctx.InteractionContext)
	require.NoError(t, err)
	assert.True(t, result.Response.Ephemeral)
	assert.Contains(t, result.Response.Content, "too fast")
}

func TestRateLimitMiddleware_PerUser(t *testing.T) {
	var calls int
	store := &fakeStore{counts: map[string]int{}}
	handler := UserRateLimitMiddleware(1, time.Minute, store)(okHandler(&calls))

	_, err := handler.Handle(core.NewTestInteractionContext().WithUserID("u1").AsCommand("dream").InteractionContext)
	require.NoError(t, err)
	_, err = handler.Handle(core.NewTestInteractionContext().WithUserID("u2").AsCommand("dream").InteractionContext)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestRateLimitMiddleware_StoreErrorLetsRequestThrough(t *testing.T) {
	var calls int
	handler := UserRateLimitMiddleware(1, time.Minute, &fakeStore{err: errors.New("down")})(okHandler(&calls))

	ctx := core.NewTestInteractionContext().AsCommand("dream")
	for range 3 {
		_, err := handler.Handle(ctx.InteractionContext)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, calls)
}

func TestMemoryRateLimitStore_WindowResets(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore()
	store.now = func() time.Time { return now }

	count, err := store.Increment(context.Background(), "u1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, _ = store.Increment(context.Background(), "u1", time.Minute)
	assert.Equal(t, 2, count)

	now = now.Add(time.Minute)
	count, _ = store.Increment(context.Background(), "u1", time.Minute)
	assert.Equal(t, 1, count)
}

func TestMemoryRateLimitStore_SweepsExpiredBuckets(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore()
	store.now = func() time.Time { return now }

	_, _ = store.Increment(context.Background(), "u1", time.Second)
	now = now.Add(2 * time.Minute)
	_, _ = store.Increment(context.Background(), "u2", time.Second)

	assert.Len(t, store.buckets, 1)
	assert.Contains(t, store.buckets, "u2")
}

func TestRedisRateLimitStore_Increment(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisRateLimitStore(client)

	mock.ExpectIncr("ratelimit:u1").SetVal(3)
	mock.ExpectExpireNX("ratelimit:u1", time.Minute).SetVal(false)

	count, err := store.Increment(context.Background(), "u1", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRateLimitStore_Error(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisRateLimitStore(client)

	mock.ExpectIncr("ratelimit:u1").SetErr(errors.New("connection refused"))
	mock.ExpectExpireNX("ratelimit:u1", time.Minute).SetVal(true)

	_, err := store.Increment(context.Background(), "u1", time.Minute)
	assert.Error(t, err)
}
