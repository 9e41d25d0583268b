//go:build integration

package editors_test

import (
	"context"
	"testing"
	"time"

	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
	"github.com/KirkDiggler/dream-bot-discord/internal/repositories/editors"
	"github.com/KirkDiggler/dream-bot-discord/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := editors.NewRedis(client)
	ctx := context.Background()

	record := &editors.Record{
		UserID:           "user-1",
		DashboardSession: "JSESSIONID=abc",
		State: &profile.State{
			GameVersion: testutils.VersionWhite2,
			Encounters:  []profile.Encounter{testutils.CreateTestEncounter(600, 0)},
			Items:       []profile.Item{},
			Visitors:    []profile.Visitor{testutils.CreateTestVisitor("Ash")},
		},
	}
	require.NoError(t, repo.Create(ctx, record))

	got, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, "Ash", got.State.Visitors[0].Name)
	assert.NotNil(t, got.State.Items)

	ttl, err := client.TTL(ctx, "editor:"+record.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 23*time.Hour)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, record.ID))
	_, err = repo.GetByUser(ctx, "user-1")
	assert.True(t, dnderr.IsNotFound(err))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
