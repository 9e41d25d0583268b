package sprite_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dream-bot-discord/internal/sprite"
	mocksprite "github.com/KirkDiggler/dream-bot-discord/internal/sprite/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "/sprites/pokemon/normal/25.png", sprite.BasePath(sprite.KindPokemon, "25"))
	assert.Equal(t, "/sprites/pokemon/normal/201-3.png", sprite.SubPath(sprite.KindPokemon, "201", 3))
	assert.Equal(t, "/sprites/items/1.png", sprite.BasePath(sprite.KindItem, "1"))
	assert.Equal(t, "/sprites/trainers/ace_trainer_male.png", sprite.BasePath(sprite.KindTrainer, "ACE_TRAINER_MALE"))
	assert.Equal(t, "/sprites/pokemon/normal/0.png", sprite.DefaultPath(sprite.KindPokemon))
	assert.Equal(t, "/sprites/items/0.png", sprite.DefaultPath(sprite.KindItem))
	assert.Equal(t, "/sprites/trainers/none.png", sprite.DefaultPath(sprite.KindTrainer))
}

func TestResolve_NoSubIDSkipsProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocksprite.NewMockProber(ctrl)
	r := sprite.NewResolver(prober)

	assert.Equal(t, "/sprites/pokemon/normal/25.png", r.ResolveID(context.Background(), sprite.KindPokemon, 25, 0))
}

func TestResolve_SubFormFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocksprite.NewMockProber(ctrl)
	prober.EXPECT().Exists(gomock.Any(), "/sprites/pokemon/normal/201-3.png").Return(true)
	r := sprite.NewResolver(prober)

	assert.Equal(t, "/sprites/pokemon/normal/201-3.png", r.ResolveID(context.Background(), sprite.KindPokemon, 201, 3))
}

func TestResolve_SubFormMissingFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocksprite.NewMockProber(ctrl)
	prober.EXPECT().Exists(gomock.Any(), "/sprites/pokemon/normal/25-1.png").Return(false)
	r := sprite.NewResolver(prober)

	assert.Equal(t, "/sprites/pokemon/normal/25.png", r.ResolveID(context.Background(), sprite.KindPokemon, 25, 1))
}

func TestResolve_CancelledContextFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocksprite.NewMockProber(ctrl)
	r := sprite.NewResolver(prober)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "/sprites/pokemon/normal/201.png", r.ResolveID(ctx, sprite.KindPokemon, 201, 5))
}

func TestExists_NilProber(t *testing.T) {
	r := sprite.NewResolver(nil)
	assert.False(t, r.Exists(context.Background(), "/sprites/items/1.png"))
}
