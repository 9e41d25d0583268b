package sprite_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/KirkDiggler/dream-bot-discord/internal/sprite"
	mocksprite "github.com/KirkDiggler/dream-bot-discord/internal/sprite/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHTTPProber_Exists(t *testing.T) {
	var method atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method.Store(r.Method)
		if r.URL.Path == "/sprites/pokemon/normal/201-3.png" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	p := sprite.NewHTTPProber(server.URL+"/", server.Client())

	assert.True(t, p.Exists(context.Background(), "/sprites/pokemon/normal/201-3.png"))
	assert.Equal(t, http.MethodHead, method.Load())
	assert.False(t, p.Exists(context.Background(), "/sprites/pokemon/normal/25-1.png"))
	assert.Equal(t, server.URL+"/sprites/items/1.png", p.URL("/sprites/items/1.png"))
}

func TestHTTPProber_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	p := sprite.NewHTTPProber(url, nil)

	assert.False(t, p.Exists(context.Background(), "/sprites/items/1.png"))
}

func TestHTTPProber_Check(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/found.png":
			w.WriteHeader(http.StatusOK)
		case "/gone.png":
			w.WriteHeader(http.StatusGone)
		case "/missing.png":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer server.Close()

	p := sprite.NewHTTPProber(server.URL, server.Client())
	ctx := context.Background()

	assert.Equal(t, sprite.Found, p.Check(ctx, "/found.png"))
	assert.Equal(t, sprite.Missing, p.Check(ctx, "/gone.png"))
	assert.Equal(t, sprite.Missing, p.Check(ctx, "/missing.png"))
	assert.Equal(t, sprite.Unknown, p.Check(ctx, "/busy.png"))
}

func TestCachingProber_RetriesAfterOutage(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resolver := sprite.NewResolver(sprite.NewCachingProber(sprite.NewHTTPProber(server.URL, server.Client())))
	ctx := context.Background()

	assert.Equal(t, "/sprites/pokemon/normal/201.png", resolver.ResolveID(ctx, sprite.KindPokemon, 201, 3))
	assert.Equal(t, "/sprites/pokemon/normal/201-3.png", resolver.ResolveID(ctx, sprite.KindPokemon, 201, 3))
	assert.Equal(t, "/sprites/pokemon/normal/201-3.png", resolver.ResolveID(ctx, sprite.KindPokemon, 201, 3))
	assert.Equal(t, int32(2), calls.Load())
}

func TestCachingProber_ProbesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocksprite.NewMockProber(ctrl)
	next.EXPECT().Exists(gomock.Any(), "/a.png").Return(true).Times(1)
	next.EXPECT().Exists(gomock.Any(), "/b.png").Return(false).Times(1)

	p := sprite.NewCachingProber(next)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, p.Exists(ctx, "/a.png"))
		assert.False(t, p.Exists(ctx, "/b.png"))
	}
}
