package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(name string, hits *[]string) func(*InteractionContext) (*HandlerResult, error) {
	return func(ctx *InteractionContext) (*HandlerResult, error) {
		*hits = append(*hits, name)
		return &HandlerResult{Response: NewResponse(name)}, nil
	}
}

func TestRouter_Routes(t *testing.T) {
	var hits []string
	router := NewRouter("dream", nil)
	router.Subcommand("login", named("login", &hits))
	router.Component("grid", named("grid", &hits))
	router.Modal("draft", named("draft", &hits))
	handler := router.Build()

	tests := []struct {
		name string
		ctx  *TestInteractionContext
		want string
	}{
		{"subcommand", NewTestInteractionContext().AsCommand("dream", "login"), "login"},
		{"component", NewTestInteractionContext().AsComponent("dream:grid:items"), "grid"},
		{"modal", NewTestInteractionContext().AsModal("dream:draft:encounters", nil), "draft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, handler.CanHandle(tt.ctx.InteractionContext))

			result, err := handler.Handle(tt.ctx.InteractionContext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Response.Content)
		})
	}
}

func TestRouter_IgnoresOtherDomains(t *testing.T) {
	var hits []string
	router := NewRouter("dream", nil)
	router.Component("grid", named("grid", &hits))
	router.Subcommand("login", named("login", &hits))
	handler := router.Build()

	assert.False(t, handler.CanHandle(NewTestInteractionContext().AsComponent("other:grid:items").InteractionContext))
	assert.False(t, handler.CanHandle(NewTestInteractionContext().AsComponent("dream:unknown").InteractionContext))
	assert.False(t, handler.CanHandle(NewTestInteractionContext().AsCommand("other", "login").InteractionContext))
	assert.False(t, handler.CanHandle(NewTestInteractionContext().AsComponent("not-a-custom-id").InteractionContext))
	assert.Empty(t, hits)
}

func TestRouter_Wildcard(t *testing.T) {
	var hits []string
	router := NewRouter("dream", nil)
	router.HandleFunc("component:*", named("any", &hits))
	handler := router.Build()

	ctx := NewTestInteractionContext().AsComponent("dream:whatever:x")
	require.True(t, handler.CanHandle(ctx.InteractionContext))

	_, err := handler.Handle(ctx.InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, []string{"any"}, hits)
}

func TestRouter_MiddlewareWrapsRoutes(t *testing.T) {
	var hits []string
	router := NewRouter("dream", nil)
	router.Use(func(next Handler) Handler {
		return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
			hits = append(hits, "mw")
			return next.Handle(ctx)
		})
	})
	router.Component("grid", named("grid", &hits))

	_, err := router.Build().Handle(NewTestInteractionContext().AsComponent("dream:grid:items").InteractionContext)
	require.NoError(t, err)

	assert.Equal(t, []string{"mw", "grid"}, hits)
}

func TestRouter_Register(t *testing.T) {
	pipeline := NewPipeline()
	router := NewRouter("dream", pipeline)

	router.Register()

	assert.Equal(t, 1, pipeline.HandlerCount())
}

func TestRouter_UnmatchedRouteIsStale(t *testing.T) {
	router := NewRouter("dream", nil)
	router.Component("grid", named("grid", new([]string)))

	_, err := router.Build().Handle(NewTestInteractionContext().AsComponent("dream:gone").InteractionContext)

	msg, ok := UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "That action is no longer available.", msg)
}
