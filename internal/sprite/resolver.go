// Package sprite derives sprite image paths and falls back to the base image
// when a form-specific sprite does not exist.
package sprite

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

//go:generate mockgen -destination=mock/mock_prober.go -package=mocksprite -source=resolver.go Prober

// Kind selects the sprite family
type Kind string

const (
	KindPokemon Kind = "pokemon"
	KindItem    Kind = "item"
	KindTrainer Kind = "trainer"
)

const (
	pokemonBase = "/sprites/pokemon/normal/"
	itemBase    = "/sprites/items/"
	trainerBase = "/sprites/trainers/"
)

// Prober checks whether an asset exists. Implementations must treat any
// failure to reach the asset as "does not exist".
type Prober interface {
	Exists(ctx context.Context, path string) bool
}

// Resolver builds sprite paths
type Resolver struct {
	prober Prober
}

// NewResolver creates a resolver backed by the given prober
func NewResolver(prober Prober) *Resolver {
	return &Resolver{prober: prober}
}

// BasePath is the sprite path for an id without any sub-form
func BasePath(kind Kind, id string) string {
	switch kind {
	case KindItem:
		return itemBase + id + ".png"
	case KindTrainer:
		return trainerBase + strings.ToLower(id) + ".png"
	default:
		return pokemonBase + id + ".png"
	}
}

// SubPath is the candidate path for a sub-form, e.g. /sprites/pokemon/normal/201-3.png
func SubPath(kind Kind, id string, subID int) string {
	return BasePath(kind, fmt.Sprintf("%s-%d", id, subID))
}

// DefaultPath is the placeholder shown for empty slots and missing assets
func DefaultPath(kind Kind) string {
	if kind == KindTrainer {
		return BasePath(kind, "none")
	}
	return BasePath(kind, "0")
}

// Resolve returns the sub-form sprite when subID is nonzero and the probe
// finds it, otherwise the base sprite. It never fails; whether the base
// sprite itself exists is for the caller to decide via Exists.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, id string, subID int) string {
	base := BasePath(kind, id)
	if subID == 0 {
		return base
	}

	candidate := SubPath(kind, id, subID)
	if r.Exists(ctx, candidate) {
		return candidate
	}
	return base
}

// ResolveID is Resolve for numeric ids
func (r *Resolver) ResolveID(ctx context.Context, kind Kind, id, subID int) string {
	return r.Resolve(ctx, kind, strconv.Itoa(id), subID)
}

// Exists probes a path. A nil prober or a cancelled context counts as a miss.
func (r *Resolver) Exists(ctx context.Context, path string) bool {
	if r == nil || r.prober == nil || ctx.Err() != nil {
		return false
	}
	return r.prober.Exists(ctx, path)
}
