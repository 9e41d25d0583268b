package profile

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	"github.com/KirkDiggler/dream-bot-discord/internal/slots"
	"github.com/KirkDiggler/dream-bot-discord/internal/sprite"
)

type renderer struct {
	catalog  *catalog.Catalog
	resolver *sprite.Resolver
}

func (r *renderer) encounter(ctx context.Context, _ int, e Encounter, ok bool) slots.Cell {
	if !ok {
		return slots.Cell{Sprite: sprite.DefaultPath(sprite.KindPokemon)}
	}

	cell := slots.Cell{
		Sprite:  r.resolver.ResolveID(ctx, sprite.KindPokemon, e.Species, e.Form),
		Label:   r.catalog.SpeciesName(e.Species),
		Caption: r.catalog.MoveName(e.Move),
	}
	if s, found := r.catalog.Species(e.Species); found && s.HasForms() {
		cell.Label = fmt.Sprintf("%s (%s)", s.Name, s.FormName(e.Form))
	}
	return cell
}

func (r *renderer) item(ctx context.Context, _ int, item Item, ok bool) slots.Cell {
	if !ok {
		return slots.Cell{Sprite: sprite.DefaultPath(sprite.KindItem)}
	}

	path := sprite.BasePath(sprite.KindItem, fmt.Sprint(item.ID))
	if !r.resolver.Exists(ctx, path) {
		path = sprite.DefaultPath(sprite.KindItem)
	}
	return slots.Cell{
		Sprite:  path,
		Label:   r.catalog.ItemName(item.ID),
		Caption: fmt.Sprintf("x%d", item.Quantity),
	}
}

func (r *renderer) visitor(ctx context.Context, _ int, v Visitor, ok bool) slots.Cell {
	if !ok {
		return slots.Cell{Sprite: sprite.DefaultPath(sprite.KindTrainer)}
	}

	path := sprite.BasePath(sprite.KindTrainer, string(v.Type))
	if !r.resolver.Exists(ctx, path) {
		path = sprite.DefaultPath(sprite.KindTrainer)
	}
	return slots.Cell{
		Sprite:  path,
		Label:   v.Name,
		Caption: fmt.Sprintf("%s · %s", v.Type, v.ShopType),
	}
}
