package profile

import (
	"context"

	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/slots"
)

func unknownKind(kind SlotKind) error {
	return dnderr.InvalidArgumentf("unknown slot kind %q", kind)
}

func notEditing(kind SlotKind) error {
	return dnderr.InvalidArgumentf("no %s slot is being edited", kind).
		WithMeta("kind", string(kind))
}

// Supports reports whether the game has the collection at all. Join Avenue
// only exists in Black 2 and White 2.
func (s *Session) Supports(kind SlotKind) bool {
	return kind != SlotVisitors || s.Extended()
}

// CheckSupported rejects collections the loaded game does not have
func (s *Session) CheckSupported(kind SlotKind) error {
	if !kind.Valid() {
		return unknownKind(kind)
	}
	if !s.Supports(kind) {
		return dnderr.Validation(MsgVisitorsExtendedOnly).WithMeta("kind", string(kind))
	}
	return nil
}

// Size is the number of occupied slots of a kind
func (s *Session) Size(kind SlotKind) int {
	switch kind {
	case SlotEncounters:
		return s.encounters.Size()
	case SlotItems:
		return s.items.Size()
	case SlotVisitors:
		return s.visitors.Size()
	}
	return 0
}

// EditIndex is the slot under edit in a collection, or slots.NoEdit
func (s *Session) EditIndex(kind SlotKind) int {
	switch kind {
	case SlotEncounters:
		return s.encounters.EditIndex()
	case SlotItems:
		return s.items.EditIndex()
	case SlotVisitors:
		return s.visitors.EditIndex()
	}
	return slots.NoEdit
}

// BeginEdit opens the edit surface on a slot and seeds the draft with the
// slot's value, or with defaults for a new slot
func (s *Session) BeginEdit(kind SlotKind, index int) error {
	if err := s.CheckSupported(kind); err != nil {
		return err
	}

	switch kind {
	case SlotEncounters:
		e, ok := s.encounters.BeginEdit(index)
		if !ok {
			e = s.newEncounter()
		}
		s.drafts.Encounter = &e
	case SlotItems:
		item, ok := s.items.BeginEdit(index)
		if !ok {
			item = DefaultItem()
		}
		s.drafts.Item = &item
	case SlotVisitors:
		v, ok := s.visitors.BeginEdit(index)
		if !ok {
			v = DefaultVisitor()
		}
		s.drafts.Visitor = &v
	default:
		return unknownKind(kind)
	}
	return nil
}

func (s *Session) newEncounter() Encounter {
	e := DefaultEncounter()
	if !s.rules.SpeciesAvailable(e.Species) {
		if options := s.rules.SpeciesOptions(); len(options) > 0 {
			e.Species = options[0].ID
		}
	}
	return e
}

// EncounterChange lists the encounter fields to replace. Nil pointers and
// empty enums leave a field as it is.
type EncounterChange struct {
	Species   *int
	Move      *int
	Form      *int
	Gender    Gender
	Animation Animation
}

// EditEncounter changes the open encounter draft. Picking another species
// resets the form unless the change sets one.
func (s *Session) EditEncounter(change EncounterChange) error {
	if s.drafts.Encounter == nil {
		return notEditing(SlotEncounters)
	}

	draft := *s.drafts.Encounter
	if change.Species != nil && *change.Species != draft.Species {
		draft.Species = *change.Species
		draft.Form = 0
	}
	if change.Move != nil {
		draft.Move = *change.Move
	}
	if change.Form != nil {
		draft.Form = max(*change.Form, 0)
	}
	if change.Gender != "" {
		draft.Gender = change.Gender
	}
	if change.Animation != "" {
		draft.Animation = change.Animation
	}
	s.drafts.Encounter = &draft
	return nil
}

// EditItem changes the open item draft; the quantity is clamped
func (s *Session) EditItem(fn func(item *Item)) error {
	if s.drafts.Item == nil {
		return notEditing(SlotItems)
	}

	draft := *s.drafts.Item
	fn(&draft)
	draft.Quantity = ClampQuantity(draft.Quantity)
	s.drafts.Item = &draft
	return nil
}

// EditVisitor changes the open visitor draft. The personality is clamped and
// choosing another country selects that country's first subregion.
func (s *Session) EditVisitor(fn func(v *Visitor)) error {
	if s.drafts.Visitor == nil {
		return notEditing(SlotVisitors)
	}

	draft := *s.drafts.Visitor
	fn(&draft)
	draft.Personality = ClampPersonality(draft.Personality)
	if draft.CountryCode != s.drafts.Visitor.CountryCode && draft.StateProvinceCode == s.drafts.Visitor.StateProvinceCode {
		draft.StateProvinceCode = 0
		if region, ok := s.catalog.Region(draft.CountryCode); ok && region.HasSubregions() {
			draft.StateProvinceCode = catalog.SortedSubregions(region)[0].ID
		}
	}
	s.drafts.Visitor = &draft
	return nil
}

// Commit validates the open draft and writes it to its slot. A rejected
// draft stays open for correction.
func (s *Session) Commit(ctx context.Context, kind SlotKind) error {
	if err := s.CheckSupported(kind); err != nil {
		return err
	}

	switch kind {
	case SlotEncounters:
		if s.drafts.Encounter == nil {
			return notEditing(kind)
		}
		if err := s.encounters.CommitEdit(ctx, *s.drafts.Encounter); err != nil {
			return err
		}
		s.drafts.Encounter = nil
	case SlotItems:
		if s.drafts.Item == nil {
			return notEditing(kind)
		}
		if err := s.items.CommitEdit(ctx, *s.drafts.Item); err != nil {
			return err
		}
		s.drafts.Item = nil
	case SlotVisitors:
		if s.drafts.Visitor == nil {
			return notEditing(kind)
		}
		if err := s.visitors.CommitEdit(ctx, *s.drafts.Visitor); err != nil {
			return err
		}
		s.drafts.Visitor = nil
	default:
		return unknownKind(kind)
	}
	return nil
}

// Cancel closes the edit surface and drops the draft
func (s *Session) Cancel(kind SlotKind) error {
	switch kind {
	case SlotEncounters:
		s.encounters.CancelEdit()
		s.drafts.Encounter = nil
	case SlotItems:
		s.items.CancelEdit()
		s.drafts.Item = nil
	case SlotVisitors:
		s.visitors.CancelEdit()
		s.drafts.Visitor = nil
	default:
		return unknownKind(kind)
	}
	return nil
}

// Remove deletes the slot under edit and drops the draft
func (s *Session) Remove(ctx context.Context, kind SlotKind) error {
	switch kind {
	case SlotEncounters:
		s.encounters.RemoveCurrent(ctx)
		s.drafts.Encounter = nil
	case SlotItems:
		s.items.RemoveCurrent(ctx)
		s.drafts.Item = nil
	case SlotVisitors:
		s.visitors.RemoveCurrent(ctx)
		s.drafts.Visitor = nil
	default:
		return unknownKind(kind)
	}
	return nil
}

// Render renders every cell of a collection in slot order
func (s *Session) Render(ctx context.Context, kind SlotKind) ([]slots.Cell, error) {
	switch kind {
	case SlotEncounters:
		return s.encounters.RenderAll(ctx), nil
	case SlotItems:
		return s.items.RenderAll(ctx), nil
	case SlotVisitors:
		return s.visitors.RenderAll(ctx), nil
	}
	return nil, unknownKind(kind)
}

// RenderCell renders one cell of a collection
func (s *Session) RenderCell(ctx context.Context, kind SlotKind, index int) (slots.Cell, error) {
	switch kind {
	case SlotEncounters:
		return s.encounters.RenderCell(ctx, index), nil
	case SlotItems:
		return s.items.RenderCell(ctx, index), nil
	case SlotVisitors:
		return s.visitors.RenderCell(ctx, index), nil
	}
	return slots.Cell{}, unknownKind(kind)
}

// RenderDraft renders the open draft the way its slot will look once committed
func (s *Session) RenderDraft(ctx context.Context, kind SlotKind) (slots.Cell, error) {
	index := s.EditIndex(kind)

	var cell slots.Cell
	switch kind {
	case SlotEncounters:
		if s.drafts.Encounter == nil {
			return slots.Cell{}, notEditing(kind)
		}
		cell = s.renderer.encounter(ctx, index, *s.drafts.Encounter, true)
	case SlotItems:
		if s.drafts.Item == nil {
			return slots.Cell{}, notEditing(kind)
		}
		cell = s.renderer.item(ctx, index, *s.drafts.Item, true)
	case SlotVisitors:
		if s.drafts.Visitor == nil {
			return slots.Cell{}, notEditing(kind)
		}
		cell = s.renderer.visitor(ctx, index, *s.drafts.Visitor, true)
	default:
		return slots.Cell{}, unknownKind(kind)
	}

	cell.Index = index
	return cell, nil
}
