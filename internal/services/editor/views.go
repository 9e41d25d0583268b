package editor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
	"github.com/KirkDiggler/dream-bot-discord/internal/slots"
)

// Overview summarizes an open profile
type Overview struct {
	GameVersion   string
	Extended      bool
	Dreamer       *profile.DreamerInfo
	DreamerName   string
	DreamerSprite string
	GainedLevels  int
	// Slots lists only the collections the game has
	Slots         []SlotSummary
	DLC           []DLCChoice
}

// SlotSummary is the fill state of one collection
type SlotSummary struct {
	Kind     profile.SlotKind
	Size     int
	Capacity int
}

// DLCChoice is one DLC selection with the names the dashboard offers
type DLCChoice struct {
	Type       profile.DLCType
	Selected   string
	Options    []string
	PreviewURL string
}

// Grid is a rendered collection. Updated holds the cells the last event
// re-rendered, in the order they were rendered.
type Grid struct {
	Kind      profile.SlotKind
	Cells     []slots.Cell
	Size      int
	Capacity  int
	EditIndex int
	Updated   []slots.Cell
}

// Edit is the open edit surface of a collection
type Edit struct {
	Kind     profile.SlotKind
	Index    int
	Existing bool
	Preview  slots.Cell
	Fields   []FieldValue

	Encounter *profile.Encounter
	Item      *profile.Item
	Visitor   *profile.Visitor

	// MaxForm is the highest form of the drafted species
	MaxForm int
}

// FieldValue is a draft field as shown to the user
type FieldValue struct {
	Field Field
	Label string
	Value string
}

func (s *service) overview(ed *editor) *Overview {
	ps := ed.session

	view := &Overview{
		GameVersion:   ps.GameVersion(),
		Extended:      ps.Extended(),
		Dreamer:       ps.DreamerInfo(),
		DreamerSprite: ps.DreamerSprite(),
		GainedLevels:  ps.GainedLevels(),
	}
	if view.Dreamer != nil {
		view.DreamerName = s.catalog.SpeciesName(view.Dreamer.Species)
	}

	for _, kind := range profile.SlotKinds {
		if !ps.Supports(kind) {
			continue
		}
		view.Slots = append(view.Slots, SlotSummary{
			Kind:     kind,
			Size:     ps.Size(kind),
			Capacity: kind.Capacity(),
		})
	}

	for _, t := range []profile.DLCType{ps.CGearType(), profile.DLCDexSkin, profile.DLCMusical} {
		choice := DLCChoice{
			Type:     t,
			Selected: ps.DLC(t),
			Options:  ed.record.DLC[t],
		}
		if choice.Selected != profile.NoDLC && t != profile.DLCMusical {
			choice.PreviewURL = s.client.PreviewURL(t, choice.Selected)
		}
		view.DLC = append(view.DLC, choice)
	}

	return view
}

func (s *service) grid(ctx context.Context, ed *editor, kind profile.SlotKind) (*Grid, error) {
	if err := ed.session.CheckSupported(kind); err != nil {
		return nil, err
	}

	cells, err := ed.session.Render(ctx, kind)
	if err != nil {
		return nil, err
	}

	return &Grid{
		Kind:      kind,
		Cells:     cells,
		Size:      ed.session.Size(kind),
		Capacity:  kind.Capacity(),
		EditIndex: ed.session.EditIndex(kind),
		Updated:   ed.updated[kind],
	}, nil
}

func (s *service) edit(ctx context.Context, ed *editor, kind profile.SlotKind) (*Edit, error) {
	preview, err := ed.session.RenderDraft(ctx, kind)
	if err != nil {
		return nil, err
	}

	index := ed.session.EditIndex(kind)
	view := &Edit{
		Kind:     kind,
		Index:    index,
		Existing: index < ed.session.Size(kind),
		Preview:  preview,
	}

	drafts := ed.session.Drafts()
	switch kind {
	case profile.SlotEncounters:
		e := *drafts.Encounter
		view.Encounter = &e
		view.MaxForm = s.catalog.MaxForm(e.Species)
		view.Fields = []FieldValue{
			{Field: FieldSpecies, Label: "Pokémon", Value: s.catalog.SpeciesName(e.Species)},
			{Field: FieldMove, Label: "Move", Value: s.catalog.MoveName(e.Move)},
			{Field: FieldForm, Label: "Form", Value: s.formName(e)},
			{Field: FieldGender, Label: "Gender", Value: e.Gender.String()},
			{Field: FieldAnimation, Label: "Animation", Value: e.Animation.String()},
		}
	case profile.SlotItems:
		item := *drafts.Item
		view.Item = &item
		view.Fields = []FieldValue{
			{Field: FieldItem, Label: "Item", Value: s.catalog.ItemName(item.ID)},
			{Field: FieldQuantity, Label: "Quantity", Value: strconv.Itoa(item.Quantity)},
		}
	case profile.SlotVisitors:
		v := *drafts.Visitor
		view.Visitor = &v
		view.Fields = []FieldValue{
			{Field: FieldName, Label: "Name", Value: v.Name},
			{Field: FieldVisitorType, Label: "Trainer class", Value: v.Type.String()},
			{Field: FieldShop, Label: "Shop", Value: v.ShopType.String()},
			{Field: FieldGameVersion, Label: "Game", Value: v.GameVersion.String()},
			{Field: FieldCountry, Label: "Country", Value: s.catalog.RegionName(v.CountryCode)},
			{Field: FieldSubregion, Label: "Region", Value: s.subregionName(v)},
			{Field: FieldPersonality, Label: "Personality", Value: strconv.Itoa(v.Personality)},
			{Field: FieldDreamerSpecies, Label: "Dream Pokémon", Value: s.catalog.SpeciesName(v.DreamerSpecies)},
		}
	}

	return view, nil
}

func (s *service) formName(e profile.Encounter) string {
	species, ok := s.catalog.Species(e.Species)
	if !ok || !species.HasForms() {
		return "N/A"
	}
	return species.FormName(e.Form)
}

func (s *service) subregionName(v profile.Visitor) string {
	region, ok := s.catalog.Region(v.CountryCode)
	if !ok || !region.HasSubregions() {
		return "N/A"
	}
	if sub, found := region.Subregion(v.StateProvinceCode); found {
		return sub.Name
	}
	return fmt.Sprintf("Unknown (#%d)", v.StateProvinceCode)
}
