package editor

import (
	"context"
	"strings"

	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
)

// Field names one editable field of a draft
type Field string

const (
	FieldSpecies        Field = "species"
	FieldMove           Field = "move"
	FieldForm           Field = "form"
	FieldGender         Field = "gender"
	FieldAnimation      Field = "animation"
	FieldItem           Field = "item"
	FieldQuantity       Field = "quantity"
	FieldName           Field = "name"
	FieldVisitorType    Field = "type"
	FieldShop           Field = "shop"
	FieldGameVersion    Field = "version"
	FieldCountry        Field = "country"
	FieldSubregion      Field = "subregion"
	FieldPersonality    Field = "personality"
	FieldDreamerSpecies Field = "dreamer"
)

// EncounterInput changes an encounter draft. Text fields take a name or
// "#id"; empty fields and nil pointers keep the current value.
type EncounterInput struct {
	Species   string
	Move      string
	Form      *int
	Gender    profile.Gender
	Animation profile.Animation
}

// ItemInput changes an item draft
type ItemInput struct {
	Item     string
	Quantity *int
}

// VisitorInput changes a visitor draft
type VisitorInput struct {
	Name           *string
	Type           profile.VisitorType
	ShopType       profile.ShopType
	GameVersion    string
	Country        string
	Subregion      string
	Personality    *int
	DreamerSpecies string
}

func speciesEntries(species []catalog.Species) []catalog.Entry {
	entries := make([]catalog.Entry, 0, len(species))
	for _, sp := range species {
		entries = append(entries, catalog.Entry{ID: sp.ID, Name: sp.Name})
	}
	return entries
}

func versionEntries() []catalog.Entry {
	entries := make([]catalog.Entry, 0, len(profile.GameVersions))
	for i, v := range profile.GameVersions {
		entries = append(entries, catalog.Entry{ID: i, Name: v.String()})
	}
	return entries
}

// dreamerEntries are the species a visitor can dream of: every known id up
// to the last Generation V species
func (s *service) dreamerEntries() []catalog.Entry {
	entries := make([]catalog.Entry, 0, profile.MaxSpeciesID)
	for _, sp := range s.catalog.SortedSpecies() {
		if sp.ID >= 1 && sp.ID <= profile.MaxSpeciesID {
			entries = append(entries, catalog.Entry{ID: sp.ID, Name: sp.Name})
		}
	}
	return entries
}

// options lists what a field can be set to for the session's current draft
func (s *service) options(ed *editor, field Field) ([]catalog.Entry, error) {
	rules := ed.session.Rules()
	switch field {
	case FieldSpecies:
		return speciesEntries(rules.SpeciesOptions()), nil
	case FieldMove:
		return s.catalog.SortedMoves(), nil
	case FieldItem:
		return rules.ItemOptions(), nil
	case FieldCountry:
		regions := s.catalog.SortedRegions()
		entries := make([]catalog.Entry, 0, len(regions))
		for _, r := range regions {
			entries = append(entries, catalog.Entry{ID: r.ID, Name: r.Name})
		}
		return entries, nil
	case FieldSubregion:
		draft := ed.session.Drafts().Visitor
		if draft == nil {
			return nil, dnderr.InvalidArgument("no visitor slot is being edited")
		}
		region, ok := s.catalog.Region(draft.CountryCode)
		if !ok {
			return nil, nil
		}
		return catalog.SortedSubregions(region), nil
	case FieldDreamerSpecies:
		return s.dreamerEntries(), nil
	case FieldGameVersion:
		return versionEntries(), nil
	}
	return nil, dnderr.InvalidArgumentf("field %q is not searchable", field)
}

// resolve picks the best option for a typed query
func (s *service) resolve(ed *editor, field Field, query string) (int, error) {
	options, err := s.options(ed, field)
	if err != nil {
		return 0, err
	}

	matches := catalog.SearchNames(options, query, 1)
	if len(matches) == 0 {
		return 0, dnderr.Validationf("Nothing matches %q.", strings.TrimSpace(query)).
			WithMeta("field", string(field))
	}
	return matches[0].ID, nil
}

func (s *service) Search(ctx context.Context, userID string, field Field, query string, limit int) ([]catalog.Match, error) {
	var matches []catalog.Match
	err := s.read(ctx, userID, func(ed *editor) error {
		options, err := s.options(ed, field)
		if err != nil {
			return err
		}
		matches = catalog.SearchNames(options, query, limit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
