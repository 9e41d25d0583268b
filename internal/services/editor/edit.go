package editor

import (
	"context"
	"slices"
	"strings"

	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
)

func validKind(kind profile.SlotKind) error {
	if !kind.Valid() {
		return dnderr.InvalidArgumentf("unknown slot kind %q", kind)
	}
	return nil
}

func (s *service) Grid(ctx context.Context, userID string, kind profile.SlotKind) (*Grid, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	var view *Grid
	err := s.read(ctx, userID, func(ed *editor) error {
		var err error
		view, err = s.grid(ctx, ed, kind)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) BeginEdit(ctx context.Context, userID string, kind profile.SlotKind, index int) (*Edit, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	var view *Edit
	err := s.mutate(ctx, userID, func(ed *editor) error {
		if err := ed.session.BeginEdit(kind, index); err != nil {
			return err
		}

		var err error
		view, err = s.edit(ctx, ed, kind)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) Draft(ctx context.Context, userID string, kind profile.SlotKind) (*Edit, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	var view *Edit
	err := s.read(ctx, userID, func(ed *editor) error {
		var err error
		view, err = s.edit(ctx, ed, kind)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) UpdateEncounterDraft(ctx context.Context, userID string, input *EncounterInput) (*Edit, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.Gender != "" && !input.Gender.Valid() {
		return nil, dnderr.Validationf("%q is not a gender.", input.Gender)
	}
	if input.Animation != "" && !input.Animation.Valid() {
		return nil, dnderr.Validationf("%q is not an animation.", input.Animation)
	}

	return s.updateDraft(ctx, userID, profile.SlotEncounters, func(ed *editor) error {
		change := profile.EncounterChange{
			Form:      input.Form,
			Gender:    input.Gender,
			Animation: input.Animation,
		}
		if input.Species != "" {
			id, err := s.resolve(ed, FieldSpecies, input.Species)
			if err != nil {
				return err
			}
			change.Species = &id
		}
		if input.Move != "" {
			id, err := s.resolve(ed, FieldMove, input.Move)
			if err != nil {
				return err
			}
			change.Move = &id
		}

		return ed.session.EditEncounter(change)
	})
}

func (s *service) UpdateItemDraft(ctx context.Context, userID string, input *ItemInput) (*Edit, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	return s.updateDraft(ctx, userID, profile.SlotItems, func(ed *editor) error {
		id := -1
		if input.Item != "" {
			var err error
			if id, err = s.resolve(ed, FieldItem, input.Item); err != nil {
				return err
			}
		}

		return ed.session.EditItem(func(item *profile.Item) {
			if id >= 0 {
				item.ID = id
			}
			if input.Quantity != nil {
				item.Quantity = *input.Quantity
			}
		})
	})
}

func (s *service) UpdateVisitorDraft(ctx context.Context, userID string, input *VisitorInput) (*Edit, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.Type != "" && !input.Type.Valid() {
		return nil, dnderr.Validationf("%q is not a trainer class.", input.Type)
	}
	if input.ShopType != "" && !input.ShopType.Valid() {
		return nil, dnderr.Validationf("%q is not a shop.", input.ShopType)
	}

	return s.updateDraft(ctx, userID, profile.SlotVisitors, func(ed *editor) error {
		draft := ed.session.Drafts().Visitor
		if draft == nil {
			return dnderr.InvalidArgument("no visitors slot is being edited")
		}

		version := draft.GameVersion
		if input.GameVersion != "" {
			i, err := s.resolve(ed, FieldGameVersion, input.GameVersion)
			if err != nil {
				return err
			}
			version = profile.GameVersions[i]
		}

		country := draft.CountryCode
		if input.Country != "" {
			id, err := s.resolve(ed, FieldCountry, input.Country)
			if err != nil {
				return err
			}
			country = id
		}

		dreamer := draft.DreamerSpecies
		if input.DreamerSpecies != "" {
			id, err := s.resolve(ed, FieldDreamerSpecies, input.DreamerSpecies)
			if err != nil {
				return err
			}
			dreamer = id
		}

		if err := ed.session.EditVisitor(func(v *profile.Visitor) {
			if input.Name != nil {
				v.Name = strings.TrimSpace(*input.Name)
			}
			if input.Type != "" {
				v.Type = input.Type
			}
			if input.ShopType != "" {
				v.ShopType = input.ShopType
			}
			if input.Personality != nil {
				v.Personality = *input.Personality
			}
			v.GameVersion = version
			v.CountryCode = country
			v.DreamerSpecies = dreamer
		}); err != nil {
			return err
		}

		// the subregion is looked up in the country chosen above
		if input.Subregion != "" {
			id, err := s.resolve(ed, FieldSubregion, input.Subregion)
			if err != nil {
				return err
			}
			return ed.session.EditVisitor(func(v *profile.Visitor) {
				v.StateProvinceCode = id
			})
		}
		return nil
	})
}

func (s *service) updateDraft(ctx context.Context, userID string, kind profile.SlotKind, fn func(ed *editor) error) (*Edit, error) {
	var view *Edit
	err := s.mutate(ctx, userID, func(ed *editor) error {
		if err := fn(ed); err != nil {
			return err
		}

		var err error
		view, err = s.edit(ctx, ed, kind)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Commit leaves a rejected draft open and unchanged
func (s *service) Commit(ctx context.Context, userID string, kind profile.SlotKind) (*Grid, error) {
	return s.updateGrid(ctx, userID, kind, func(ed *editor) error {
		return ed.session.Commit(ctx, kind)
	})
}

func (s *service) Cancel(ctx context.Context, userID string, kind profile.SlotKind) (*Grid, error) {
	return s.updateGrid(ctx, userID, kind, func(ed *editor) error {
		return ed.session.Cancel(kind)
	})
}

func (s *service) Remove(ctx context.Context, userID string, kind profile.SlotKind) (*Grid, error) {
	return s.updateGrid(ctx, userID, kind, func(ed *editor) error {
		return ed.session.Remove(ctx, kind)
	})
}

func (s *service) updateGrid(ctx context.Context, userID string, kind profile.SlotKind, fn func(ed *editor) error) (*Grid, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	var view *Grid
	err := s.mutate(ctx, userID, func(ed *editor) error {
		if err := fn(ed); err != nil {
			return err
		}

		var err error
		view, err = s.grid(ctx, ed, kind)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) SelectDLC(ctx context.Context, userID string, dlcType profile.DLCType, value string) (*Overview, error) {
	return s.updateOverview(ctx, userID, func(ed *editor) error {
		if value != "" && value != profile.NoDLC {
			offered, ok := ed.record.DLC[dlcType]
			if !ok {
				return dnderr.Validationf("%s is not available for this game.", dlcType).
					WithMeta("dlc_type", string(dlcType))
			}
			if !slices.Contains(offered, value) {
				return dnderr.Validationf("%q is not offered by the server.", value).
					WithMeta("dlc_type", string(dlcType))
			}
		}
		return ed.session.SelectDLC(dlcType, value)
	})
}

func (s *service) SetGainedLevels(ctx context.Context, userID string, levels int) (*Overview, error) {
	return s.updateOverview(ctx, userID, func(ed *editor) error {
		ed.session.SetGainedLevels(levels)
		return nil
	})
}

func (s *service) updateOverview(ctx context.Context, userID string, fn func(ed *editor) error) (*Overview, error) {
	var view *Overview
	err := s.mutate(ctx, userID, func(ed *editor) error {
		if err := fn(ed); err != nil {
			return err
		}
		view = s.overview(ed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
