package profile

import (
	"unicode/utf16"

	"github.com/KirkDiggler/dream-bot-discord/internal/availability"
	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
)

// Validation messages shown to the user as is
const (
	MsgVisitorNameRequired = "Please enter a name for this visitor."
	MsgVisitorNameTaken    = "A visitor with this name already exists!"

	MsgVisitorsExtendedOnly = "Join Avenue visitors are only available in Black 2 and White 2."
)

// Rules validates slot values against the catalog and the profile's tier
type Rules struct {
	catalog *catalog.Catalog
	tier    availability.Tier
}

// NewRules creates rules for one tier
func NewRules(c *catalog.Catalog, tier availability.Tier) *Rules {
	if c == nil {
		panic("profile: catalog is required")
	}
	return &Rules{catalog: c, tier: tier}
}

// Tier is the availability tier the rules check against
func (r *Rules) Tier() availability.Tier {
	return r.tier
}

// SpeciesAvailable reports whether a species can be placed in an encounter
// slot. Species the catalog marks as not downloadable are never available.
func (r *Rules) SpeciesAvailable(id int) bool {
	if id < 1 || id > MaxSpeciesID {
		return false
	}
	if s, ok := r.catalog.Species(id); ok && !s.Downloadable {
		return false
	}
	return availability.Species.IsAvailable(id, r.tier)
}

// ItemAvailable reports whether an item can be placed in an item slot
func (r *Rules) ItemAvailable(id int) bool {
	if id < 0 || id > MaxItemID {
		return false
	}
	return availability.Items.IsAvailable(id, r.tier)
}

// SpeciesOptions lists the encounter species choices, sorted by name
func (r *Rules) SpeciesOptions() []catalog.Species {
	out := make([]catalog.Species, 0)
	for _, s := range r.catalog.SortedSpecies() {
		if r.SpeciesAvailable(s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// ItemOptions lists the item choices, sorted by name
func (r *Rules) ItemOptions() []catalog.Entry {
	out := make([]catalog.Entry, 0)
	for _, item := range r.catalog.SortedItems() {
		if r.ItemAvailable(item.ID) {
			out = append(out, item)
		}
	}
	return out
}

// ValidateEncounter checks an encounter and clamps its form to the species'
// highest form
func (r *Rules) ValidateEncounter(e Encounter, _ int, _ []Encounter) (Encounter, error) {
	if !r.SpeciesAvailable(e.Species) {
		return e, dnderr.Validationf("%s cannot appear in the dream on this game.", r.catalog.SpeciesName(e.Species)).
			WithMeta("species", e.Species).
			WithMeta("tier", r.tier.String())
	}
	if e.Move < 0 || e.Move > MaxMoveID {
		return e, dnderr.Validation("Move is out of range.").WithMeta("move", e.Move)
	}

	if e.Gender == "" {
		e.Gender = GenderGenderless
	}
	if !e.Gender.Valid() {
		return e, dnderr.Validationf("Unknown gender %q.", e.Gender)
	}
	if e.Animation == "" {
		e.Animation = AnimationLookAround
	}
	if !e.Animation.Valid() {
		return e, dnderr.Validationf("Unknown animation %q.", e.Animation)
	}

	e.Form = ClampForm(e.Form, r.catalog.MaxForm(e.Species))
	return e, nil
}

// ValidateItem checks an item and clamps its quantity
func (r *Rules) ValidateItem(item Item, _ int, _ []Item) (Item, error) {
	if !r.ItemAvailable(item.ID) {
		return item, dnderr.Validationf("%s cannot be found in the dream on this game.", r.catalog.ItemName(item.ID)).
			WithMeta("item", item.ID).
			WithMeta("tier", r.tier.String())
	}
	item.Quantity = ClampQuantity(item.Quantity)
	return item, nil
}

// ValidateVisitor checks a visitor. The name must be unique among the other
// occupied slots.
func (r *Rules) ValidateVisitor(v Visitor, index int, existing []Visitor) (Visitor, error) {
	if v.Name == "" {
		return v, dnderr.Validation(MsgVisitorNameRequired)
	}
	if NameLength(v.Name) > MaxVisitorNameLen {
		return v, dnderr.Validationf("Visitor names can be at most %d characters.", MaxVisitorNameLen)
	}
	for i, other := range existing {
		if i != index && other.Name == v.Name {
			return v, dnderr.Validation(MsgVisitorNameTaken).WithMeta("name", v.Name)
		}
	}

	if !v.Type.Valid() {
		return v, dnderr.Validationf("Unknown visitor type %q.", v.Type)
	}
	if !v.ShopType.Valid() {
		return v, dnderr.Validationf("Unknown shop type %q.", v.ShopType)
	}
	if !v.GameVersion.Valid() {
		return v, dnderr.Validationf("Unknown game version %q.", v.GameVersion)
	}

	if v.CountryCode < 1 {
		return v, dnderr.Validation("Please select a country.")
	}
	if region, ok := r.catalog.Region(v.CountryCode); ok {
		if !region.HasSubregions() {
			v.StateProvinceCode = 0
		} else if _, ok := region.Subregion(v.StateProvinceCode); !ok {
			return v, dnderr.Validationf("Please select a region of %s.", region.Name).
				WithMeta("country", v.CountryCode)
		}
	}

	if v.DreamerSpecies < 1 || v.DreamerSpecies > MaxSpeciesID {
		return v, dnderr.Validation("Dreamer species is out of range.").WithMeta("species", v.DreamerSpecies)
	}

	v.Personality = ClampPersonality(v.Personality)
	return v, nil
}

// NameLength counts UTF-16 code units, the unit the game and the dashboard
// measure names in. Characters outside the Basic Multilingual Plane count twice.
func NameLength(name string) int {
	return len(utf16.Encode([]rune(name)))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ClampForm keeps a form index within [0, maxForm]
func ClampForm(form, maxForm int) int {
	return clamp(form, 0, maxForm)
}

// ClampQuantity keeps an item quantity within [1, 20]
func ClampQuantity(q int) int {
	return clamp(q, MinItemQuantity, MaxItemQuantity)
}

// ClampPersonality keeps a visitor personality within [0, 7]
func ClampPersonality(p int) int {
	return clamp(p, 0, MaxPersonality)
}

// ClampGainedLevels keeps the gained levels within [0, 99]
func ClampGainedLevels(n int) int {
	return clamp(n, 0, MaxGainedLevels)
}
