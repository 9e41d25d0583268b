package profile

import (
	"context"
	"log"
	"slices"

	"github.com/KirkDiggler/dream-bot-discord/internal/availability"
	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/slots"
	"github.com/KirkDiggler/dream-bot-discord/internal/sprite"
)

//go:generate mockgen -destination=mock/mock_gateway.go -package=mockprofile -source=session.go Gateway

// Gateway pushes a profile to the dashboard
type Gateway interface {
	UpdateProfile(ctx context.Context, req *UpdateRequest) (*Status, error)
}

// SlotKind names one of the three slot collections
type SlotKind string

const (
	SlotEncounters SlotKind = "encounters"
	SlotItems      SlotKind = "items"
	SlotVisitors   SlotKind = "visitors"
)

// SlotKinds lists the collections in display order
var SlotKinds = []SlotKind{SlotEncounters, SlotItems, SlotVisitors}

// Capacity is the number of slots of a kind
func (k SlotKind) Capacity() int {
	switch k {
	case SlotEncounters:
		return MaxEncounters
	case SlotItems:
		return MaxItems
	case SlotVisitors:
		return MaxVisitors
	}
	return 0
}

// Valid reports whether k names a collection
func (k SlotKind) Valid() bool {
	return k.Capacity() > 0
}

// Drafts holds the field values of the open edit surfaces
type Drafts struct {
	Encounter *Encounter `json:"encounter,omitempty"`
	Item      *Item      `json:"item,omitempty"`
	Visitor   *Visitor   `json:"visitor,omitempty"`
}

// State is everything needed to rebuild a session between interactions
type State struct {
	GameVersion     string       `json:"game_version"`
	DreamerSprite   string       `json:"dreamer_sprite,omitempty"`
	DreamerInfo     *DreamerInfo `json:"dreamer_info,omitempty"`
	CGearSkin       string       `json:"cgear_skin"`
	DexSkin         string       `json:"dex_skin"`
	Musical         string       `json:"musical"`
	CustomCGearSkin string       `json:"custom_cgear_skin,omitempty"`
	CustomDexSkin   string       `json:"custom_dex_skin,omitempty"`
	GainedLevels    int          `json:"gained_levels"`

	Encounters    []Encounter `json:"encounters"`
	EncounterEdit int         `json:"encounter_edit"`
	Items         []Item      `json:"items"`
	ItemEdit      int         `json:"item_edit"`
	Visitors      []Visitor   `json:"visitors"`
	VisitorEdit   int         `json:"visitor_edit"`

	Drafts Drafts `json:"drafts"`
}

// SessionConfig configures a session
type SessionConfig struct {
	Catalog  *catalog.Catalog
	Resolver *sprite.Resolver

	// OnRender receives every cell re-rendered by an edit
	OnRender func(kind SlotKind, cell slots.Cell)
}

// Session is one editor's working copy of a profile
type Session struct {
	catalog  *catalog.Catalog
	rules    *Rules
	renderer *renderer
	onRender func(SlotKind, slots.Cell)

	gameVersion     string
	dreamerSprite   string
	dreamerInfo     *DreamerInfo
	cgearSkin       string
	dexSkin         string
	musical         string
	customCGearSkin string
	customDexSkin   string
	gainedLevels    int
	drafts          Drafts

	encounters *slots.Collection[Encounter]
	items      *slots.Collection[Item]
	visitors   *slots.Collection[Visitor]
}

// NewSession creates an empty session in the original tier
func NewSession(cfg *SessionConfig) *Session {
	if cfg == nil {
		panic("profile: config is required")
	}
	if cfg.Catalog == nil {
		panic("profile: catalog is required")
	}

	s := &Session{
		catalog:   cfg.Catalog,
		rules:     NewRules(cfg.Catalog, availability.TierOriginal),
		onRender:  cfg.OnRender,
		cgearSkin: NoDLC,
		dexSkin:   NoDLC,
		musical:   NoDLC,
	}

	r := &renderer{catalog: cfg.Catalog, resolver: cfg.Resolver}
	s.renderer = r

	s.encounters = slots.New(&slots.Config[Encounter]{
		Capacity: MaxEncounters,
		Validate: func(v Encounter, i int, existing []Encounter) (Encounter, error) {
			return s.rules.ValidateEncounter(v, i, existing)
		},
		Render: r.encounter,
		Sink:   s.sink(SlotEncounters),
	})
	s.items = slots.New(&slots.Config[Item]{
		Capacity: MaxItems,
		Validate: func(v Item, i int, existing []Item) (Item, error) {
			return s.rules.ValidateItem(v, i, existing)
		},
		Render: r.item,
		Sink:   s.sink(SlotItems),
	})
	s.visitors = slots.New(&slots.Config[Visitor]{
		Capacity: MaxVisitors,
		Validate: func(v Visitor, i int, existing []Visitor) (Visitor, error) {
			return s.rules.ValidateVisitor(v, i, existing)
		},
		Render: r.visitor,
		Sink:   s.sink(SlotVisitors),
	})

	return s
}

func (s *Session) sink(kind SlotKind) slots.Sink {
	return func(cell slots.Cell) {
		if s.onRender != nil {
			s.onRender(kind, cell)
		}
	}
}

// Load replaces the session contents with a fetched profile. A collection
// the document omits keeps its current contents.
func (s *Session) Load(doc *Document) {
	if doc == nil {
		return
	}

	s.gameVersion = doc.GameVersion
	s.rules = NewRules(s.catalog, availability.TierForVersion(doc.GameVersion))
	s.dreamerSprite = doc.DreamerSprite
	s.dreamerInfo = doc.DreamerInfo
	s.customCGearSkin = doc.CustomCGearSkin
	s.customDexSkin = doc.CustomDexSkin
	s.gainedLevels = doc.LevelsGained

	if doc.Encounters != nil {
		encounters := make([]Encounter, len(doc.Encounters))
		for i, e := range doc.Encounters {
			if e.Gender == "" {
				e.Gender = GenderGenderless
			}
			encounters[i] = e
		}
		s.encounters.Restore(encounters, slots.NoEdit)
	}
	if doc.Items != nil {
		s.items.Restore(doc.Items, slots.NoEdit)
	}
	if doc.AvenueVisitors != nil {
		s.visitors.Restore(doc.AvenueVisitors, slots.NoEdit)
	}

	s.cgearSkin = orNone(doc.CGearSkin)
	s.dexSkin = orNone(doc.DexSkin)
	s.musical = orNone(doc.Musical)

	log.Printf("[Profile] loaded %s (%s): %d encounters, %d items, %d visitors",
		s.gameVersion, s.Tier(), s.encounters.Size(), s.items.Size(), s.visitors.Size())
}

func orNone(v string) string {
	if v == "" {
		return NoDLC
	}
	return v
}

// Snapshot builds the full update request in slot order
func (s *Session) Snapshot() *UpdateRequest {
	return &UpdateRequest{
		Encounters:     s.encounters.Values(),
		Items:          s.items.Values(),
		AvenueVisitors: s.visitors.Values(),
		CGearSkin:      s.cgearSkin,
		DexSkin:        s.dexSkin,
		Musical:        s.musical,
		GainedLevels:   s.gainedLevels,
	}
}

// Save pushes the snapshot. The server's message is returned verbatim; its
// error flag only affects how the message is shown.
func (s *Session) Save(ctx context.Context, gateway Gateway) (*Status, error) {
	if gateway == nil {
		return nil, dnderr.InvalidArgument("gateway is required")
	}

	status, err := gateway.UpdateProfile(ctx, s.Snapshot())
	if err != nil {
		return nil, err
	}
	if status == nil {
		status = &Status{}
	}
	return status, nil
}

// Tier is derived from the game version
func (s *Session) Tier() availability.Tier {
	return s.rules.Tier()
}

// Extended reports whether the profile belongs to Black 2 or White 2
func (s *Session) Extended() bool {
	return s.Tier() == availability.TierExtended
}

// Rules returns the validation rules for the current tier
func (s *Session) Rules() *Rules {
	return s.rules
}

func (s *Session) GameVersion() string { return s.gameVersion }
func (s *Session) DreamerSprite() string { return s.dreamerSprite }
func (s *Session) DreamerInfo() *DreamerInfo { return s.dreamerInfo }
func (s *Session) GainedLevels() int { return s.gainedLevels }
func (s *Session) CustomCGearSkin() string { return s.customCGearSkin }
func (s *Session) CustomDexSkin() string { return s.customDexSkin }
func (s *Session) Encounters() []Encounter { return s.encounters.Values() }
func (s *Session) Items() []Item { return s.items.Values() }
func (s *Session) Visitors() []Visitor { return s.visitors.Values() }
func (s *Session) Drafts() Drafts { return s.drafts }

// SetGainedLevels stores the gained levels, clamped to [0, 99]
func (s *Session) SetGainedLevels(n int) {
	s.gainedLevels = ClampGainedLevels(n)
}

// CGearType is the DLC type of C-Gear skins for this game
func (s *Session) CGearType() DLCType {
	if s.Extended() {
		return DLCCGear2
	}
	return DLCCGear
}

// DLC returns the selection for a DLC type
func (s *Session) DLC(t DLCType) string {
	switch t {
	case DLCCGear, DLCCGear2:
		return s.cgearSkin
	case DLCDexSkin:
		return s.dexSkin
	case DLCMusical:
		return s.musical
	}
	return NoDLC
}

// SelectDLC sets the selection for a DLC type
func (s *Session) SelectDLC(t DLCType, value string) error {
	value = orNone(value)
	switch t {
	case DLCCGear, DLCCGear2:
		s.cgearSkin = value
	case DLCDexSkin:
		s.dexSkin = value
	case DLCMusical:
		s.musical = value
	default:
		return dnderr.InvalidArgumentf("unknown DLC type %q", t)
	}
	return nil
}

// ReconcileDLC keeps the current selection only when the server still lists it
func (s *Session) ReconcileDLC(t DLCType, available []string) {
	current := s.DLC(t)
	if current != NoDLC && !slices.Contains(available, current) {
		_ = s.SelectDLC(t, NoDLC)
	}
}

// State captures the session for storage
func (s *Session) State() *State {
	return &State{
		GameVersion:     s.gameVersion,
		DreamerSprite:   s.dreamerSprite,
		DreamerInfo:     s.dreamerInfo,
		CGearSkin:       s.cgearSkin,
		DexSkin:         s.dexSkin,
		Musical:         s.musical,
		CustomCGearSkin: s.customCGearSkin,
		CustomDexSkin:   s.customDexSkin,
		GainedLevels:    s.gainedLevels,
		Encounters:      s.encounters.Values(),
		EncounterEdit:   s.encounters.EditIndex(),
		Items:           s.items.Values(),
		ItemEdit:        s.items.EditIndex(),
		Visitors:        s.visitors.Values(),
		VisitorEdit:     s.visitors.EditIndex(),
		Drafts:          s.drafts,
	}
}

// Restore rebuilds the session from stored state
func (s *Session) Restore(state *State) {
	if state == nil {
		return
	}

	s.gameVersion = state.GameVersion
	s.rules = NewRules(s.catalog, availability.TierForVersion(state.GameVersion))
	s.dreamerSprite = state.DreamerSprite
	s.dreamerInfo = state.DreamerInfo
	s.cgearSkin = orNone(state.CGearSkin)
	s.dexSkin = orNone(state.DexSkin)
	s.musical = orNone(state.Musical)
	s.customCGearSkin = state.CustomCGearSkin
	s.customDexSkin = state.CustomDexSkin
	s.gainedLevels = state.GainedLevels
	s.encounters.Restore(state.Encounters, state.EncounterEdit)
	s.items.Restore(state.Items, state.ItemEdit)
	s.visitors.Restore(state.Visitors, state.VisitorEdit)
	s.drafts = state.Drafts

	// a draft without an open surface is stale
	if !s.encounters.Editing() {
		s.drafts.Encounter = nil
	}
	if !s.items.Editing() {
		s.drafts.Item = nil
	}
	if !s.visitors.Editing() {
		s.drafts.Visitor = nil
	}
}
