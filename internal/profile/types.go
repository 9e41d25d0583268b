// Package profile models a Game Sync dream profile and the editor session
// that stages changes to it before they are pushed back to the dashboard.
package profile

// Slot capacities
const (
	MaxEncounters = 10
	MaxItems      = 20
	MaxVisitors   = 12
)

// Input ranges
const (
	MinItemQuantity   = 1
	MaxItemQuantity   = 20
	MaxGainedLevels   = 99
	MaxPersonality    = 7
	MaxVisitorNameLen = 7
	MaxSpeciesID      = 649
	MaxMoveID         = 559
	MaxItemID         = 638
)

// Encounter is a Pokémon that appears in the Entree Forest dream
type Encounter struct {
	Species   int       `json:"species"`
	Move      int       `json:"move"`
	Form      int       `json:"form"`
	Gender    Gender    `json:"gender,omitempty"`
	Animation Animation `json:"animation"`
}

// Item is an item brought back from the dream
type Item struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// Visitor is a Join Avenue visitor
type Visitor struct {
	Name              string      `json:"name"`
	Type              VisitorType `json:"type"`
	ShopType          ShopType    `json:"shopType"`
	GameVersion       GameVersion `json:"gameVersion"`
	CountryCode       int         `json:"countryCode"`
	StateProvinceCode int         `json:"stateProvinceCode"`
	Personality       int         `json:"personality"`
	DreamerSpecies    int         `json:"dreamerSpecies"`
}

// DefaultEncounter is the draft for a new encounter slot
func DefaultEncounter() Encounter {
	return Encounter{
		Species:   493,
		Gender:    GenderGenderless,
		Animation: AnimationLookAround,
	}
}

// DefaultItem is the draft for a new item slot
func DefaultItem() Item {
	return Item{ID: 1, Quantity: 1}
}

// DefaultVisitor is the draft for a new visitor slot
func DefaultVisitor() Visitor {
	return Visitor{
		Type:           VisitorAceTrainerMale,
		ShopType:       ShopRaffle,
		GameVersion:    GameVersionBlackEnglish,
		CountryCode:    1,
		DreamerSpecies: 1,
	}
}

// DreamerInfo summarizes the Pokémon tucked in to sleep
type DreamerInfo struct {
	Nickname    string `json:"nickname"`
	TrainerName string `json:"trainerName"`
	Nature      string `json:"nature"`
	Gender      Gender `json:"gender"`
	Species     int    `json:"species"`
	TrainerID   int    `json:"trainerId"`
	Level       int    `json:"level"`
	Form        int    `json:"form,omitempty"`
	Ability     int    `json:"ability,omitempty"`
}

// Document is the profile as the dashboard returns it. Nil collections were
// absent from the response; an empty slice was present and empty.
type Document struct {
	GameVersion     string       `json:"gameVersion"`
	DreamerSprite   string       `json:"dreamerSprite,omitempty"`
	DreamerInfo     *DreamerInfo `json:"dreamerInfo,omitempty"`
	CGearSkin       string       `json:"cgearSkin,omitempty"`
	DexSkin         string       `json:"dexSkin,omitempty"`
	Musical         string       `json:"musical,omitempty"`
	CustomCGearSkin string       `json:"customCGearSkin,omitempty"`
	CustomDexSkin   string       `json:"customDexSkin,omitempty"`
	LevelsGained    int          `json:"levelsGained"`
	Encounters      []Encounter  `json:"encounters"`
	Items           []Item       `json:"items"`
	AvenueVisitors  []Visitor    `json:"avenueVisitors"`
}

// UpdateRequest is the full-replace body posted to the profile endpoint
type UpdateRequest struct {
	Encounters     []Encounter `json:"encounters"`
	Items          []Item      `json:"items"`
	AvenueVisitors []Visitor   `json:"avenueVisitors"`
	CGearSkin      string      `json:"cgearSkin"`
	DexSkin        string      `json:"dexSkin"`
	Musical        string      `json:"musical"`
	GainedLevels   int         `json:"gainedLevels"`
}

// Status is the dashboard's {message, error} reply
type Status struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
}
