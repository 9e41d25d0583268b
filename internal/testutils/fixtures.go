package testutils

import (
	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
)

// Game versions as the dashboard reports them
const (
	VersionBlack  = "Black Version"
	VersionWhite2 = "White Version 2"
)

// CreateTestCatalog creates a small catalog covering forms, regions with and
// without subregions and ids on both sides of the availability thresholds
func CreateTestCatalog() *catalog.Catalog {
	return catalog.New(
		[]catalog.Species{
			{ID: 1, Name: "Bulbasaur", Downloadable: true},
			{ID: 25, Name: "Pikachu", Downloadable: true},
			{ID: 151, Name: "Mew", Downloadable: false},
			{ID: 201, Name: "Unown", Downloadable: true, Forms: []string{"A", "B", "C", "D"}},
			{ID: 422, Name: "Shellos", Downloadable: true, Forms: []string{"West Sea", "East Sea"}},
			{ID: 493, Name: "Arceus", Downloadable: false},
			{ID: 495, Name: "Snivy", Downloadable: true},
			{ID: 600, Name: "Klang", Downloadable: true},
		},
		[]catalog.Entry{
			{ID: 0, Name: "None"},
			{ID: 33, Name: "Tackle"},
			{ID: 85, Name: "Thunderbolt"},
		},
		[]catalog.Entry{
			{ID: 1, Name: "Master Ball"},
			{ID: 50, Name: "Rare Candy"},
			{ID: 626, Name: "Dropped Item"},
			{ID: 627, Name: "Dropped Item"},
			{ID: 638, Name: "Reveal Glass"},
		},
		[]catalog.Region{
			{ID: 1, Name: "Japan", Subregions: []catalog.Entry{{ID: 2, Name: "Tokyo"}, {ID: 28, Name: "Osaka"}}},
			{ID: 98, Name: "Iceland"},
			{ID: 49, Name: "United States", Subregions: []catalog.Entry{{ID: 45, Name: "Texas"}, {ID: 6, Name: "California"}}},
		},
	)
}

// CreateTestEncounter creates an encounter with the default move and animation
func CreateTestEncounter(species, form int) profile.Encounter {
	return profile.Encounter{
		Species:   species,
		Move:      33,
		Form:      form,
		Gender:    profile.GenderGenderless,
		Animation: profile.AnimationLookAround,
	}
}

// CreateTestVisitor creates a visitor from Japan
func CreateTestVisitor(name string) profile.Visitor {
	v := profile.DefaultVisitor()
	v.Name = name
	v.StateProvinceCode = 2
	return v
}

// CreateTestDocument creates a profile with a few occupied slots of each kind
func CreateTestDocument(gameVersion string) *profile.Document {
	return &profile.Document{
		GameVersion:   gameVersion,
		DreamerSprite: "/sprites/pokemon/normal/25.png",
		DreamerInfo: &profile.DreamerInfo{
			Nickname:    "PIKACHU",
			TrainerName: "Hilda",
			Nature:      "HARDY",
			Gender:      profile.GenderFemale,
			Species:     25,
			TrainerID:   1234,
			Level:       12,
		},
		CGearSkin:    "forest.bin",
		LevelsGained: 3,
		Encounters: []profile.Encounter{
			CreateTestEncounter(25, 0),
			CreateTestEncounter(201, 3),
		},
		Items: []profile.Item{
			{ID: 50, Quantity: 5},
		},
		AvenueVisitors: []profile.Visitor{
			CreateTestVisitor("Ash"),
		},
	}
}
