package profile_test

import (
	"testing"

	"github.com/KirkDiggler/dream-bot-discord/internal/availability"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
	"github.com/KirkDiggler/dream-bot-discord/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_SpeciesAvailable(t *testing.T) {
	original := profile.NewRules(testutils.CreateTestCatalog(), availability.TierOriginal)
	extended := profile.NewRules(testutils.CreateTestCatalog(), availability.TierExtended)

	testCases := []struct {
		name     string
		species  int
		original bool
		extended bool
	}{
		{name: "generation one", species: 25, original: true, extended: true},
		{name: "not downloadable", species: 151, original: false, extended: false},
		{name: "generation five whitelisted", species: 600, original: false, extended: true},
		{name: "generation five not whitelisted", species: 495, original: false, extended: false},
		{name: "unknown to catalog below threshold", species: 300, original: true, extended: true},
		{name: "zero", species: 0, original: false, extended: false},
		{name: "out of range", species: 650, original: false, extended: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.original, original.SpeciesAvailable(tc.species))
			assert.Equal(t, tc.extended, extended.SpeciesAvailable(tc.species))
		})
	}
}

func TestRules_Options(t *testing.T) {
	original := profile.NewRules(testutils.CreateTestCatalog(), availability.TierOriginal)
	extended := profile.NewRules(testutils.CreateTestCatalog(), availability.TierExtended)

	names := func(r *profile.Rules) []string {
		out := make([]string, 0)
		for _, s := range r.SpeciesOptions() {
			out = append(out, s.Name)
		}
		return out
	}
	items := func(r *profile.Rules) []int {
		out := make([]int, 0)
		for _, item := range r.ItemOptions() {
			out = append(out, item.ID)
		}
		return out
	}

	assert.Equal(t, []string{"Bulbasaur", "Pikachu", "Shellos", "Unown"}, names(original))
	assert.Equal(t, []string{"Bulbasaur", "Klang", "Pikachu", "Shellos", "Unown"}, names(extended))
	assert.Equal(t, []int{626, 1, 50}, items(original))
	assert.Equal(t, []int{626, 627, 1, 50, 638}, items(extended))
}

func TestRules_ValidateEncounter(t *testing.T) {
	r := profile.NewRules(testutils.CreateTestCatalog(), availability.TierOriginal)

	t.Run("clamps form", func(t *testing.T) {
		e, err := r.ValidateEncounter(testutils.CreateTestEncounter(201, 27), 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, e.Form)

		e, err = r.ValidateEncounter(testutils.CreateTestEncounter(25, 2), 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, e.Form)
	})

	t.Run("defaults gender and animation", func(t *testing.T) {
		e, err := r.ValidateEncounter(profile.Encounter{Species: 25}, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, profile.GenderGenderless, e.Gender)
		assert.Equal(t, profile.AnimationLookAround, e.Animation)
	})

	t.Run("rejects unavailable species", func(t *testing.T) {
		_, err := r.ValidateEncounter(testutils.CreateTestEncounter(600, 0), 0, nil)
		require.Error(t, err)
		assert.True(t, dnderr.IsValidation(err))
		assert.Equal(t, 600, dnderr.GetMeta(err)["species"])
	})

	t.Run("rejects move out of range", func(t *testing.T) {
		e := testutils.CreateTestEncounter(25, 0)
		e.Move = 560
		_, err := r.ValidateEncounter(e, 0, nil)
		assert.True(t, dnderr.IsValidation(err))
	})

	t.Run("rejects unknown animation", func(t *testing.T) {
		e := testutils.CreateTestEncounter(25, 0)
		e.Animation = "DANCE"
		_, err := r.ValidateEncounter(e, 0, nil)
		assert.True(t, dnderr.IsValidation(err))
	})
}

func TestRules_ValidateItem(t *testing.T) {
	r := profile.NewRules(testutils.CreateTestCatalog(), availability.TierOriginal)

	item, err := r.ValidateItem(profile.Item{ID: 50, Quantity: 99}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, item.Quantity)

	item, err = r.ValidateItem(profile.Item{ID: 50, Quantity: 0}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	_, err = r.ValidateItem(profile.Item{ID: 638, Quantity: 1}, 0, nil)
	assert.True(t, dnderr.IsValidation(err))
}

func TestRules_ValidateVisitor(t *testing.T) {
	r := profile.NewRules(testutils.CreateTestCatalog(), availability.TierExtended)
	existing := []profile.Visitor{testutils.CreateTestVisitor("Ash"), testutils.CreateTestVisitor("Misty")}

	t.Run("empty name", func(t *testing.T) {
		_, err := r.ValidateVisitor(testutils.CreateTestVisitor(""), 2, existing)
		require.Error(t, err)
		assert.Equal(t, profile.MsgVisitorNameRequired, dnderr.UserMessage(err))
	})

	t.Run("duplicate of another slot", func(t *testing.T) {
		_, err := r.ValidateVisitor(testutils.CreateTestVisitor("Ash"), 1, existing)
		require.Error(t, err)
		assert.Equal(t, profile.MsgVisitorNameTaken, dnderr.UserMessage(err))
	})

	t.Run("same name on own slot", func(t *testing.T) {
		_, err := r.ValidateVisitor(testutils.CreateTestVisitor("Ash"), 0, existing)
		assert.NoError(t, err)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		_, err := r.ValidateVisitor(testutils.CreateTestVisitor("ash"), 2, existing)
		assert.NoError(t, err)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := r.ValidateVisitor(testutils.CreateTestVisitor("Brockster"), 2, existing)
		assert.True(t, dnderr.IsValidation(err))
	})

	t.Run("name length counts utf-16 units", func(t *testing.T) {
		// six runes, nine code units
		_, err := r.ValidateVisitor(testutils.CreateTestVisitor("Ann😀😀😀"), 2, existing)
		assert.True(t, dnderr.IsValidation(err))

		_, err = r.ValidateVisitor(testutils.CreateTestVisitor("Zoé😀"), 2, existing)
		assert.NoError(t, err)
	})

	t.Run("subregion must belong to the country", func(t *testing.T) {
		v := testutils.CreateTestVisitor("Brock")
		v.StateProvinceCode = 45
		_, err := r.ValidateVisitor(v, 2, existing)
		assert.True(t, dnderr.IsValidation(err))
	})

	t.Run("country without subregions", func(t *testing.T) {
		v := testutils.CreateTestVisitor("Brock")
		v.CountryCode = 98
		v.StateProvinceCode = 5
		v.Personality = 12
		out, err := r.ValidateVisitor(v, 2, existing)
		require.NoError(t, err)
		assert.Equal(t, 0, out.StateProvinceCode)
		assert.Equal(t, 7, out.Personality)
	})

	t.Run("unknown type", func(t *testing.T) {
		v := testutils.CreateTestVisitor("Brock")
		v.Type = "GYM_LEADER"
		_, err := r.ValidateVisitor(v, 2, existing)
		assert.True(t, dnderr.IsValidation(err))
	})
}

func TestNameLength(t *testing.T) {
	assert.Equal(t, 3, profile.NameLength("Ash"))
	assert.Equal(t, 3, profile.NameLength("Zoé"))
	assert.Equal(t, 2, profile.NameLength("😀"))
	assert.Equal(t, 0, profile.NameLength(""))
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 0, profile.ClampGainedLevels(-5))
	assert.Equal(t, 99, profile.ClampGainedLevels(150))
	assert.Equal(t, 42, profile.ClampGainedLevels(42))
	assert.Equal(t, 0, profile.ClampPersonality(-1))
	assert.Equal(t, 1, profile.ClampQuantity(-3))
	assert.Equal(t, 2, profile.ClampForm(2, 3))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Ace Trainer Male", profile.VisitorAceTrainerMale.String())
	assert.Equal(t, "Black 2 English", profile.GameVersion("BLACK_2_ENGLISH").String())
	assert.Len(t, profile.GameVersions, 28)
	assert.Len(t, profile.VisitorTypes, 16)
	assert.Len(t, profile.Animations, 8)
}
