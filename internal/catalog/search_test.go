package catalog_test

import (
	"testing"

	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchCatalog() *catalog.Catalog {
	return catalog.New(
		[]catalog.Species{
			{ID: 25, Name: "Pikachu"},
			{ID: 172, Name: "Pichu"},
			{ID: 201, Name: "Unown"},
			{ID: 600, Name: "Klang"},
		},
		[]catalog.Entry{{ID: 85, Name: "Thunderbolt"}, {ID: 84, Name: "Thunder Shock"}},
		nil,
		[]catalog.Region{{ID: 49, Name: "United States"}, {ID: 110, Name: "United Kingdom"}},
	)
}

func TestSearchSpecies_Exact(t *testing.T) {
	matches := searchCatalog().SearchSpecies("pikachu", 5)

	require.NotEmpty(t, matches)
	assert.Equal(t, 25, matches[0].ID)
	assert.Equal(t, 1.0, matches[0].Score)
}

func TestSearchSpecies_ByID(t *testing.T) {
	matches := searchCatalog().SearchSpecies("#600", 5)

	require.Len(t, matches, 1)
	assert.Equal(t, "Klang", matches[0].Name)
}

func TestSearchSpecies_Typo(t *testing.T) {
	matches := searchCatalog().SearchSpecies("Pikacu", 5)

	require.NotEmpty(t, matches)
	assert.Equal(t, 25, matches[0].ID)
}

func TestSearchSpecies_Prefix(t *testing.T) {
	matches := searchCatalog().SearchSpecies("Pi", 5)

	require.Len(t, matches, 2)
	ids := []int{matches[0].ID, matches[1].ID}
	assert.ElementsMatch(t, []int{25, 172}, ids)
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, searchCatalog().SearchSpecies("zzzzzzzzzz", 5))
	assert.Empty(t, searchCatalog().SearchSpecies("   ", 5))
}

func TestSearch_Limit(t *testing.T) {
	matches := searchCatalog().SearchMoves("thunder", 1)

	require.Len(t, matches, 1)
}

func TestSearchRegions_Substring(t *testing.T) {
	matches := searchCatalog().SearchRegions("kingdom", 5)

	require.NotEmpty(t, matches)
	assert.Equal(t, 110, matches[0].ID)
}

func TestSearchSubregions(t *testing.T) {
	r := catalog.Region{ID: 49, Subregions: []catalog.Entry{{ID: 45, Name: "Texas"}, {ID: 6, Name: "California"}}}

	matches := catalog.SearchSubregions(r, "texs", 3)

	require.NotEmpty(t, matches)
	assert.Equal(t, 45, matches[0].ID)
}
