// Package catalog holds the static reference tables (species, moves, items,
// regions) the editor reads. The tables are opaque id-keyed lookups; a small
// default set is embedded and complete tables can be loaded from a directory.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

//go:embed data/*.json
var embedded embed.FS

const (
	speciesFile = "species.json"
	movesFile   = "moves.json"
	itemsFile   = "items.json"
	regionsFile = "regions.json"
)

// Entry is a plain id/name pair (moves, items, subregions)
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Species describes one Pokémon species
type Species struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Downloadable bool     `json:"downloadable"`
	Forms        []string `json:"forms,omitempty"`
}

// HasForms reports whether the species has alternate forms
func (s Species) HasForms() bool {
	return len(s.Forms) > 0
}

// MaxForm returns the highest valid form index
func (s Species) MaxForm() int {
	if len(s.Forms) == 0 {
		return 0
	}
	return len(s.Forms) - 1
}

// FormName returns the display name of a form, or "N/A" when the species has none
func (s Species) FormName(form int) string {
	if form < 0 || form >= len(s.Forms) {
		return "N/A"
	}
	return s.Forms[form]
}

// Region is a country with optional subregions (state/province)
type Region struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Subregions []Entry `json:"subregions,omitempty"`
}

// HasSubregions reports whether the region has subregions
func (r Region) HasSubregions() bool {
	return len(r.Subregions) > 0
}

// Subregion looks up a subregion by id
func (r Region) Subregion(id int) (Entry, bool) {
	for _, sub := range r.Subregions {
		if sub.ID == id {
			return sub, true
		}
	}
	return Entry{}, false
}

// Catalog is an immutable set of reference tables
type Catalog struct {
	species map[int]Species
	moves   map[int]Entry
	items   map[int]Entry
	regions map[int]Region

	// sorted views, built once
	sortedSpecies []Species
	sortedMoves   []Entry
	sortedItems   []Entry
	sortedRegions []Region
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
})

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return defaultCatalog()
}

// LoadDir loads the four tables from a directory on disk
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads species.json, moves.json, items.json and regions.json from fsys
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		species []Species
		moves   []Entry
		items   []Entry
		regions []Region
	)

	if err := readJSON(fsys, speciesFile, &species); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, movesFile, &moves); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, itemsFile, &items); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, regionsFile, &regions); err != nil {
		return nil, err
	}

	return New(species, moves, items, regions), nil
}

// New builds a catalog from in-memory tables
func New(species []Species, moves, items []Entry, regions []Region) *Catalog {
	c := &Catalog{
		species: make(map[int]Species, len(species)),
		moves:   make(map[int]Entry, len(moves)),
		items:   make(map[int]Entry, len(items)),
		regions: make(map[int]Region, len(regions)),
	}

	for _, s := range species {
		c.species[s.ID] = s
	}
	for _, m := range moves {
		c.moves[m.ID] = m
	}
	for _, i := range items {
		c.items[i.ID] = i
	}
	for _, r := range regions {
		c.regions[r.ID] = r
	}

	c.sortedSpecies = sortByName(mapValues(c.species), func(s Species) (string, int) { return s.Name, s.ID })
	c.sortedMoves = sortByName(mapValues(c.moves), func(e Entry) (string, int) { return e.Name, e.ID })
	c.sortedItems = sortByName(mapValues(c.items), func(e Entry) (string, int) { return e.Name, e.ID })
	c.sortedRegions = sortByName(mapValues(c.regions), func(r Region) (string, int) { return r.Name, r.ID })

	return c
}

func readJSON(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// Species looks up a species by id
func (c *Catalog) Species(id int) (Species, bool) {
	s, ok := c.species[id]
	return s, ok
}

// SpeciesName returns the display name or a placeholder for unknown ids
func (c *Catalog) SpeciesName(id int) string {
	if s, ok := c.species[id]; ok {
		return s.Name
	}
	return unknown(id)
}

// MaxForm returns the highest form index for a species, 0 if unknown
func (c *Catalog) MaxForm(species int) int {
	return c.species[species].MaxForm()
}

// Move looks up a move by id
func (c *Catalog) Move(id int) (Entry, bool) {
	m, ok := c.moves[id]
	return m, ok
}

// MoveName returns the display name or a placeholder for unknown ids
func (c *Catalog) MoveName(id int) string {
	if m, ok := c.moves[id]; ok {
		return m.Name
	}
	return unknown(id)
}

// Item looks up an item by id
func (c *Catalog) Item(id int) (Entry, bool) {
	i, ok := c.items[id]
	return i, ok
}

// ItemName returns the display name or a placeholder for unknown ids
func (c *Catalog) ItemName(id int) string {
	if i, ok := c.items[id]; ok {
		return i.Name
	}
	return unknown(id)
}

// Region looks up a region by id
func (c *Catalog) Region(id int) (Region, bool) {
	r, ok := c.regions[id]
	return r, ok
}

// RegionName returns the display name or a placeholder for unknown ids
func (c *Catalog) RegionName(id int) string {
	if r, ok := c.regions[id]; ok {
		return r.Name
	}
	return unknown(id)
}

// SortedSpecies returns every species ordered by name
func (c *Catalog) SortedSpecies() []Species {
	return c.sortedSpecies
}

// SortedMoves returns every move ordered by name
func (c *Catalog) SortedMoves() []Entry {
	return c.sortedMoves
}

// SortedItems returns every item ordered by name
func (c *Catalog) SortedItems() []Entry {
	return c.sortedItems
}

// SortedRegions returns every region ordered by name
func (c *Catalog) SortedRegions() []Region {
	return c.sortedRegions
}

// SortedSubregions returns a region's subregions ordered by name
func SortedSubregions(r Region) []Entry {
	return sortByName(append([]Entry(nil), r.Subregions...), func(e Entry) (string, int) { return e.Name, e.ID })
}

func unknown(id int) string {
	return fmt.Sprintf("Unknown (#%d)", id)
}

func mapValues[T any](m map[int]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// sortByName orders values by display name the way a browser's localeCompare
// would; equal names fall back to the id so the order is stable across runs.
func sortByName[T any](values []T, key func(T) (string, int)) []T {
	col := collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(values, func(i, j int) bool {
		a, aID := key(values[i])
		b, bID := key(values[j])
		if cmp := col.CompareString(a, b); cmp != 0 {
			return cmp < 0
		}
		return aID < bID
	})
	return values
}
