package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is one search hit
type Match struct {
	ID    int
	Name  string
	Score float64
}

type candidate struct {
	id   int
	name string
}

// SearchSpecies finds species by name or "#id"
func (c *Catalog) SearchSpecies(query string, limit int) []Match {
	cands := make([]candidate, 0, len(c.sortedSpecies))
	for _, s := range c.sortedSpecies {
		cands = append(cands, candidate{id: s.ID, name: s.Name})
	}
	return search(cands, query, limit)
}

// SearchMoves finds moves by name or "#id"
func (c *Catalog) SearchMoves(query string, limit int) []Match {
	return search(entryCandidates(c.sortedMoves), query, limit)
}

// SearchItems finds items by name or "#id"
func (c *Catalog) SearchItems(query string, limit int) []Match {
	return search(entryCandidates(c.sortedItems), query, limit)
}

// SearchRegions finds regions by name or "#id"
func (c *Catalog) SearchRegions(query string, limit int) []Match {
	cands := make([]candidate, 0, len(c.sortedRegions))
	for _, r := range c.sortedRegions {
		cands = append(cands, candidate{id: r.ID, name: r.Name})
	}
	return search(cands, query, limit)
}

// SearchSubregions finds a subregion of r by name or "#id"
func SearchSubregions(r Region, query string, limit int) []Match {
	return search(entryCandidates(SortedSubregions(r)), query, limit)
}

// SearchNames runs the same matching over an arbitrary id/name list
func SearchNames(entries []Entry, query string, limit int) []Match {
	return search(entryCandidates(entries), query, limit)
}

func entryCandidates(entries []Entry) []candidate {
	cands := make([]candidate, 0, len(entries))
	for _, e := range entries {
		cands = append(cands, candidate{id: e.ID, name: e.Name})
	}
	return cands
}

// search scores candidates: id or exact name 1.0, prefix 0.9, substring 0.8,
// otherwise a Levenshtein distance within a length-dependent limit.
func search(cands []candidate, query string, limit int) []Match {
	q := normalize(query)
	if q == "" {
		return nil
	}

	if id, ok := parseID(q); ok {
		for _, cand := range cands {
			if cand.id == id {
				return []Match{{ID: cand.id, Name: cand.name, Score: 1}}
			}
		}
	}

	results := make([]Match, 0)
	for _, cand := range cands {
		name := normalize(cand.name)
		var score float64
		switch {
		case name == q:
			score = 1
		case strings.HasPrefix(name, q) && len(q) >= 2:
			score = 0.9
		case strings.Contains(name, q) && len(q) >= 3:
			score = 0.8
		default:
			dist := levenshtein.ComputeDistance(q, name)
			if dist > distanceLimit(len(name)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, Match{ID: cand.id, Name: cand.name, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parseID(q string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(q, "#"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
