// Package availability decides which reference ids a player may pick for the
// game release their profile belongs to.
package availability

import (
	"sort"
	"strings"
)

// Tier is the release tier derived from the profile's game version.
type Tier int

const (
	// TierOriginal is Black Version / White Version
	TierOriginal Tier = iota
	// TierExtended is Black Version 2 / White Version 2
	TierExtended
)

func (t Tier) String() string {
	if t == TierExtended {
		return "extended"
	}
	return "original"
}

// TierForVersion derives the tier from a game version display string such as
// "White Version 2". Any version carrying a "2" marker is extended.
func TierForVersion(gameVersion string) Tier {
	if strings.Contains(gameVersion, "2") {
		return TierExtended
	}
	return TierOriginal
}

// Set is an immutable set of ids.
type Set map[int]struct{}

// NewSet builds a set from ids
func NewSet(ids ...int) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Range builds a set holding every id in [from, to]
func Range(from, to int) Set {
	s := make(Set, to-from+1)
	for id := from; id <= to; id++ {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports membership
func (s Set) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order
func (s Set) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Rule gates ids: anything below Threshold is available, anything at or above
// it only when whitelisted for the tier.
type Rule struct {
	Threshold int
	Whitelist map[Tier]Set
}

// IsAvailable applies the rule
func (r Rule) IsAvailable(id int, tier Tier) bool {
	if id < r.Threshold {
		return true
	}
	return r.Whitelist[tier].Contains(id)
}

// Filter keeps the available ids, preserving order
func (r Rule) Filter(ids []int, tier Tier) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if r.IsAvailable(id, tier) {
			out = append(out, id)
		}
	}
	return out
}

// DownloadableGenerationV lists the Generation V species that can be sent to
// the Dream World on Black 2 / White 2.
var DownloadableGenerationV = NewSet(
	505, 507, 510, 511, 513, 515, 519, 523, 525, 527, 529, 531, 533, 535, 538, 539, 542, 545, 546, 548,
	550, 553, 556, 558, 559, 561, 564, 569, 572, 575, 578, 580, 583, 587, 588, 594, 596, 600, 605, 607,
	610, 613, 616, 618, 619, 621, 622, 624, 626, 628, 630, 631, 632,
)

// Species ids above 493 only exist in the extended tier, and then only the
// downloadable ones.
var Species = Rule{
	Threshold: 494,
	Whitelist: map[Tier]Set{
		TierExtended: DownloadableGenerationV,
	},
}

// Items above 626 were added by Black 2 / White 2.
var Items = Rule{
	Threshold: 627,
	Whitelist: map[Tier]Set{
		TierExtended: Range(627, 638),
	},
}
