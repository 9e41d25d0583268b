package availability_test

import (
	"testing"

	"github.com/KirkDiggler/dream-bot-discord/internal/availability"
	"github.com/stretchr/testify/assert"
)

func TestTierForVersion(t *testing.T) {
	assert.Equal(t, availability.TierOriginal, availability.TierForVersion("White Version"))
	assert.Equal(t, availability.TierExtended, availability.TierForVersion("Black Version 2"))
	assert.Equal(t, availability.TierExtended, availability.TierForVersion("ブラック2"))
	assert.Equal(t, availability.TierOriginal, availability.TierForVersion(""))
}

func TestSpeciesRule(t *testing.T) {
	tests := []struct {
		name string
		id   int
		tier availability.Tier
		want bool
	}{
		{"below threshold original", 25, availability.TierOriginal, true},
		{"threshold edge original", 493, availability.TierOriginal, true},
		{"gen v whitelisted but original tier", 600, availability.TierOriginal, false},
		{"gen v whitelisted extended tier", 600, availability.TierExtended, true},
		{"gen v not whitelisted extended tier", 494, availability.TierExtended, false},
		{"gen v not whitelisted original tier", 649, availability.TierOriginal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.Species.IsAvailable(tt.id, tt.tier))
		})
	}
}

func TestItemRule(t *testing.T) {
	assert.True(t, availability.Items.IsAvailable(626, availability.TierOriginal))
	assert.False(t, availability.Items.IsAvailable(627, availability.TierOriginal))
	assert.True(t, availability.Items.IsAvailable(638, availability.TierExtended))
	assert.False(t, availability.Items.IsAvailable(639, availability.TierExtended))
}

func TestRule_Filter(t *testing.T) {
	ids := []int{1, 600, 493, 505, 700}

	assert.Equal(t, []int{1, 493}, availability.Species.Filter(ids, availability.TierOriginal))
	assert.Equal(t, []int{1, 600, 493, 505}, availability.Species.Filter(ids, availability.TierExtended))
}

func TestSet_IDs(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, availability.NewSet(3, 1, 2).IDs())
	assert.Len(t, availability.DownloadableGenerationV, 53)
}
