package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomID_Encode(t *testing.T) {
	tests := []struct {
		name     string
		customID *CustomID
		expected string
		wantErr  bool
	}{
		{
			name:     "domain and action",
			customID: &CustomID{Domain: "dream", Action: "push"},
			expected: "dream:push",
		},
		{
			name:     "with target",
			customID: &CustomID{Domain: "dream", Action: "grid", Target: "items"},
			expected: "dream:grid:items",
		},
		{
			name:     "with args",
			customID: &CustomID{Domain: "dream", Action: "edit", Target: "encounters", Args: []string{"3"}},
			expected: "dream:edit:encounters:3",
		},
		{
			name:     "args without target keep their position",
			customID: &CustomID{Domain: "dream", Action: "page", Args: []string{"2"}},
			expected: "dream:page::2",
		},
		{
			name:     "separator inside a part",
			customID: &CustomID{Domain: "dream", Action: "dlc", Target: "a:b"},
			wantErr:  true,
		},
		{
			name:     "missing action",
			customID: &CustomID{Domain: "dream"},
			wantErr:  true,
		},
		{
			name:     "exceeds max length",
			customID: &CustomID{Domain: "dream", Action: "edit", Target: strings.Repeat("x", 120)},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.customID.Encode()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCustomID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *CustomID
		wantErr  bool
	}{
		{
			name:     "domain and action",
			input:    "dream:push",
			expected: &CustomID{Domain: "dream", Action: "push"},
		},
		{
			name:     "target and args",
			input:    "dream:edit:visitors:11",
			expected: &CustomID{Domain: "dream", Action: "edit", Target: "visitors", Args: []string{"11"}},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "domain only",
			input:   "dream",
			wantErr: true,
		},
		{
			name:    "empty action",
			input:   "dream::items",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCustomID(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCustomID_RoundTrip(t *testing.T) {
	id := NewCustomIDBuilder("dream").ID("field", "encounters", "gender")

	parsed, err := ParseCustomID(id)
	require.NoError(t, err)

	assert.Equal(t, "dream", parsed.Domain)
	assert.Equal(t, "field", parsed.Action)
	assert.Equal(t, "encounters", parsed.Target)
	assert.Equal(t, "gender", parsed.Arg(0))
	assert.Equal(t, "", parsed.Arg(1))
}

func TestCustomIDMatcher(t *testing.T) {
	exact := NewCustomIDMatcher("dream", "edit")
	wildcard := NewCustomIDMatcher("dream", "*")

	assert.True(t, exact.Matches("dream:edit:items:0"))
	assert.False(t, exact.Matches("dream:grid:items"))
	assert.False(t, exact.Matches("other:edit:items:0"))
	assert.True(t, wildcard.Matches("dream:grid:items"))
	assert.False(t, wildcard.Matches("garbage"))

	parsed, ok := exact.Extract("dream:edit:items:4")
	require.True(t, ok)
	assert.Equal(t, "4", parsed.Arg(0))
}
