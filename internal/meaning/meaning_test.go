package meaning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)
	return c
}

func TestLoad_JSONAndYAML(t *testing.T) {
	c := loadTestCatalog(t)
	assert.Equal(t, 3, c.Len())

	y, err := Load(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2, y.Len())
	assert.Equal(t, "The Fool", y.Name(0))
	assert.Equal(t,
		"Talent shows early and asks to be used.",
		y.Resolve(1, "1", core.SpreadIndividual))
}

func TestLoad_Failures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "malformed json", file: "bad.json", content: `{"arcana": [`},
		{name: "empty arcana", file: "empty.json", content: `{"arcana": []}`},
		{name: "missing arcana key", file: "other.json", content: `{"cards": [{"id": 1}]}`},
		{name: "id out of range", file: "range.json", content: `{"arcana": [{"id": 23, "name": "X", "meanings": {}}]}`},
		{name: "duplicate id", file: "dup.yaml", content: "arcana:\n  - {id: 1, name: A, meanings: {}}\n  - {id: 1, name: B, meanings: {}}\n"},
		{name: "no name", file: "noname.json", content: `{"arcana": [{"id": 3, "meanings": {}}]}`},
		{name: "no meanings", file: "nomeanings.json", content: `{"arcana": [{"id": 3, "name": "Empress"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			c, err := Load(path)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrCatalogUnavailable), "got %v", err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), Format("toml"))
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a/arcana.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("arcana.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("arcana.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("arcana"))
}

func TestResolve_FallbackChain(t *testing.T) {
	c := loadTestCatalog(t)

	tests := []struct {
		name   string
		card   int
		key    core.PositionKey
		spread core.SpreadType
		want   string
	}{
		{
			name: "exact key", card: 1, key: "1", spread: core.SpreadIndividual,
			want: "Talent shows early and asks to be used.",
		},
		{
			name: "dotted key falls back to base", card: 1, key: "4.1", spread: core.SpreadShadow,
			want: "Manipulation of the people closest to you.",
		},
		{
			name: "blank text falls through to default", card: 7, key: "2", spread: core.SpreadIndividual,
			want: "Drive and forward motion.",
		},
		{
			name: "month key uses base meaning", card: 7, key: core.MonthKey, spread: core.SpreadKarma,
			want: "Debts tied to conquest.",
		},
		{
			name: "spread default", card: 1, key: "13", spread: core.SpreadKarma,
			want: "A past life spent misusing a gift.",
		},
		{
			name: "empty spread has no default", card: 7, key: "4", spread: core.SpreadShadow,
			want: NoInformation,
		},
		{
			name: "missing card", card: 5, key: "1", spread: core.SpreadIndividual,
			want: NoInformation,
		},
		{
			name: "card zero wraps to 22", card: 0, key: "3", spread: core.SpreadShadow,
			want: "Recklessness.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Resolve(tt.card, tt.key, tt.spread))
		})
	}
}

func TestResolve_NeverBorrowsAnotherSpread(t *testing.T) {
	c, err := NewCatalog([]Card{{
		ID:   9,
		Name: "The Hermit",
		Meanings: map[core.SpreadType]map[string]string{
			core.SpreadIndividual: {"5": "Individual text", DefaultKey: "Individual default"},
			core.SpreadKarma:      {DefaultKey: "Karma default"},
		},
	}})
	require.NoError(t, err)

	assert.Equal(t, "Karma default", c.Resolve(9, "5", core.SpreadKarma))
	assert.Equal(t, NoInformation, c.Resolve(9, "5", core.SpreadShadow))
}

func TestResolve_NilCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, NoInformation, c.Resolve(1, "1", core.SpreadIndividual))
	assert.Equal(t, NoShadowInformation, c.ShadowAspect(1))
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Cards())
}

func TestShadowAspect(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Equal(t, "Trickery and scattered effort.", c.ShadowAspect(1))
	assert.Equal(t, NoShadowInformation, c.ShadowAspect(7))
	assert.Equal(t, "Recklessness.", c.ShadowAspect(0))
	assert.Equal(t, NoShadowInformation, c.ShadowAspect(12))
}

func TestNames(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Equal(t, "The Magician", c.Name(1))
	assert.Equal(t, "The Fool", c.Name(0))
	assert.Equal(t, "Arcana 5", c.Name(5))
	assert.Equal(t, "Arcana 22", UnknownName(0))
}

func TestCards_Ordered(t *testing.T) {
	c := loadTestCatalog(t)
	cards := c.Cards()
	require.Len(t, cards, 3)
	assert.Equal(t, []int{1, 7, 22}, []int{cards[0].ID, cards[1].ID, cards[2].ID})
}

func TestCatalog_IsolatedFromInput(t *testing.T) {
	texts := map[string]string{DefaultKey: "original"}
	c, err := NewCatalog([]Card{{
		ID: 3, Name: "The Empress",
		Meanings: map[core.SpreadType]map[string]string{core.SpreadIndividual: texts},
	}})
	require.NoError(t, err)

	texts[DefaultKey] = "mutated"
	assert.Equal(t, "original", c.Resolve(3, "1", core.SpreadIndividual))
}

func TestDisplayNumeral(t *testing.T) {
	positions := core.Positions{"1": 0, "2": 7, core.MonthKey: 7, "3": 21}

	assert.Equal(t, 22, DisplayNumeral("1", positions))
	assert.Equal(t, 7, DisplayNumeral("2", positions))
	assert.Equal(t, 21, DisplayNumeral("3", positions))
	assert.Equal(t, 7, DisplayNumeral(core.MonthKey, positions))
}
