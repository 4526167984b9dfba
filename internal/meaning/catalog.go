// Package meaning resolves display text for a card at a position.
//
// The catalog is external, read-only data: one record per card with a name
// and, per spread type, a map from position key to text plus a "default"
// entry. It is loaded once and never mutated afterwards.
package meaning

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/arcana/pkg/core"
	"gopkg.in/yaml.v3"
)

// ErrCatalogUnavailable is returned when the catalog cannot be read or is
// malformed. Nothing should be rendered without a catalog.
var ErrCatalogUnavailable = errors.New("meaning catalog unavailable")

// DefaultKey is the per-spread fallback entry.
const DefaultKey = "default"

// FoolID is the catalog id of the card whose normalized id is 0.
const FoolID = 22

// Format is a catalog file encoding.
type Format string

// Supported catalog formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension; JSON unless .yaml/.yml.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Card is one catalog record.
type Card struct {
	ID       int                                  `json:"id" yaml:"id"`
	Name     string                               `json:"name" yaml:"name"`
	Meanings map[core.SpreadType]map[string]string `json:"meanings" yaml:"meanings"`
}

// document is the on-disk shape: {"arcana": [...]}.
type document struct {
	Arcana []Card `json:"arcana" yaml:"arcana"`
}

// Catalog is an immutable, id-indexed set of cards.
type Catalog struct {
	cards map[int]Card
}

// NewCatalog validates cards and builds a catalog.
func NewCatalog(cards []Card) (*Catalog, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no arcana records", ErrCatalogUnavailable)
	}

	c := &Catalog{cards: make(map[int]Card, len(cards))}
	for i, card := range cards {
		if card.ID < 0 || card.ID > FoolID {
			return nil, fmt.Errorf("%w: record %d has id %d outside 0..%d", ErrCatalogUnavailable, i, card.ID, FoolID)
		}
		if _, dup := c.cards[card.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrCatalogUnavailable, card.ID)
		}
		if strings.TrimSpace(card.Name) == "" {
			return nil, fmt.Errorf("%w: record %d (id %d) has no name", ErrCatalogUnavailable, i, card.ID)
		}
		if card.Meanings == nil {
			return nil, fmt.Errorf("%w: card %d has no meanings", ErrCatalogUnavailable, card.ID)
		}
		c.cards[card.ID] = copyCard(card)
	}
	return c, nil
}

// Parse decodes a catalog document.
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrCatalogUnavailable, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return NewCatalog(doc.Arcana)
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user config
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	c, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Card returns the record for a normalized card id. Id 0 is looked up as
// itself first and then as card 22.
func (c *Catalog) Card(cardID int) (Card, bool) {
	if c == nil {
		return Card{}, false
	}
	if card, ok := c.cards[cardID]; ok {
		return card, true
	}
	if cardID == 0 {
		card, ok := c.cards[FoolID]
		return card, ok
	}
	return Card{}, false
}

// Cards returns all records ordered by id.
func (c *Catalog) Cards() []Card {
	if c == nil {
		return nil
	}
	ids := make([]int, 0, len(c.cards))
	for id := range c.cards {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	cards := make([]Card, len(ids))
	for i, id := range ids {
		cards[i] = c.cards[id]
	}
	return cards
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.cards)
}

func copyCard(card Card) Card {
	out := Card{ID: card.ID, Name: card.Name, Meanings: make(map[core.SpreadType]map[string]string, len(card.Meanings))}
	for spread, texts := range card.Meanings {
		m := make(map[string]string, len(texts))
		for k, v := range texts {
			m[k] = v
		}
		out.Meanings[spread] = m
	}
	return out
}
