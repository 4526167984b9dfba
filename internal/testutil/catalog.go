package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/arcana/internal/meaning"
	"github.com/leapstack-labs/arcana/pkg/core"
)

// Cards returns every card 1..22 named "Card N" with a default meaning per
// spread of the form "<spread> default N".
func Cards() []meaning.Card {
	cards := make([]meaning.Card, 0, meaning.FoolID)
	for id := 1; id <= meaning.FoolID; id++ {
		m := make(map[core.SpreadType]map[string]string, 3)
		for _, s := range core.AllSpreads() {
			m[s] = map[string]string{meaning.DefaultKey: fmt.Sprintf("%s default %d", s, id)}
		}
		cards = append(cards, meaning.Card{ID: id, Name: fmt.Sprintf("Card %d", id), Meanings: m})
	}
	return cards
}

// NewCatalog builds a catalog from Cards.
func NewCatalog(t testing.TB) *meaning.Catalog {
	t.Helper()
	c, err := meaning.NewCatalog(Cards())
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

// WriteCatalog writes Cards as arcana.json into dir and returns its path.
func WriteCatalog(t testing.TB, dir string) string {
	t.Helper()
	data, err := json.Marshal(struct {
		Arcana []meaning.Card `json:"arcana"`
	}{Cards()})
	if err != nil {
		t.Fatalf("failed to encode catalog: %v", err)
	}
	path := filepath.Join(dir, "arcana.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}
