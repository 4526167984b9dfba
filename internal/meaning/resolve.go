package meaning

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/arcana/pkg/core"
)

// Fallback texts.
const (
	NoInformation       = "No information"
	NoShadowInformation = "no information"
)

// Resolve returns the text for a card at a position within a spread.
//
// Lookup order: the exact key, the base of a dotted key, the spread's
// default, then NoInformation. Only the given spread's texts are consulted.
func (c *Catalog) Resolve(cardID int, key core.PositionKey, spread core.SpreadType) string {
	card, ok := c.Card(cardID)
	if !ok {
		return NoInformation
	}
	return card.Resolve(key, spread)
}

// Resolve applies the lookup chain to a single card.
func (card Card) Resolve(key core.PositionKey, spread core.SpreadType) string {
	texts := card.Meanings[spread]
	if texts == nil {
		return NoInformation
	}
	if text := texts[key.String()]; strings.TrimSpace(text) != "" {
		return text
	}
	if key.IsSecondary() {
		if text := texts[key.Base().String()]; strings.TrimSpace(text) != "" {
			return text
		}
	}
	if text, ok := texts[DefaultKey]; ok && text != "" {
		return text
	}
	return NoInformation
}

// ShadowAspect returns the card's shadow default, shown as a secondary text
// on shadow spread slots.
func (c *Catalog) ShadowAspect(cardID int) string {
	card, ok := c.Card(cardID)
	if !ok {
		return NoShadowInformation
	}
	if text := card.Meanings[core.SpreadShadow][DefaultKey]; text != "" {
		return text
	}
	return NoShadowInformation
}

// Name returns the card name, or a generic label when the card is missing.
func (c *Catalog) Name(cardID int) string {
	if card, ok := c.Card(cardID); ok {
		return card.Name
	}
	return UnknownName(cardID)
}

// UnknownName labels a card id the catalog does not know.
func UnknownName(cardID int) string {
	return "Arcana " + strconv.Itoa(DisplayCard(cardID))
}

// DisplayCard maps the internal id 0 to its displayed numeral 22.
func DisplayCard(cardID int) int {
	if cardID == 0 {
		return FoolID
	}
	return cardID
}

// DisplayNumeral returns the numeral shown for a position. The month position
// shows the raw month from the mapping whatever the catalog says; every other
// position shows its card, with 0 rendered as 22.
func DisplayNumeral(key core.PositionKey, positions core.Positions) int {
	value := positions[key]
	if key == core.MonthKey {
		return value
	}
	return DisplayCard(value)
}
