package core

// Request is one immutable calculation request.
type Request struct {
	Day    int
	Month  int
	Year   int
	Spread SpreadType
}

// Slot is one displayed position of a portrait.
type Slot struct {
	Key          PositionKey `json:"position"`
	CardID       int         `json:"card_id"`
	Name         string      `json:"name"`
	Numeral      int         `json:"numeral"`
	Meaning      string      `json:"meaning"`
	ShadowAspect string      `json:"shadow_aspect,omitempty"`
}

// Portrait is a rendered spread.
type Portrait struct {
	Spread SpreadType `json:"spread"`
	Title  string     `json:"title"`
	Slots  []Slot     `json:"slots"`
	// Skipped lists spread keys that had no computed value.
	Skipped []PositionKey `json:"skipped,omitempty"`
}
