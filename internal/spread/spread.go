// Package spread holds the spread configuration: for each spread type, the
// ordered position keys to display and a title.
package spread

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/arcana/pkg/core"
)

// ErrUnknownKey marks a configured key that the engine does not compute.
var ErrUnknownKey = errors.New("unknown position key")

// UnknownKeyError reports one configured key with no computed position.
type UnknownKeyError struct {
	Spread core.SpreadType
	Key    core.PositionKey
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("spread %s lists position %s, which is never computed", e.Spread, e.Key)
}

// Unwrap lets errors.Is match ErrUnknownKey.
func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}

// Layout is one spread's display configuration.
type Layout struct {
	Title string
	Keys  []core.PositionKey
}

// Config maps each spread type to its layout. Values are never mutated
// after construction; accessors return copies.
type Config struct {
	layouts map[core.SpreadType]Layout
}

// Defaults returns the canonical layouts. Positions 19-21 are computed but
// shown by no spread.
func Defaults() *Config {
	return &Config{layouts: map[core.SpreadType]Layout{
		core.SpreadIndividual: {
			Title: "Individual personality portrait",
			Keys:  keys("1", "2", "3", "4", "5", "6", "7", "8", "12", "13", "14"),
		},
		core.SpreadShadow: {
			Title: "Shadow personality portrait",
			Keys: keys("1", "2", "3", "4", "5", "6", "7", "8",
				"22", "23", "24", "25", "26", "27", "28", "29", "4.1", "28.1"),
		},
		core.SpreadKarma: {
			Title: "Karmic personality portrait",
			Keys:  keys("1", "2", "2.1", "3", "9", "10", "11", "13", "15", "15.1", "16", "17", "18"),
		},
	}}
}

func keys(ks ...string) []core.PositionKey {
	out := make([]core.PositionKey, len(ks))
	for i, k := range ks {
		out[i] = core.PositionKey(k)
	}
	return out
}

// FromMap overlays key lists onto the defaults. Map keys are spread names,
// values are position keys in display order. A spread absent from the map
// keeps its default list.
func FromMap(overrides map[string][]string) (*Config, error) {
	cfg := Defaults()
	for name, list := range overrides {
		spread, err := core.ParseSpreadType(name)
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("spread %s: empty position list", spread)
		}

		parsed := make([]core.PositionKey, 0, len(list))
		seen := make(map[core.PositionKey]bool, len(list))
		for _, raw := range list {
			key, err := core.ParsePositionKey(raw)
			if err != nil {
				return nil, fmt.Errorf("spread %s: %w", spread, err)
			}
			if seen[key] {
				return nil, fmt.Errorf("spread %s: position %s listed twice", spread, key)
			}
			seen[key] = true
			parsed = append(parsed, key)
		}

		layout := cfg.layouts[spread]
		layout.Keys = parsed
		cfg.layouts[spread] = layout
	}
	return cfg, nil
}

// Keys returns the display order for a spread.
func (c *Config) Keys(spread core.SpreadType) []core.PositionKey {
	return append([]core.PositionKey(nil), c.layouts[spread].Keys...)
}

// Title returns a spread's heading.
func (c *Config) Title(spread core.SpreadType) string {
	if t := c.layouts[spread].Title; t != "" {
		return t
	}
	return cases.Title(language.English).String(spread.String()) + " portrait"
}

// Validate checks every configured key against the computed set. All
// problems are returned joined; callers may log and carry on, since an
// unknown key only costs its own slot.
func (c *Config) Validate(known []core.PositionKey) error {
	knownSet := make(map[core.PositionKey]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}

	var errs []error
	for _, spread := range core.AllSpreads() {
		for _, key := range c.layouts[spread].Keys {
			if !knownSet[key] {
				errs = append(errs, &UnknownKeyError{Spread: spread, Key: key})
			}
		}
	}
	return errors.Join(errs...)
}
