package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// =============================================================================
// Position keys
// =============================================================================

// PositionKey names a slot in the derivation graph.
// Primary keys are small integers ("1".."29"); secondary keys add a dotted
// suffix ("2.1", "4.1", "15.1", "28.1") and share the base slot's meanings.
type PositionKey string

// MonthKey is the display-only position carrying the raw birth month.
const MonthKey PositionKey = "2.1"

// Key builds a primary position key from its number.
func Key(n int) PositionKey {
	return PositionKey(strconv.Itoa(n))
}

// ParsePositionKey validates s as a position key.
func ParsePositionKey(s string) (PositionKey, error) {
	s = strings.TrimSpace(s)
	base, sub, dotted := strings.Cut(s, ".")
	if _, err := strconv.ParseUint(base, 10, 8); err != nil || base == "" {
		return "", fmt.Errorf("invalid position key %q", s)
	}
	if dotted {
		if _, err := strconv.ParseUint(sub, 10, 8); err != nil || sub == "" {
			return "", fmt.Errorf("invalid position key %q", s)
		}
	}
	return PositionKey(s), nil
}

// String returns the key as written in spread lists and catalogs.
func (k PositionKey) String() string {
	return string(k)
}

// IsSecondary reports whether the key has a dotted suffix.
func (k PositionKey) IsSecondary() bool {
	return strings.Contains(string(k), ".")
}

// Base returns the integer part of a dotted key, or the key itself.
func (k PositionKey) Base() PositionKey {
	base, _, _ := strings.Cut(string(k), ".")
	return PositionKey(base)
}

// Less orders keys numerically: "4" < "4.1" < "5" < "10".
func (k PositionKey) Less(other PositionKey) bool {
	kb, ks := k.parts()
	ob, os := other.parts()
	if kb != ob {
		return kb < ob
	}
	return ks < os
}

func (k PositionKey) parts() (int, int) {
	base, sub, _ := strings.Cut(string(k), ".")
	b, _ := strconv.Atoi(base)
	s, _ := strconv.Atoi(sub)
	return b, s
}

// SortKeys sorts keys in numeric order, in place.
func SortKeys(keys []PositionKey) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
}

// =============================================================================
// Positions
// =============================================================================

// Positions maps every computed key to its value. Values are card ids in
// [0,21] except MonthKey, which holds the raw month.
type Positions map[PositionKey]int

// Get returns the value for key and whether it was computed.
func (p Positions) Get(key PositionKey) (int, bool) {
	v, ok := p[key]
	return v, ok
}

// Keys returns all computed keys in numeric order.
func (p Positions) Keys() []PositionKey {
	keys := make([]PositionKey, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	SortKeys(keys)
	return keys
}
