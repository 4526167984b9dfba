package core

import (
	"fmt"
	"strings"
)

// SpreadType selects which positions are displayed and which catalog
// sub-dictionary supplies their meanings.
type SpreadType string

// Spread types.
const (
	SpreadIndividual SpreadType = "individual"
	SpreadShadow     SpreadType = "shadow"
	SpreadKarma      SpreadType = "karma"
)

// AllSpreads lists the spread types in menu order.
func AllSpreads() []SpreadType {
	return []SpreadType{SpreadIndividual, SpreadShadow, SpreadKarma}
}

// ParseSpreadType converts a string to a SpreadType.
// "karmic" is accepted as an alias for karma.
func ParseSpreadType(s string) (SpreadType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "individual":
		return SpreadIndividual, nil
	case "shadow":
		return SpreadShadow, nil
	case "karma", "karmic":
		return SpreadKarma, nil
	default:
		return "", fmt.Errorf("unknown spread type %q (want individual, shadow or karma)", s)
	}
}

// Next returns the spread following s in menu order, wrapping around.
func (s SpreadType) Next() SpreadType {
	all := AllSpreads()
	for i, t := range all {
		if t == s {
			return all[(i+1)%len(all)]
		}
	}
	return SpreadIndividual
}

// String returns the spread name.
func (s SpreadType) String() string {
	return string(s)
}
