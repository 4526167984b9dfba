// Package reduction turns a calendar date into the arcana position mapping.
//
// Every position is a card id in [0,21] obtained by modulo-22 reduction of a
// date field or of a combination of earlier positions. The set of positions
// and their inputs is declared in formulas.go and evaluated in dependency
// order; the whole mapping is recomputed on every call.
package reduction

import "strconv"

// Arcana is the number of cards; a reduced value of 22 wraps to 0.
const Arcana = 22

// Normalize reduces a non-negative integer to a card id in [0,21].
// Multiples of 22 (including 0 and 22 itself) map to 0, the internal
// representative of card 22. Negative input is outside the contract:
// positions built by subtraction take the absolute value first.
func Normalize(n int) int {
	n %= Arcana
	if n < 0 {
		n += Arcana
	}
	return n
}

// SumDigits returns the sum of the decimal digits of n, in a single pass.
// The result is not reduced further; callers normalize it.
func SumDigits(n int) int {
	sum := 0
	for _, r := range strconv.Itoa(abs(n)) {
		sum += int(r - '0')
	}
	return sum
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
