package reduction

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/arcana/pkg/core"
)

// date carries the raw fields the level-0 positions read from.
type date struct {
	day, month, year int
}

// Formula describes how one position is computed.
type Formula struct {
	Key core.PositionKey
	// Inputs are the positions the formula reads; empty for date-based positions.
	Inputs []core.PositionKey
	// Expr is a human-readable rendering of the formula.
	Expr string

	eval func(d date, p core.Positions) int
}

func fromDate(key core.PositionKey, expr string, eval func(d date) int) Formula {
	return Formula{
		Key:  key,
		Expr: expr,
		eval: func(d date, _ core.Positions) int { return eval(d) },
	}
}

// sum is N(a + b + ...).
func sum(key core.PositionKey, inputs ...core.PositionKey) Formula {
	return Formula{
		Key:    key,
		Inputs: inputs,
		Expr:   "N(" + joinInputs(inputs, " + ") + ")",
		eval: func(_ date, p core.Positions) int {
			total := 0
			for _, in := range inputs {
				total += p[in]
			}
			return Normalize(total)
		},
	}
}

// diff is N(|a - b|).
func diff(key, a, b core.PositionKey) Formula {
	return Formula{
		Key:    key,
		Inputs: []core.PositionKey{a, b},
		Expr:   "N(|" + joinInputs([]core.PositionKey{a, b}, " - ") + "|)",
		eval: func(_ date, p core.Positions) int {
			return Normalize(abs(p[a] - p[b]))
		},
	}
}

// product is N(a * b).
func product(key, a, b core.PositionKey) Formula {
	return Formula{
		Key:    key,
		Inputs: []core.PositionKey{a, b},
		Expr:   "N(" + joinInputs([]core.PositionKey{a, b}, " * ") + ")",
		eval: func(_ date, p core.Positions) int {
			return Normalize(p[a] * p[b])
		},
	}
}

func joinInputs(keys []core.PositionKey, sep string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = "p" + k.String()
	}
	return strings.Join(parts, sep)
}

// formulas lists every position the engine produces.
var formulas = []Formula{
	fromDate("1", "N(day)", func(d date) int { return Normalize(d.day) }),
	fromDate("2", "N(month)", func(d date) int { return Normalize(d.month) }),
	fromDate("3", "N(digits(year))", func(d date) int { return Normalize(SumDigits(d.year)) }),
	// Display-only: the raw month, never normalized.
	fromDate(core.MonthKey, "month > 12 ? month - 12 : month", func(d date) int {
		if d.month > 12 {
			return d.month - 12
		}
		return d.month
	}),

	sum("4", "1", "2"),
	sum("5", "2", "3"),
	sum("6", "4", "5"),
	sum("7", "1", "5"),
	sum("8", "2", "6"),
	diff("9", "1", "2"),
	diff("10", "2", "3"),
	diff("11", "9", "10"),
	sum("12", "7", "8"),
	sum("13", "1", "4", "6"),
	sum("14", "3", "5", "6"),
	{
		Key:    "15",
		Inputs: []core.PositionKey{"9", "10", "11", "7"},
		Expr:   "N(|p9 + p10 + p11 - p7|)",
		eval: func(_ date, p core.Positions) int {
			return Normalize(abs(p["9"] + p["10"] + p["11"] - p["7"]))
		},
	},
	diff("15.1", "11", "13"),
	sum("16", "1", "4", "5", "3"),
	sum("17", "11", "6"),
	sum("18", "11", "8"),
	sum("19", "4", "6"),
	sum("20", "5", "6"),
	sum("21", "1", "2", "3", "4", "5", "6"),
	sum("22", "1", "4"),
	sum("23", "2", "4"),
	sum("24", "2", "5"),
	sum("25", "3", "5"),
	sum("26", "4", "6"),
	sum("27", "5", "6"),
	sum("28", "24", "25"),
	sum("28.1", "23", "27"),
	sum("29", "22", "26"),
	product("4.1", "1", "2"),
}

// Formulas returns the declared formulas in numeric key order.
func Formulas() []Formula {
	out := make([]Formula, len(formulas))
	copy(out, formulas)
	for i := range out {
		out[i].Inputs = append([]core.PositionKey(nil), out[i].Inputs...)
	}
	sortFormulas(out)
	return out
}

// Lookup returns the formula for key.
func Lookup(key core.PositionKey) (Formula, error) {
	for _, f := range formulas {
		if f.Key == key {
			return f, nil
		}
	}
	return Formula{}, fmt.Errorf("%w: %s", ErrUnknownPosition, key)
}

func sortFormulas(fs []Formula) {
	keys := make([]core.PositionKey, len(fs))
	byKey := make(map[core.PositionKey]Formula, len(fs))
	for i, f := range fs {
		keys[i] = f.Key
		byKey[f.Key] = f
	}
	core.SortKeys(keys)
	for i, k := range keys {
		fs[i] = byKey[k]
	}
}
