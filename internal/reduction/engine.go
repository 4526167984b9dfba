package reduction

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leapstack-labs/arcana/internal/dag"
	"github.com/leapstack-labs/arcana/pkg/core"
)

// ErrUnknownPosition is returned when a key names no declared formula.
var ErrUnknownPosition = errors.New("unknown position")

// Graph builds the dependency graph of all positions. Each node's Data is
// its Formula. A fresh graph is returned on every call.
func Graph() (*dag.Graph, error) {
	g := dag.NewGraph()
	for _, f := range formulas {
		g.AddNode(f.Key, f)
	}
	for _, f := range formulas {
		for _, in := range f.Inputs {
			if err := g.AddEdge(in, f.Key); err != nil {
				return nil, fmt.Errorf("position %s: %w", f.Key, err)
			}
		}
	}
	return g, nil
}

// evaluationOrder is computed once; the formula table never changes.
var evaluationOrder = sync.OnceValues(func() ([]Formula, error) {
	g, err := Graph()
	if err != nil {
		return nil, err
	}
	nodes, err := g.TopologicalSort()
	if err != nil {
		return nil, err
	}
	order := make([]Formula, len(nodes))
	for i, n := range nodes {
		order[i] = n.Data.(Formula)
	}
	return order, nil
})

// DerivePositions computes every position for a date.
//
// The call is pure and never validates: a calendar-valid day, month and year
// are the caller's precondition, and out-of-range numbers still yield a
// mapping. Every declared position is produced regardless of which spread
// will be displayed.
func DerivePositions(day, month, year int) core.Positions {
	order, err := evaluationOrder()
	if err != nil {
		// The formula table is static; a cycle is a programming error.
		panic(fmt.Sprintf("reduction: invalid formula table: %v", err))
	}

	d := date{day: day, month: month, year: year}
	positions := make(core.Positions, len(order))
	for _, f := range order {
		positions[f.Key] = f.eval(d, positions)
	}
	return positions
}

// Derive computes the positions for a request. The spread is ignored.
func Derive(req core.Request) core.Positions {
	return DerivePositions(req.Day, req.Month, req.Year)
}

// Keys returns every key DerivePositions produces, in numeric order.
func Keys() []core.PositionKey {
	keys := make([]core.PositionKey, len(formulas))
	for i, f := range formulas {
		keys[i] = f.Key
	}
	core.SortKeys(keys)
	return keys
}
