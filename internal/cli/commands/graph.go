package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/arcana/internal/cli/output"
	"github.com/leapstack-labs/arcana/internal/reduction"
	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/spf13/cobra"
)

// GraphQuerier provides read-only access to the position graph.
type GraphQuerier interface {
	GetParents(core.PositionKey) []core.PositionKey
	GetChildren(core.PositionKey) []core.PositionKey
	GetUpstreamNodes(core.PositionKey) []core.PositionKey
	GetAffectedNodes([]core.PositionKey) []core.PositionKey
	NodeCount() int
	EdgeCount() int
}

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [position]",
		Short: "Show the position dependency graph",
		Long: `Display how positions derive from one another.

Without an argument, positions are grouped by evaluation level: level 0
reads the date directly, every later level reads only earlier ones.
With a position, its formula, everything it depends on and everything
that depends on it are shown.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  # Show the whole graph
  arcana graph

  # Trace one position
  arcana graph 8

  # Output as JSON
  arcana graph --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := NewCommandContext(cmd).Renderer

			graph, err := reduction.Graph()
			if err != nil {
				return fmt.Errorf("failed to build position graph: %w", err)
			}

			if len(args) == 1 {
				key, err := core.ParsePositionKey(args[0])
				if err != nil {
					return err
				}
				return runGraphTrace(r, graph, key)
			}

			levels, err := graph.GetExecutionLevels()
			if err != nil {
				return fmt.Errorf("failed to get evaluation levels: %w", err)
			}
			return runGraph(r, graph, levels)
		},
	}

	return cmd
}

func runGraph(r *output.Renderer, graph GraphQuerier, levels [][]core.PositionKey) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return graphJSON(r, graph, levels)
	case output.ModeMarkdown:
		graphMarkdown(r, graph, levels)
	default:
		graphText(r, graph, levels)
	}
	return nil
}

func formulaExpr(key core.PositionKey) string {
	f, err := reduction.Lookup(key)
	if err != nil {
		return ""
	}
	return f.Expr
}

func joinKeys(keys []core.PositionKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}

// graphText outputs the graph in styled text format.
func graphText(r *output.Renderer, graph GraphQuerier, levels [][]core.PositionKey) {
	styles := r.Styles()

	r.Header(1, "Position Graph")

	for i, level := range levels {
		r.Println(styles.Header2.Render(fmt.Sprintf("Level %d:", i)))
		for _, key := range level {
			r.Printf("  %s %s\n", styles.Bold.Render(key.String()), styles.Muted.Render(formulaExpr(key)))
			if children := graph.GetChildren(key); len(children) > 0 {
				r.Printf("    %s %s\n", styles.Muted.Render("used by:"), joinKeys(children))
			}
		}
		r.Println("")
	}

	r.Println(styles.Muted.Render(fmt.Sprintf("Total: %d positions, %d dependencies", graph.NodeCount(), graph.EdgeCount())))
}

// graphMarkdown outputs the graph in markdown format.
func graphMarkdown(r *output.Renderer, graph GraphQuerier, levels [][]core.PositionKey) {
	r.Println(output.FormatHeader(1, "Position Graph"))
	r.Println("")

	for i, level := range levels {
		levelName := fmt.Sprintf("Level %d", i)
		if i == 0 {
			levelName = "Level 0 (Date)"
		}
		r.Println(output.FormatHeader(2, levelName))

		for _, key := range level {
			r.Printf("- %s = %s\n", key, formulaExpr(key))
			if children := graph.GetChildren(key); len(children) > 0 {
				r.Printf("  - used by: %s\n", joinKeys(children))
			}
		}
		r.Println("")
	}

	r.Println(output.FormatHeader(2, "Summary"))
	r.Println(output.FormatKeyValue("Total Positions", fmt.Sprintf("%d", graph.NodeCount())))
	r.Println(output.FormatKeyValue("Total Dependencies", fmt.Sprintf("%d", graph.EdgeCount())))
}

// graphJSON outputs the graph in JSON format.
func graphJSON(r *output.Renderer, graph GraphQuerier, levels [][]core.PositionKey) error {
	out := output.GraphOutput{
		Levels:     make([]output.GraphLevel, 0, len(levels)),
		TotalNodes: graph.NodeCount(),
		TotalEdges: graph.EdgeCount(),
	}

	for i, level := range levels {
		gl := output.GraphLevel{
			Level:     i,
			Positions: make([]output.GraphNode, 0, len(level)),
		}
		for _, key := range level {
			gl.Positions = append(gl.Positions, graphNode(graph, key))
		}
		out.Levels = append(out.Levels, gl)
	}

	return r.JSON(out)
}

func graphNode(graph GraphQuerier, key core.PositionKey) output.GraphNode {
	return output.GraphNode{
		Key:       key,
		Formula:   formulaExpr(key),
		DependsOn: graph.GetParents(key),
		UsedBy:    graph.GetChildren(key),
	}
}

// runGraphTrace shows one position's formula with its upstream and downstream.
func runGraphTrace(r *output.Renderer, graph GraphQuerier, key core.PositionKey) error {
	if _, err := reduction.Lookup(key); err != nil {
		return err
	}

	upstream := graph.GetUpstreamNodes(key)
	var downstream []core.PositionKey
	for _, k := range graph.GetAffectedNodes([]core.PositionKey{key}) {
		if k != key {
			downstream = append(downstream, k)
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(struct {
			output.GraphNode
			Upstream   []core.PositionKey `json:"upstream"`
			Downstream []core.PositionKey `json:"downstream"`
		}{graphNode(graph, key), upstream, downstream})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Position "+key.String()))
		r.Println("")
		r.Println(output.FormatKeyValue("Formula", formulaExpr(key)))
		r.Println(output.FormatKeyValue("Upstream", orNone(joinKeys(upstream))))
		r.Println(output.FormatKeyValue("Downstream", orNone(joinKeys(downstream))))
	default:
		styles := r.Styles()
		r.Header(1, "Position "+key.String())
		r.Printf("%s %s\n", styles.Muted.Render("formula:   "), formulaExpr(key))
		r.Printf("%s %s\n", styles.Muted.Render("upstream:  "), orNone(joinKeys(upstream)))
		r.Printf("%s %s\n", styles.Muted.Render("downstream:"), orNone(joinKeys(downstream)))
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
