package commands

import (
	"fmt"

	"github.com/leapstack-labs/arcana/internal/cli/output"
	"github.com/leapstack-labs/arcana/internal/portrait"
	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/spf13/cobra"
)

// NewCalcCommand creates the calc command.
func NewCalcCommand() *cobra.Command {
	var all bool
	var brief bool

	cmd := &cobra.Command{
		Use:   "calc <DD.MM.YYYY>",
		Short: "Calculate a personality portrait",
		Long: `Calculate the portrait for a birth date.

The date is reduced once into all positions, then the configured spread
(or --spread) picks the positions to show. Each slot shows the card name,
its numeral and the meaning for that position; the shadow spread adds the
card's shadow aspect.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  # Individual portrait
  arcana calc 15.07.1990

  # Shadow spread
  arcana calc 15.07.1990 --spread shadow

  # All spreads, names only
  arcana calc 15.07.1990 --all --brief

  # Output as JSON
  arcana calc 15.07.1990 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			date, err := cmdCtx.DateParser().Parse(args[0])
			if err != nil {
				return err
			}

			spreads := []core.SpreadType{}
			if all {
				spreads = core.AllSpreads()
			} else {
				s, err := cmdCtx.Spread()
				if err != nil {
					return err
				}
				spreads = append(spreads, s)
			}

			calc, err := cmdCtx.Calculator()
			if err != nil {
				return err
			}

			result := calc.Calculate(date.Request(spreads[0]))
			return runCalc(cmdCtx.Renderer, date.String(), result, spreads, brief)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Render every spread")
	cmd.Flags().BoolVar(&brief, "brief", false, "Hide meanings, show names and numerals only")

	return cmd
}

// runCalc renders each requested spread from one calculation.
func runCalc(r *output.Renderer, date string, result *portrait.Result, spreads []core.SpreadType, brief bool) error {
	if r.EffectiveMode() == output.ModeJSON {
		outs := make([]output.PortraitOutput, 0, len(spreads))
		for _, s := range spreads {
			outs = append(outs, output.PortraitOutput{Date: date, Portrait: result.Render(s)})
		}
		if len(outs) == 1 {
			return r.JSON(outs[0])
		}
		return r.JSON(outs)
	}

	for i, s := range spreads {
		if i > 0 {
			r.Println("")
		}
		renderPortrait(r, date, result.Render(s), brief)
	}
	return nil
}

// parseSpreadArg parses a spread given on the command line.
func parseSpreadArg(s string) (core.SpreadType, error) {
	spread, err := core.ParseSpreadType(s)
	if err != nil {
		return "", fmt.Errorf("invalid spread: %w", err)
	}
	return spread, nil
}
