package commands

import (
	"strconv"

	"github.com/leapstack-labs/arcana/internal/cli/output"
	"github.com/leapstack-labs/arcana/internal/meaning"
	"github.com/leapstack-labs/arcana/internal/reduction"
	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/spf13/cobra"
)

// NewPositionsCommand creates the positions command.
func NewPositionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions <DD.MM.YYYY>",
		Short: "Show every computed position for a date",
		Long: `Show the full position mapping for a birth date, including positions
no spread displays. Each row shows the raw value, the numeral it displays
as and the formula that produced it.

No catalog is needed.`,
		Example: `  # Show all positions
  arcana positions 15.07.1990

  # Output as JSON
  arcana positions 15.07.1990 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			date, err := cmdCtx.DateParser().Parse(args[0])
			if err != nil {
				return err
			}

			positions := reduction.Derive(date.Request(core.SpreadIndividual))
			return runPositions(cmdCtx.Renderer, date.String(), positions)
		},
	}

	return cmd
}

func runPositions(r *output.Renderer, date string, positions core.Positions) error {
	entries := make([]output.PositionEntry, 0, len(positions))
	for _, key := range positions.Keys() {
		entry := output.PositionEntry{
			Key:     key,
			Value:   positions[key],
			Numeral: meaning.DisplayNumeral(key, positions),
		}
		if f, err := reduction.Lookup(key); err == nil {
			entry.Formula = f.Expr
		}
		entries = append(entries, entry)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.PositionsOutput{Date: date, Positions: entries})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Positions"))
		r.Println("")
		r.Println(output.FormatKeyValue("Date", date))
		r.Println("")
	} else {
		r.Header(1, "Positions for "+date)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Key.String(),
			strconv.Itoa(e.Value),
			strconv.Itoa(e.Numeral),
			e.Formula,
		})
	}
	r.Table([]string{"Position", "Value", "Numeral", "Formula"}, rows)
	return nil
}
