package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/leapstack-labs/arcana/internal/birthdate"
	"github.com/leapstack-labs/arcana/internal/cli/output"
	"github.com/leapstack-labs/arcana/internal/portrait"
	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// batchInput is one non-blank line of a batch file.
type batchInput struct {
	line int
	text string
}

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Calculate portraits for many dates",
		Long: `Calculate portraits for a file of dates, one DD.MM.YYYY per line.
Blank lines and lines starting with # are ignored. Use - to read stdin.

Dates are calculated concurrently (--workers, default 4) and printed in
input order. Invalid dates are reported per line; the command fails at
the end if any line was invalid.`,
		Example: `  # Calculate a file
  arcana batch dates.txt

  # Read stdin, shadow spread, JSON output
  cat dates.txt | arcana batch - -s shadow -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			s, err := cmdCtx.Spread()
			if err != nil {
				return err
			}
			calc, err := cmdCtx.Calculator()
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open batch file: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			inputs, err := readBatchInputs(in)
			if err != nil {
				return err
			}

			rows, err := calculateBatch(cmd.Context(), calc, cmdCtx.DateParser(), inputs, s, cmdCtx.Cfg.Workers, cmdCtx.Logger)
			if err != nil {
				return err
			}
			return runBatch(cmdCtx.Renderer, calc.Spreads().Keys(s), rows)
		},
	}

	return cmd
}

func readBatchInputs(r io.Reader) ([]batchInput, error) {
	var inputs []batchInput
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		inputs = append(inputs, batchInput{line: line, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return inputs, nil
}

// calculateBatch renders every input with at most workers goroutines.
// Rows come back in input order; a bad date fails only its own row.
func calculateBatch(ctx context.Context, calc *portrait.Calculator, parser birthdate.Parser,
	inputs []batchInput, s core.SpreadType, workers int, logger *slog.Logger) ([]output.BatchRow, error) {
	if workers <= 0 {
		workers = 1
	}

	rows := make([]output.BatchRow, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			row := output.BatchRow{Line: in.line, Input: in.text}
			date, err := parser.Parse(in.text)
			if err != nil {
				logger.Debug("batch line rejected", slog.Int("line", in.line), slog.String("error", err.Error()))
				row.Error = err.Error()
			} else {
				p := calc.Render(date.Request(s))
				row.Input = date.String()
				row.Portrait = &p
			}
			rows[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func runBatch(r *output.Renderer, keys []core.PositionKey, rows []output.BatchRow) error {
	failed := 0
	for _, row := range rows {
		if row.Error != "" {
			failed++
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(rows); err != nil {
			return err
		}
	} else {
		header := []string{"Line", "Date"}
		for _, k := range keys {
			header = append(header, k.String())
		}

		table := make([][]string, 0, len(rows))
		for _, row := range rows {
			cells := []string{strconv.Itoa(row.Line), row.Input}
			if row.Portrait == nil {
				for range keys {
					cells = append(cells, "-")
				}
				table = append(table, cells)
				continue
			}
			numerals := make(map[core.PositionKey]int, len(row.Portrait.Slots))
			for _, slot := range row.Portrait.Slots {
				numerals[slot.Key] = slot.Numeral
			}
			for _, k := range keys {
				if n, ok := numerals[k]; ok {
					cells = append(cells, strconv.Itoa(n))
				} else {
					cells = append(cells, "-")
				}
			}
			table = append(table, cells)
		}
		r.Table(header, table)

		for _, row := range rows {
			if row.Error != "" {
				r.Error(fmt.Sprintf("line %d: %s", row.Line, row.Error))
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d dates were invalid", failed, len(rows))
	}
	return nil
}
