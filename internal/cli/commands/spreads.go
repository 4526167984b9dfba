package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/arcana/internal/cli/output"
	"github.com/leapstack-labs/arcana/internal/reduction"
	"github.com/leapstack-labs/arcana/internal/spread"
	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/spf13/cobra"
)

// NewSpreadsCommand creates the spreads command.
func NewSpreadsCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "spreads [spread]",
		Short: "List spread layouts",
		Long: `List the positions each spread shows, in display order, after any
spreads: overrides from arcana.yaml are applied.

With --check, every listed position is checked against the positions the
engine computes. Unknown positions are reported and the command fails;
calc would skip them.`,
		Example: `  # List all spreads
  arcana spreads

  # Show one spread
  arcana spreads karma

  # Check configured layouts
  arcana spreads --check`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"individual", "shadow", "karma"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			cfg, err := cmdCtx.Cfg.Project().SpreadConfig()
			if err != nil {
				return err
			}

			spreads := core.AllSpreads()
			if len(args) == 1 {
				s, err := parseSpreadArg(args[0])
				if err != nil {
					return err
				}
				spreads = []core.SpreadType{s}
			}

			if err := runSpreads(cmdCtx.Renderer, cfg, spreads); err != nil {
				return err
			}
			if check {
				return runSpreadsCheck(cmdCtx.Renderer, cfg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check layouts against computed positions")

	return cmd
}

func runSpreads(r *output.Renderer, cfg *spread.Config, spreads []core.SpreadType) error {
	outs := make([]output.SpreadOutput, 0, len(spreads))
	for _, s := range spreads {
		outs = append(outs, output.SpreadOutput{Spread: s, Title: cfg.Title(s), Positions: cfg.Keys(s)})
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(outs)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Spreads"))
		r.Println("")
		for _, o := range outs {
			r.Println(output.FormatHeader(2, o.Spread.String()))
			r.Println(output.FormatKeyValue("Title", o.Title))
			r.Println(output.FormatKeyValue("Positions", joinKeys(o.Positions)))
			r.Println("")
		}
	default:
		styles := r.Styles()
		r.Header(1, "Spreads")
		for _, o := range outs {
			r.Printf("%s %s\n", styles.Header2.Render(o.Spread.String()), styles.Muted.Render(o.Title))
			r.Printf("  %s\n", joinKeys(o.Positions))
		}
	}
	return nil
}

func runSpreadsCheck(r *output.Renderer, cfg *spread.Config) error {
	err := cfg.Validate(reduction.Keys())
	if err == nil {
		if r.EffectiveMode() != output.ModeJSON {
			r.Success("all spread positions are computed")
		}
		return nil
	}

	var problems []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		problems = joined.Unwrap()
	} else {
		problems = []error{err}
	}
	for _, p := range problems {
		var uk *spread.UnknownKeyError
		if errors.As(p, &uk) {
			r.Error(fmt.Sprintf("%s: position %s is never computed", uk.Spread, uk.Key))
			continue
		}
		r.Error(p.Error())
	}
	return fmt.Errorf("%d spread position(s) failed the check: %w", len(problems), spread.ErrUnknownKey)
}
