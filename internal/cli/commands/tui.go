package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/arcana/internal/tui"
	"github.com/spf13/cobra"
)

// NewTUICommand creates the tui command.
func NewTUICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [DD.MM.YYYY]",
		Short: "Open the interactive portrait view",
		Long: `Open a terminal view with a date field and the rendered portrait.

Keys:
  enter   calculate
  tab     next spread (re-renders without recalculating)
  d       show or hide meanings
  esc     quit`,
		Example: `  # Start empty
  arcana tui

  # Start with a date filled in and calculated
  arcana tui 15.07.1990`,
		Args: cobra.MaximumNArgs(1),
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

			m := tui.New(calc, cmdCtx.DateParser(), s)
			if len(args) == 1 {
				m = m.WithDate(args[0])
			}

			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	return cmd
}
