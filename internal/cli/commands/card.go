package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/leapstack-labs/arcana/internal/cli/output"
	"github.com/leapstack-labs/arcana/internal/meaning"
	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/spf13/cobra"
)

// NewCardCommand creates the card command.
func NewCardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card <id>",
		Short: "Show a card's catalog entry",
		Long: `Show the name and every meaning the catalog holds for a card.

Ids run 1..22; 0 is accepted and shows card 22.`,
		Example: `  # Show the Chariot
  arcana card 7

  # Output as JSON
  arcana card 22 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id < 0 || id > meaning.FoolID {
				return fmt.Errorf("invalid card id %q: want 0..%d", args[0], meaning.FoolID)
			}

			cmdCtx := NewCommandContext(cmd)
			calc, err := cmdCtx.Calculator()
			if err != nil {
				return err
			}

			card, ok := calc.Catalog().Card(id)
			if !ok {
				return fmt.Errorf("card %d is not in the catalog", meaning.DisplayCard(id))
			}
			return runCard(cmdCtx.Renderer, card)
		},
	}

	return cmd
}

func runCard(r *output.Renderer, card meaning.Card) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.CardOutput{
			ID:       card.ID,
			Numeral:  meaning.DisplayCard(card.ID),
			Name:     card.Name,
			Meanings: card.Meanings,
		})
	}

	title := fmt.Sprintf("%d. %s", meaning.DisplayCard(card.ID), card.Name)
	markdown := r.EffectiveMode() == output.ModeMarkdown
	if markdown {
		r.Println(output.FormatHeader(1, title))
		r.Println("")
	} else {
		r.Header(1, title)
	}

	styles := r.Styles()
	for _, s := range core.AllSpreads() {
		texts := card.Meanings[s]
		if len(texts) == 0 {
			continue
		}

		if markdown {
			r.Println(output.FormatHeader(2, s.String()))
		} else {
			r.Println(styles.Header2.Render(s.String()))
		}
		for _, key := range meaningKeys(texts) {
			if markdown {
				r.Println(output.FormatKeyValue(key, texts[key]))
			} else {
				r.Printf("  %s %s\n", styles.Position.Render(key), texts[key])
			}
		}
		r.Println("")
	}
	return nil
}

// meaningKeys orders position keys numerically with "default" first.
func meaningKeys(texts map[string]string) []string {
	var keys []core.PositionKey
	var other []string
	hasDefault := false
	for k := range texts {
		if k == meaning.DefaultKey {
			hasDefault = true
			continue
		}
		if pk, err := core.ParsePositionKey(k); err == nil {
			keys = append(keys, pk)
		} else {
			other = append(other, k)
		}
	}
	core.SortKeys(keys)
	sort.Strings(other)

	out := make([]string, 0, len(texts))
	if hasDefault {
		out = append(out, meaning.DefaultKey)
	}
	for _, k := range keys {
		out = append(out, k.String())
	}
	return append(out, other...)
}
