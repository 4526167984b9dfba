package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/arcana/internal/cli/output"
	"github.com/leapstack-labs/arcana/pkg/core"
)

// renderPortrait writes one rendered spread in the renderer's mode.
// JSON is handled by callers, which decide the envelope.
func renderPortrait(r *output.Renderer, date string, p core.Portrait, brief bool) {
	if r.EffectiveMode() == output.ModeMarkdown {
		portraitMarkdown(r, date, p, brief)
		return
	}
	portraitText(r, date, p, brief)
}

func portraitText(r *output.Renderer, date string, p core.Portrait, brief bool) {
	styles := r.Styles()

	r.Header(1, p.Title)
	r.Println(styles.Muted.Render("Date: " + date))
	r.Println("")

	for _, slot := range p.Slots {
		r.Printf("%s %s %s\n",
			styles.Position.Render(slot.Key.String()),
			styles.Numeral.Render(fmt.Sprintf("%2d", slot.Numeral)),
			styles.CardName.Render(slot.Name))
		if brief {
			continue
		}
		r.Printf("       %s\n", slot.Meaning)
		if slot.ShadowAspect != "" {
			r.Printf("       %s\n", styles.Shadow.Render("Shadow aspect: "+slot.ShadowAspect))
		}
	}

	for _, key := range p.Skipped {
		r.Warning(fmt.Sprintf("position %s is not computed, skipped", key))
	}
}

func portraitMarkdown(r *output.Renderer, date string, p core.Portrait, brief bool) {
	r.Println(output.FormatHeader(1, p.Title))
	r.Println("")
	r.Println(output.FormatKeyValue("Date", date))
	r.Println(output.FormatKeyValue("Spread", p.Spread.String()))
	r.Println("")

	if brief {
		rows := make([][]string, 0, len(p.Slots))
		for _, slot := range p.Slots {
			rows = append(rows, []string{slot.Key.String(), strconv.Itoa(slot.Numeral), slot.Name})
		}
		r.Table([]string{"Position", "Numeral", "Card"}, rows)
	} else {
		for _, slot := range p.Slots {
			r.Println(output.FormatHeader(2, fmt.Sprintf("%s. %s (%d)", slot.Key, slot.Name, slot.Numeral)))
			r.Println("")
			r.Println(slot.Meaning)
			if slot.ShadowAspect != "" {
				r.Println("")
				r.Println("_Shadow aspect:_ " + slot.ShadowAspect)
			}
			r.Println("")
		}
	}

	if len(p.Skipped) > 0 {
		r.Println("")
		r.Println(output.FormatHeader(2, "Skipped"))
		for _, key := range p.Skipped {
			r.Printf("- %s\n", key)
		}
	}
}
