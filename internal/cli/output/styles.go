package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Header1       lipgloss.Style
	Header2       lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Success       lipgloss.Style
	Warning       lipgloss.Style
	Error         lipgloss.Style
	Info          lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
	// Position renders position keys.
	Position lipgloss.Style
	// Numeral renders card numerals.
	Numeral lipgloss.Style
	// CardName renders card names.
	CardName lipgloss.Style
	// Shadow renders the shadow aspect line.
	Shadow lipgloss.Style
}

// NewStyles builds styles bound to a lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header1:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).MarginBottom(1),
		Header2:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		Bold:          r.NewStyle().Bold(true),
		Muted:         r.NewStyle().Foreground(lipgloss.Color("245")),
		Success:       r.NewStyle().Foreground(lipgloss.Color("42")),
		Warning:       r.NewStyle().Foreground(lipgloss.Color("214")),
		Error:         r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Info:          r.NewStyle().Foreground(lipgloss.Color("39")),
		StatusSuccess: r.NewStyle().Foreground(lipgloss.Color("42")),
		StatusFailed:  r.NewStyle().Foreground(lipgloss.Color("196")),
		Position:      r.NewStyle().Foreground(lipgloss.Color("245")).Width(6),
		Numeral:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		CardName:      r.NewStyle().Bold(true),
		Shadow:        r.NewStyle().Italic(true).Foreground(lipgloss.Color("99")),
	}
}
