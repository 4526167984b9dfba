package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Position  lipgloss.Style
	Numeral   lipgloss.Style
	Name      lipgloss.Style
	Shadow    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("213")).Padding(0, 1),
		Position:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Numeral:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Name:      lipgloss.NewStyle().Bold(true),
		Shadow:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("99")),
	}
}
