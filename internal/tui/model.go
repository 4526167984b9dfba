// Package tui is the interactive terminal view: a masked date field, spread
// tabs and the rendered portrait.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/arcana/internal/birthdate"
	"github.com/leapstack-labs/arcana/internal/portrait"
	"github.com/leapstack-labs/arcana/pkg/core"
)

// chrome is the number of lines above and below the portrait viewport.
const chrome = 7

type keyMap struct {
	Calculate  key.Binding
	NextSpread key.Binding
	PrevSpread key.Binding
	ToggleText key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Calculate:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		NextSpread: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next spread")),
		PrevSpread: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous spread")),
		ToggleText: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "meanings")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// Model is the bubbletea model of the portrait view.
type Model struct {
	calc   *portrait.Calculator
	parser birthdate.Parser

	spread core.SpreadType
	// result holds the last calculation; switching spreads re-renders it.
	result *portrait.Result
	date   string
	err    error
	// showMeaning is the description toggle; it lives only here.
	showMeaning bool

	input    textinput.Model
	viewport viewport.Model
	keys     keyMap
	styles   styles
}

// New creates the view. spread is the initially selected tab.
func New(calc *portrait.Calculator, parser birthdate.Parser, spread core.SpreadType) Model {
	if spread == "" {
		spread = core.SpreadIndividual
	}

	in := textinput.New()
	in.Placeholder = "DD.MM.YYYY"
	in.Prompt = "Birth date: "
	in.CharLimit = len("DD.MM.YYYY")
	in.Width = 12
	in.Focus()

	m := Model{
		calc:        calc,
		parser:      parser,
		spread:      spread,
		showMeaning: true,
		input:       in,
		viewport:    viewport.New(80, 20),
		keys:        defaultKeys(),
		styles:      defaultStyles(),
	}
	m.refresh()
	return m
}

// WithDate fills the date field and calculates it.
func (m Model) WithDate(s string) Model {
	m.input.SetValue(birthdate.Mask(s))
	m.input.CursorEnd()
	m.calculate()
	return m
}

// Spread returns the selected spread.
func (m Model) Spread() core.SpreadType {
	return m.spread
}

// Result returns the last successful calculation, if any.
func (m Model) Result() *portrait.Result {
	return m.result
}

// Err returns the last validation error.
func (m Model) Err() error {
	return m.err
}

// ShowMeaning reports whether meanings are displayed.
func (m Model) ShowMeaning() bool {
	return m.showMeaning
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 3)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Calculate):
			m.calculate()
			return m, nil
		case key.Matches(msg, m.keys.NextSpread):
			m.spread = m.spread.Next()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.PrevSpread):
			m.spread = m.spread.Next().Next()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.ToggleText):
			m.showMeaning = !m.showMeaning
			m.refresh()
			return m, nil
		case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown,
			msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if masked := birthdate.Mask(m.input.Value()); masked != m.input.Value() {
		m.input.SetValue(masked)
		m.input.CursorEnd()
	}

	return m, tea.Batch(cmds...)
}

// calculate validates the field and derives positions once.
func (m *Model) calculate() {
	date, err := m.parser.Parse(m.input.Value())
	if err != nil {
		m.err = err
		m.refresh()
		return
	}

	m.err = nil
	m.date = date.String()
	m.result = m.calc.Calculate(date.Request(m.spread))
	m.refresh()
}

// refresh re-renders the viewport from the stored result.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderPortrait())
	m.viewport.GotoTop()
}

func (m Model) renderPortrait() string {
	if m.result == nil {
		return m.styles.Muted.Render("Enter a birth date and press enter.")
	}

	p := m.result.Render(m.spread)
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.Title))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(m.date))
	b.WriteString("\n\n")

	for _, slot := range p.Slots {
		fmt.Fprintf(&b, "%s %s %s\n",
			m.styles.Position.Render(fmt.Sprintf("%-5s", slot.Key)),
			m.styles.Numeral.Render(fmt.Sprintf("%2d", slot.Numeral)),
			m.styles.Name.Render(slot.Name))
		if !m.showMeaning {
			continue
		}
		fmt.Fprintf(&b, "         %s\n", slot.Meaning)
		if slot.ShadowAspect != "" {
			fmt.Fprintf(&b, "         %s\n", m.styles.Shadow.Render("Shadow aspect: "+slot.ShadowAspect))
		}
	}
	return b.String()
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Arcana"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 3)
	for _, s := range core.AllSpreads() {
		if s == m.spread {
			tabs = append(tabs, m.styles.ActiveTab.Render(s.String()))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(s.String()))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderHelp() string {
	bindings := []key.Binding{m.keys.Calculate, m.keys.NextSpread, m.keys.ToggleText, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Muted.Render(strings.Join(parts, " • "))
}
