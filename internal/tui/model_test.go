package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/arcana/internal/birthdate"
	"github.com/leapstack-labs/arcana/internal/portrait"
	"github.com/leapstack-labs/arcana/internal/testutil"
	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) Model {
	t.Helper()
	calc, err := portrait.New(testutil.NewCatalog(t), portrait.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)

	parser := birthdate.Parser{
		MinYear: birthdate.MinYear,
		Now:     func() time.Time { return time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC) },
	}
	return New(calc, parser, core.SpreadIndividual)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTyping_MasksInput(t *testing.T) {
	m := newModel(t)
	m = typeText(t, m, "15a07/1990")
	assert.Equal(t, "15.07.1990", m.input.Value())
}

func TestEnter_Calculates(t *testing.T) {
	m := newModel(t)
	m = typeText(t, m, "15071990")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, m.Err())
	require.NotNil(t, m.Result())
	assert.Equal(t, 15, m.Result().Positions[core.Key(1)])

	view := m.View()
	assert.Contains(t, view, "Individual personality portrait")
	assert.Contains(t, view, "Card 15")
	assert.Contains(t, view, "individual default 15")
}

func TestEnter_InvalidDateShowsError(t *testing.T) {
	m := newModel(t)
	m = typeText(t, m, "31021990")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.ErrorIs(t, m.Err(), birthdate.ErrCalendar)
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "no such calendar day")
}

func TestTab_SwitchesSpreadWithoutRecalculating(t *testing.T) {
	m := newModel(t).WithDate("15.07.1990")
	first := m.Result()
	require.NotNil(t, first)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, core.SpreadShadow, m.Spread())
	assert.Same(t, first, m.Result())
	assert.Contains(t, m.View(), "Shadow personality portrait")
	assert.Contains(t, m.View(), "Shadow aspect:")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, core.SpreadKarma, m.Spread())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, core.SpreadShadow, m.Spread())
}

func TestToggleMeanings(t *testing.T) {
	m := newModel(t).WithDate("15.07.1990")
	require.True(t, m.ShowMeaning())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.False(t, m.ShowMeaning())
	assert.NotContains(t, m.View(), "individual default 15")
	assert.Contains(t, m.View(), "Card 15")
	assert.Equal(t, "15.07.1990", m.input.Value(), "toggle key must not reach the date field")
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	m := newModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.viewport.Width)
	assert.Equal(t, 40-chrome, m.viewport.Height)

	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 4})
	assert.Equal(t, 3, m.viewport.Height)
}

func TestEmptyView(t *testing.T) {
	m := newModel(t)
	view := m.View()
	assert.Contains(t, view, "Enter a birth date")
	assert.Contains(t, view, "tab next spread")
}
