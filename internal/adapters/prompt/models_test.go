package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectModel_Navigation(t *testing.T) {
	t.Parallel()

	m := newSelectModel("Pick", []string{"Yes", "No", "Skip", "Quit"}, 0)

	got, ok := press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}).(selectModel)
	require.True(t, ok)
	assert.Equal(t, 2, got.cursor)
	assert.False(t, got.chosen)

	got, ok = press(t, got, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}).(selectModel)
	require.True(t, ok)
	assert.Equal(t, 3, got.cursor, "moving up from the first option wraps")

	next, cmd := got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got, ok = next.(selectModel)
	require.True(t, ok)
	assert.True(t, got.chosen)
	assert.NotNil(t, cmd)
	assert.Contains(t, got.View(), "Quit")
}

func TestSelectModel_InitialLetter(t *testing.T) {
	t.Parallel()

	m := newSelectModel("Pick", []string{"Yes", "No", "Skip", "Quit"}, 0)
	got, ok := press(t, m, runes("s")).(selectModel)
	require.True(t, ok)
	assert.True(t, got.chosen)
	assert.Equal(t, 2, got.cursor)
}

func TestSelectModel_Cancel(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newSelectModel("Pick", []string{"Yes", "No"}, 1)
		got, ok := press(t, m, key).(selectModel)
		require.True(t, ok)
		assert.True(t, got.cancelled, key.String())
		assert.False(t, got.chosen)
	}
}

func TestSelectModel_DefaultOutOfRange(t *testing.T) {
	t.Parallel()

	m := newSelectModel("Pick", []string{"Yes", "No"}, 9)
	assert.Equal(t, 0, m.cursor)
}

func TestMatchInitial(t *testing.T) {
	t.Parallel()

	opts := []string{"Explicit status", "Memo", "Done"}
	assert.Equal(t, 1, matchInitial(opts, 'M'))
	assert.Equal(t, -1, matchInitial(opts, 'x'))
	assert.Equal(t, -1, matchInitial([]string{"Skip", "Save"}, 's'), "ambiguous initial")
}

func TestInputModel(t *testing.T) {
	t.Parallel()

	m := newInputModel("Memo", "old")
	got, ok := press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("D"), tea.KeyMsg{Type: tea.KeyEnter}).(inputModel)
	require.True(t, ok)
	assert.True(t, got.done)
	assert.Equal(t, "olD", got.Value())

	cancelled, ok := press(t, newInputModel("Memo", ""), tea.KeyMsg{Type: tea.KeyEsc}).(inputModel)
	require.True(t, ok)
	assert.True(t, cancelled.cancelled)
}
