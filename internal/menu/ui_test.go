package menu

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI()
	assert.NotNil(t, ui)
	assert.NotNil(t, ui.isTerminal)
}

func TestHuhUI_EnsureInteractive_NilChecker(t *testing.T) {
	// Falls back to terminal.IsInteractive, which is false under go test.
	ui := &HuhUI{isTerminal: nil}
	err := ui.ensureInteractive()
	assert.ErrorIs(t, err, ErrNotInteractive)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestHuhUI_SelectWithoutTTY(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}
	var res string
	err := ui.Select("Title", []string{"A", "B"}, &res)
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func withRunForm(t *testing.T, fn func(*huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	runFormFunc = fn
	t.Cleanup(func() { runFormFunc = orig })
}

func TestHuhUI_RunFormAbortMapping(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}

	withRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })
	var res string
	assert.ErrorIs(t, ui.Select("Title", []string{"A"}, &res), ErrBack)

	withRunForm(t, func(*huh.Form) error {
		ui.ctrlCAbort = true
		return huh.ErrUserAborted
	})
	assert.ErrorIs(t, ui.Select("Title", []string{"A"}, &res), ErrCancelled)

	boom := errors.New("boom")
	withRunForm(t, func(*huh.Form) error { return boom })
	assert.ErrorIs(t, ui.Select("Title", []string{"A"}, &res), boom)
}

func TestHuhUI_FormFilter(t *testing.T) {
	ui := &HuhUI{}
	filter := ui.formFilter()

	msg := filter(nil, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, ui.ctrlCAbort)
	assert.Equal(t, tea.KeyMsg{Type: tea.KeyCtrlC}, msg)

	_, ok := filter(nil, tea.InterruptMsg{}).(tea.QuitMsg)
	require.True(t, ok)
}

func TestMenuKeyMap(t *testing.T) {
	km := menuKeyMap()
	assert.ElementsMatch(t, []string{"ctrl+c", "esc"}, km.Quit.Keys())
	assert.False(t, km.Select.Filter.Enabled())
}
