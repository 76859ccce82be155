package exchange

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/commitlabels/labels"
	"github.com/dylan/commitlabels/tui/shared"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func opened(t *testing.T) Model {
	t.Helper()
	m := New()
	m.SetSize(100, 40)
	require.NoError(t, m.Open(labels.DefaultConfiguration()))
	return m
}

func TestExportShowsIndentedJSON(t *testing.T) {
	m := opened(t)
	require.Equal(t, ExportMode, m.Mode())
	require.Contains(t, m.area.Value(), "\n  \"commitTypes\": {")

	res := m.HandleKey(keyRunes("y"))
	require.Equal(t, ActionCopy, res.Action)
	require.Equal(t, m.exported, res.Text)

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	defer func() { writeClipboard = orig }()

	msg := CopyCmd(res.Text)()
	require.Equal(t, shared.ClipboardCopiedMsg{}, msg)
	require.Equal(t, res.Text, copied)
}

func TestImportValidates(t *testing.T) {
	m := opened(t)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, ImportMode, m.Mode())
	require.Empty(t, m.area.Value())

	m.area.SetValue(`{"removePrefix": false}`)
	res := m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, ActionNone, res.Action)
	require.ErrorIs(t, m.err, labels.ErrInvalidImport)

	m.area.SetValue(`{"removePrefix": false, "commitTypes": {"feat": {"emoji": "✨", "label": "Feature", "color": "green"}}}`)
	res = m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, ActionImport, res.Action)
	require.False(t, res.Config.RemovePrefix)
	require.Len(t, res.Config.CommitTypes, 1)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, ExportMode, m.Mode())
	require.Equal(t, ActionClose, m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}).Action)
}

func TestImportFromClipboard(t *testing.T) {
	m := opened(t)
	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})

	orig := readClipboard
	defer func() { readClipboard = orig }()
	readClipboard = func() (string, error) { return "", errors.New("no clipboard") }
	m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.ErrorContains(t, m.err, "no clipboard")

	readClipboard = func() (string, error) { return `{"commitTypes": {"x": {"label": "X", "color": "red"}}}`, nil }
	m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NoError(t, m.err)

	res := m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, ActionImport, res.Action)
	require.Equal(t, "X", res.Config.CommitTypes["x"].Label)
}

func TestTypingGoesToTextarea(t *testing.T) {
	m := opened(t)
	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	m.HandleKey(keyRunes("{}"))
	require.Equal(t, "{}", m.area.Value())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.ErrorIs(t, m.err, labels.ErrInvalidImport)
}
