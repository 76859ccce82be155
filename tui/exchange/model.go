// Package exchange is the export/import dialog for the label configuration.
package exchange

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dylan/commitlabels/labels"
	"github.com/dylan/commitlabels/tui/shared"
)

type Mode int

const (
	ExportMode Mode = iota
	ImportMode
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionCopy
	ActionEdit
	ActionImport
)

type KeyResult struct {
	Action ActionKind
	Text   string
	Config *labels.Configuration
	Cmd    tea.Cmd
}

var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
)

type Model struct {
	mode     Mode
	area     textarea.Model
	exported string
	err      error
	notice   string

	width  int
	height int
}

func New() Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	return Model{area: ta}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.area.SetWidth(min(max(w-12, 20), 100))
	m.area.SetHeight(max(h-14, 5))
}

// Open shows cfg as indented JSON.
func (m *Model) Open(cfg *labels.Configuration) error {
	text, err := labels.Export(cfg)
	if err != nil {
		return err
	}
	m.exported = string(text)
	m.mode = ExportMode
	m.err = nil
	m.notice = ""
	m.area.SetValue(m.exported)
	m.area.Blur()
	return nil
}

// Mode returns whether the dialog is exporting or importing.
func (m Model) Mode() Mode {
	return m.mode
}

// Exported returns the JSON shown in export mode.
func (m Model) Exported() string {
	return m.exported
}

// SetError shows err under the text.
func (m *Model) SetError(err error) {
	m.err = err
}

// SetNotice shows a transient line under the text.
func (m *Model) SetNotice(s string) {
	m.notice = s
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.mode != ImportMode {
		return m, nil
	}
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m *Model) HandleKey(msg tea.KeyMsg) KeyResult {
	m.err = nil
	switch msg.String() {
	case "esc":
		if m.mode == ImportMode {
			m.mode = ExportMode
			m.area.SetValue(m.exported)
			m.area.Blur()
			return KeyResult{Action: ActionNone}
		}
		return KeyResult{Action: ActionClose}
	case "tab":
		if m.mode == ExportMode {
			m.mode = ImportMode
			m.notice = ""
			m.area.Reset()
			m.area.Focus()
		}
		return KeyResult{Action: ActionNone}
	}

	switch m.mode {
	case ExportMode:
		switch msg.String() {
		case "q":
			return KeyResult{Action: ActionClose}
		case "y", "c":
			return KeyResult{Action: ActionCopy, Text: m.exported}
		case "o":
			return KeyResult{Action: ActionEdit, Text: m.exported}
		}
	case ImportMode:
		switch msg.String() {
		case "ctrl+r":
			text, err := readClipboard()
			if err != nil {
				m.err = fmt.Errorf("reading clipboard: %w", err)
				return KeyResult{Action: ActionNone}
			}
			m.area.SetValue(text)
		case "ctrl+s":
			cfg, err := labels.Import([]byte(m.area.Value()))
			if err != nil {
				m.err = err
				return KeyResult{Action: ActionNone}
			}
			return KeyResult{Action: ActionImport, Config: cfg}
		default:
			var cmd tea.Cmd
			m.area, cmd = m.area.Update(msg)
			return KeyResult{Action: ActionNone, Cmd: cmd}
		}
	}
	return KeyResult{Action: ActionNone}
}

// CopyCmd writes text to the system clipboard.
func CopyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return shared.ClipboardCopiedMsg{Err: writeClipboard(text)}
	}
}

// --- Rendering ---

func (m Model) ViewOverlay(w, h int) string {
	overlay := shared.OverlayStyle.Render(m.renderContent())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}

func (m Model) renderContent() string {
	var b strings.Builder

	title := "Export configuration"
	help := "y: copy to clipboard  o: open in $EDITOR  tab: import  esc: close"
	if m.mode == ImportMode {
		title = "Import configuration"
		help = "paste JSON  ctrl+r: paste from clipboard  ctrl+s: import  esc: back"
	}
	b.WriteString(shared.OverlayTitleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.area.View())
	b.WriteString("\n\n")
	b.WriteString(shared.HelpDescStyle.Render(help))

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(shared.FeedbackSuccessStyle.Render(m.notice))
	}
	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(shared.ErrorStyle.Render(m.err.Error()))
	}
	return b.String()
}
