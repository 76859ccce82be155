// Package typeeditor is the label configuration editor overlay. It edits a
// clone of the live configuration; nothing changes until save.
package typeeditor

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dylan/commitlabels/labels"
	"github.com/dylan/commitlabels/tui/shared"
)

type Mode int

const (
	ListMode Mode = iota
	InputMode
	ConfirmResetMode
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionSave
	ActionReset
)

// KeyResult tells the app what a key press asks for. Cmd carries the text
// input's own command while editing.
type KeyResult struct {
	Action ActionKind
	Config *labels.Configuration
	Cmd    tea.Cmd
}

// field is what the text input is currently editing.
type field int

const (
	fieldAliases field = iota
	fieldNewGroup
	fieldEmoji
	fieldLabel
	fieldDescription
)

func (f field) String() string {
	switch f {
	case fieldAliases:
		return "Aliases"
	case fieldNewGroup:
		return "New type"
	case fieldEmoji:
		return "Emoji"
	case fieldLabel:
		return "Label"
	default:
		return "Description"
	}
}

type setting struct {
	name string
	get  func(*labels.Configuration) *bool
}

var settings = []setting{
	{"Remove commit type prefix from message", func(c *labels.Configuration) *bool { return &c.RemovePrefix }},
	{"Show type descriptions as tooltips", func(c *labels.Configuration) *bool { return &c.EnableTooltips }},
	{"Show labels", func(c *labels.Configuration) *bool { return &c.LabelsVisible }},
	{"Show commit scope", func(c *labels.Configuration) *bool { return &c.ShowScope }},
	{"Show visibility toggle", func(c *labels.Configuration) *bool { return &c.ShowFloatingButton }},
}

type Model struct {
	mode    Mode
	working *labels.Configuration
	reg     *labels.Registry
	palette *labels.Palette
	groups  []labels.Group

	cursor       int // over settings, then groups
	scrollOffset int

	input   textinput.Model
	editing field
	dirty   bool
	err     error

	width  int
	height int
}

func New() Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 48
	return Model{input: ti, palette: labels.DefaultPalette()}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.input.Width = min(max(w-24, 10), 60)
}

// Open starts editing a clone of cfg.
func (m *Model) Open(cfg *labels.Configuration) {
	m.working = cfg.Clone()
	m.reg = labels.NewRegistry(m.working.CommitTypes)
	m.mode = ListMode
	m.cursor = 0
	m.scrollOffset = 0
	m.dirty = false
	m.err = nil
	m.refreshGroups()
}

// Working returns the configuration being edited.
func (m Model) Working() *labels.Configuration {
	return m.working
}

// Dirty reports whether there are unsaved edits.
func (m Model) Dirty() bool {
	return m.dirty
}

func (m *Model) refreshGroups() {
	m.groups = m.reg.Groups()
	if m.cursor >= m.rowCount() {
		m.cursor = max(m.rowCount()-1, 0)
	}
	m.ensureCursorVisible()
}

func (m Model) rowCount() int {
	return len(settings) + len(m.groups)
}

// selectedGroup returns the group under the cursor.
func (m Model) selectedGroup() (labels.Group, bool) {
	i := m.cursor - len(settings)
	if i < 0 || i >= len(m.groups) {
		return labels.Group{}, false
	}
	return m.groups[i], true
}

// selectGroup moves the cursor to the group containing alias.
func (m *Model) selectGroup(alias string) {
	for i, g := range m.groups {
		if slices.Contains(g.Aliases, alias) {
			m.cursor = len(settings) + i
			m.ensureCursorVisible()
			return
		}
	}
}

// listHeight returns how many rows fit in the visible area.
func (m Model) listHeight() int {
	h := m.height - 14
	if h < 5 {
		h = 5
	}
	return min(h, m.rowCount())
}

func (m *Model) ensureCursorVisible() {
	h := m.listHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+h {
		m.scrollOffset = m.cursor - h + 1
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.mode != InputMode {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) HandleKey(msg tea.KeyMsg) KeyResult {
	switch m.mode {
	case InputMode:
		return m.handleInputKey(msg)
	case ConfirmResetMode:
		return m.handleConfirmKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) KeyResult {
	m.err = nil
	switch msg.String() {
	case "esc", "q":
		return KeyResult{Action: ActionClose}
	case "j", "down":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
	case " ", "enter":
		if m.cursor < len(settings) {
			v := settings[m.cursor].get(m.working)
			*v = !*v
			m.dirty = true
		} else {
			m.startInput(fieldAliases)
		}
	case "a":
		m.startInput(fieldAliases)
	case "i":
		m.startInput(fieldEmoji)
	case "l":
		m.startInput(fieldLabel)
	case "d":
		m.startInput(fieldDescription)
	case "c":
		m.cycleColor(1)
	case "C":
		m.cycleColor(-1)
	case "n":
		m.startInput(fieldNewGroup)
	case "x", "delete":
		m.deleteGroup()
	case "s", "ctrl+s":
		if err := m.working.Validate(); err != nil {
			m.err = err
			return KeyResult{Action: ActionNone}
		}
		return KeyResult{Action: ActionSave, Config: m.working}
	case "R":
		m.mode = ConfirmResetMode
	}
	return KeyResult{Action: ActionNone}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) KeyResult {
	m.mode = ListMode
	if msg.String() == "y" || msg.String() == "Y" {
		return KeyResult{Action: ActionReset, Config: labels.DefaultConfiguration()}
	}
	return KeyResult{Action: ActionNone}
}

func (m *Model) handleInputKey(msg tea.KeyMsg) KeyResult {
	switch msg.String() {
	case "esc":
		m.mode = ListMode
		m.input.Blur()
	case "enter":
		if err := m.applyInput(strings.TrimSpace(m.input.Value())); err != nil {
			m.err = err
			return KeyResult{Action: ActionNone}
		}
		m.err = nil
		m.mode = ListMode
		m.input.Blur()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return KeyResult{Action: ActionNone, Cmd: cmd}
	}
	return KeyResult{Action: ActionNone}
}

// startInput opens the text input for f, prefilled with the current value.
func (m *Model) startInput(f field) {
	g, ok := m.selectedGroup()
	if !ok && f != fieldNewGroup {
		return
	}

	value := ""
	switch f {
	case fieldAliases:
		value = strings.Join(g.Aliases, ", ")
	case fieldEmoji:
		value = g.Style.Emoji
	case fieldLabel:
		value = g.Style.Label
	case fieldDescription:
		value = g.Style.Description
	}

	m.editing = f
	m.mode = InputMode
	m.err = nil
	m.input.Placeholder = strings.ToLower(f.String())
	if f == fieldAliases || f == fieldNewGroup {
		m.input.Placeholder = "aliases, separated by commas"
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) applyInput(value string) error {
	if m.editing == fieldNewGroup {
		g, err := m.reg.AddGroup(labels.ParseAliases(value))
		if err != nil {
			return err
		}
		m.dirty = true
		m.refreshGroups()
		m.selectGroup(g.Aliases[0])
		return nil
	}

	g, ok := m.selectedGroup()
	if !ok {
		return labels.ErrGroupNotFound
	}

	if m.editing == fieldAliases {
		aliases, err := m.reg.SetAliases(g.Aliases, labels.ParseAliases(value))
		if err != nil {
			return err
		}
		m.dirty = true
		m.refreshGroups()
		m.selectGroup(aliases[0])
		return nil
	}

	style := g.Style
	switch m.editing {
	case fieldEmoji:
		style.Emoji = value
	case fieldLabel:
		if value == "" {
			return errors.New("label cannot be empty")
		}
		style.Label = value
	case fieldDescription:
		style.Description = value
	}
	return m.updateGroup(g, style)
}

func (m *Model) cycleColor(step int) {
	g, ok := m.selectedGroup()
	if !ok {
		return
	}
	keys := m.palette.Keys()
	i := slices.Index(keys, g.Style.Color)
	next := (i + step + len(keys)) % len(keys)
	if i < 0 {
		next = 0
	}
	style := g.Style
	style.Color = keys[next]
	m.err = m.updateGroup(g, style)
}

// updateGroup applies style to g. Two groups that end up with an equal style
// merge, as they would on reload.
func (m *Model) updateGroup(g labels.Group, style labels.TypeStyle) error {
	if err := m.reg.UpdateGroup(g.Aliases, style); err != nil {
		return err
	}
	m.dirty = true
	m.refreshGroups()
	m.selectGroup(g.Aliases[0])
	return nil
}

func (m *Model) deleteGroup() {
	g, ok := m.selectedGroup()
	if !ok {
		return
	}
	if len(m.groups) == 1 {
		m.err = labels.ErrNoCommitTypes
		return
	}
	if err := m.reg.DeleteGroup(g.Aliases); err != nil {
		m.err = err
		return
	}
	m.dirty = true
	m.refreshGroups()
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

	title := "Commit Labels Configuration"
	if m.dirty {
		title += " *"
	}
	b.WriteString(shared.OverlayTitleStyle.Render(title))
	b.WriteString("\n\n")

	end := min(m.scrollOffset+m.listHeight(), m.rowCount())
	for i := m.scrollOffset; i < end; i++ {
		var line string
		if i < len(settings) {
			line = m.renderSetting(settings[i])
		} else {
			line = m.renderGroup(m.groups[i-len(settings)])
		}
		if i == m.cursor {
			line = shared.CursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if end < m.rowCount() {
		b.WriteString(shared.DimStyle.Render(fmt.Sprintf("  … %d more", m.rowCount()-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.mode {
	case InputMode:
		b.WriteString(shared.FieldSelectedStyle.Render(m.editing.String()))
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(shared.HelpDescStyle.Render("enter: apply  esc: cancel"))
	case ConfirmResetMode:
		b.WriteString(shared.ErrorStyle.Render("Reset all settings to default? This removes every custom type. (y/n)"))
	default:
		b.WriteString(shared.HelpDescStyle.Render("space: toggle  a: aliases  i: emoji  l: label  d: description  c/C: color"))
		b.WriteString("\n")
		b.WriteString(shared.HelpDescStyle.Render("n: new type  x: delete  s: save  R: reset  esc: close"))
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(shared.ErrorStyle.Render(m.err.Error()))
	}
	return b.String()
}

func (m Model) renderSetting(s setting) string {
	box := "[ ]"
	if *s.get(m.working) {
		box = "[x]"
	}
	return "  " + shared.HelpKeyStyle.Render(box) + " " + shared.ItemStyle.Render(s.name)
}

func (m Model) renderGroup(g labels.Group) string {
	colors, _ := m.palette.Resolve(g.Style.Color, labels.ThemeDark)
	badge := shared.BadgeStyle(colors).Render(strings.TrimSpace(g.Style.Emoji + " " + g.Style.Label))
	aliases := shared.ItemSelectedStyle.Render(strings.Join(g.Aliases, ", "))
	return "  " + aliases + "  " + badge + " " + shared.DimStyle.Render(g.Style.Color)
}
