package commitlist

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/commitlabels/git"
	"github.com/dylan/commitlabels/labels"
	"github.com/dylan/commitlabels/tui/icons"
	"github.com/dylan/commitlabels/tui/shared"
)

// StrategyName names the discovery strategy over commit rows.
const StrategyName = "commit-rows"

type Model struct {
	vp       viewport.Model
	repoPath string
	branch   string

	rows []*Row

	// Cursor tracking for commit selection
	cursor        int   // index into commitIndices
	commitIndices []int // row indices where IsCommit == true

	showGraph bool
	exhausted bool // no more commits to load

	ready  bool
	width  int
	height int
}

func New(showGraph bool) Model {
	return Model{showGraph: showGraph}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.ready = true
	// Width change invalidates cached rendered lines
	m.markAllDirty()
	m.rebuildViewport()
}

func (m Model) listHeight() int {
	return max(m.height-1, 1) // 1 for the repo header
}

func (m *Model) rebuildViewport() {
	if !m.ready {
		return
	}
	offset := m.vp.YOffset
	m.vp = viewport.New(m.width, m.listHeight())
	m.vp.SetContent(m.compose())
	m.vp.SetYOffset(offset)
	m.ensureCursorVisible()
}

// SetGraph replaces the list, as on a repo switch. Every row gets a new key.
func (m *Model) SetGraph(lines []git.GraphLine, repoPath, branch string, exhausted bool) {
	m.repoPath = repoPath
	m.branch = branch
	m.exhausted = exhausted
	m.rows = make([]*Row, 0, len(lines))
	for _, l := range lines {
		m.rows = append(m.rows, newRow(l))
	}
	m.cursor = 0
	m.indexCommits()
	m.Rerender()
	m.vp.GotoTop()
}

// AppendGraph adds a further page of commits. Commits already listed are
// skipped, so overlapping pages never duplicate rows.
func (m *Model) AppendGraph(lines []git.GraphLine, exhausted bool) int {
	m.exhausted = exhausted
	seen := m.hashes()
	added := 0
	for _, l := range lines {
		if l.IsCommit {
			if _, dup := seen[l.Hash]; dup {
				continue
			}
			seen[l.Hash] = struct{}{}
			added++
		}
		m.rows = append(m.rows, newRow(l))
	}
	m.indexCommits()
	m.Rerender()
	return added
}

// MergeGraph applies a refreshed graph in place. Rows for commits that are
// still present are kept with their keys and labels; new commits get new
// rows.
func (m *Model) MergeGraph(lines []git.GraphLine, branch string, exhausted bool) {
	byHash := make(map[string]*Row, len(m.rows))
	for _, r := range m.rows {
		if r.IsCommit() {
			byHash[r.Hash()] = r
		}
	}

	selected := m.SelectedHash()
	m.branch = branch
	m.exhausted = exhausted
	rows := make([]*Row, 0, len(lines))
	for _, l := range lines {
		if r, ok := byHash[l.Hash]; ok && l.IsCommit {
			r.setLine(l)
			rows = append(rows, r)
			delete(byHash, l.Hash)
			continue
		}
		rows = append(rows, newRow(l))
	}
	m.rows = rows
	m.indexCommits()

	m.cursor = 0
	for i, idx := range m.commitIndices {
		if m.rows[idx].Hash() == selected {
			m.cursor = i
			break
		}
	}
	m.Rerender()
}

func (m *Model) indexCommits() {
	m.commitIndices = nil
	for i, r := range m.rows {
		if r.IsCommit() {
			m.commitIndices = append(m.commitIndices, i)
		}
	}
	if m.cursor >= len(m.commitIndices) {
		m.cursor = max(len(m.commitIndices)-1, 0)
	}
}

func (m Model) hashes() map[string]struct{} {
	out := make(map[string]struct{}, len(m.commitIndices))
	for _, idx := range m.commitIndices {
		out[m.rows[idx].Hash()] = struct{}{}
	}
	return out
}

// Entries returns the commit rows as label entries.
func (m Model) Entries() []labels.Entry {
	out := make([]labels.Entry, 0, len(m.commitIndices))
	for _, idx := range m.commitIndices {
		out = append(out, m.rows[idx])
	}
	return out
}

// Strategy returns the discovery strategy over the current rows.
func (m Model) Strategy() labels.Strategy {
	entries := m.Entries()
	return labels.Strategy{
		Name: StrategyName,
		Find: func() ([]labels.Entry, error) { return entries, nil },
	}
}

// SetShowGraph shows or hides the graph columns.
func (m *Model) SetShowGraph(show bool) {
	m.showGraph = show
	m.markAllDirty()
	m.Rerender()
}

func (m Model) ShowGraph() bool {
	return m.showGraph
}

func (m *Model) markAllDirty() {
	for _, r := range m.rows {
		r.dirty = true
	}
}

// Rerender redraws rows whose title or label changed.
func (m *Model) Rerender() {
	for _, r := range m.rows {
		if r.dirty {
			r.rendered = renderRow(r, m.showGraph)
			r.dirty = false
		}
	}
	if m.ready {
		m.vp.SetContent(m.compose())
		m.ensureCursorVisible()
	}
}

func (m *Model) MoveDown() {
	if m.cursor < len(m.commitIndices)-1 {
		m.cursor++
		m.vp.SetContent(m.compose())
		m.ensureCursorVisible()
	}
}

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.vp.SetContent(m.compose())
		m.ensureCursorVisible()
	}
}

func (m *Model) GotoTop() {
	m.cursor = 0
	m.vp.SetContent(m.compose())
	m.vp.GotoTop()
}

func (m *Model) GotoBottom() {
	m.cursor = max(len(m.commitIndices)-1, 0)
	m.vp.SetContent(m.compose())
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	if len(m.commitIndices) == 0 {
		return
	}
	lineIdx := m.commitIndices[m.cursor]
	h := m.listHeight()
	topLine := m.vp.YOffset
	bottomLine := topLine + h - 1
	if lineIdx < topLine {
		m.vp.SetYOffset(lineIdx)
	} else if lineIdx > bottomLine {
		m.vp.SetYOffset(lineIdx - h + 1)
	}
}

// AtEnd reports whether the cursor sits on the last loaded commit.
func (m Model) AtEnd() bool {
	return len(m.commitIndices) > 0 && m.cursor == len(m.commitIndices)-1
}

// CanLoadMore reports whether older commits remain to be fetched.
func (m Model) CanLoadMore() bool {
	return !m.exhausted && len(m.commitIndices) > 0
}

// CommitCount returns the number of loaded commits.
func (m Model) CommitCount() int {
	return len(m.commitIndices)
}

// Selected returns the row under the cursor.
func (m Model) Selected() (*Row, bool) {
	if len(m.commitIndices) == 0 {
		return nil, false
	}
	return m.rows[m.commitIndices[m.cursor]], true
}

func (m Model) SelectedHash() string {
	if r, ok := m.Selected(); ok {
		return r.Hash()
	}
	return ""
}

func (m Model) RepoPath() string {
	return m.repoPath
}

func (m Model) Branch() string {
	return m.branch
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, shared.Keys.Down):
			m.MoveDown()
			return m, nil
		case key.Matches(msg, shared.Keys.Up):
			m.MoveUp()
			return m, nil
		case key.Matches(msg, shared.Keys.Top):
			m.GotoTop()
			return m, nil
		case key.Matches(msg, shared.Keys.Bottom):
			m.GotoBottom()
			return m, nil
		}
	}
	// pgup/pgdn and mouse wheel scroll the viewport
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}

	header := icons.Glyph(icons.Repo) + " " + shared.RepoHeaderStyle.Render(repoName(m.repoPath))
	if m.branch != "" {
		header += "  " + shared.BranchStyle.Render(icons.Glyph(icons.Branch)+" "+m.branch)
	}
	return header + "\n" + fixedHeight(m.vp.View(), m.listHeight())
}

// --- Rendering ---

// compose assembles the list from the cached rendered rows, applying the
// cursor highlight to the selected commit.
func (m Model) compose() string {
	if len(m.rows) == 0 {
		return "  No commits"
	}

	cursorLineIdx := -1
	if len(m.commitIndices) > 0 && m.cursor < len(m.commitIndices) {
		cursorLineIdx = m.commitIndices[m.cursor]
	}

	var b strings.Builder
	for i, r := range m.rows {
		if i == cursorLineIdx {
			b.WriteString(shared.CursorStyle.Width(m.width).Render(r.rendered))
		} else {
			b.WriteString(r.rendered)
		}
		b.WriteString("\n")
	}
	if m.CanLoadMore() {
		b.WriteString(shared.DimStyle.Render("  ··· " + shared.Keys.LoadMore.Help().Key + " to load more"))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow renders a single row. Called only when the row is dirty.
func renderRow(r *Row, showGraph bool) string {
	var b strings.Builder

	if showGraph {
		b.WriteString(colorGraphChars(r.line.GraphChars))
	}

	if !r.IsCommit() {
		return b.String()
	}

	if r.line.Hash != "" {
		hash := r.line.Hash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		b.WriteString(shared.GraphHashStyle.Render(hash))
		b.WriteString(" ")
	}

	if r.line.Refs != "" {
		b.WriteString(shared.GraphRefStyle.Render(r.line.Refs))
		b.WriteString(" ")
	}

	if badge := renderBadge(r.label); badge != "" {
		b.WriteString(badge)
		b.WriteString(" ")
	}

	b.WriteString(shared.CommitMsgStyle.Render(r.title))
	return b.String()
}

// renderBadge draws a label as a colored badge followed by its scope. Hidden
// labels render as nothing.
func renderBadge(l *labels.Label) string {
	if l == nil || !l.Visible {
		return ""
	}
	text := l.Text
	if icon := icons.ForType(l.Type, l.Emoji); icon != "" {
		text = icon + " " + text
	}
	badge := shared.BadgeStyle(l.Colors).Render(text)
	if suffix := l.ScopeSuffix(); suffix != "" {
		badge += shared.ScopeStyle.Render(suffix)
	}
	return badge
}

// --- Helpers ---

// fixedHeight ensures a string has exactly h lines, truncating or padding as needed.
func fixedHeight(s string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func colorGraphChars(chars string) string {
	if len(shared.GraphLineColors) == 0 {
		return chars
	}

	var b strings.Builder
	col := 0
	for _, ch := range chars {
		style := shared.GraphLineColors[col%len(shared.GraphLineColors)]
		switch ch {
		case ' ':
			b.WriteRune(ch)
		case '*':
			b.WriteString(style.Render(icons.Glyph(icons.Commit)))
		default:
			b.WriteString(style.Render(string(ch)))
		}
		col++
	}
	return b.String()
}

func repoName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
