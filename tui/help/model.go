package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dylan/commitlabels/tui/shared"
)

var groupNames = []string{"Commits", "Repositories", "Labels", "General"}

type Model struct {
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(shared.OverlayTitleStyle.Render("Commit Labels Help"))
	b.WriteString("\n\n")

	for i, group := range shared.Keys.FullHelp() {
		if i < len(groupNames) {
			b.WriteString(lipgloss.NewStyle().Bold(true).Render(groupNames[i]))
			b.WriteString("\n")
		}
		for _, k := range group {
			help := k.Help()
			key := shared.HelpKeyStyle.Render(help.Key)
			desc := shared.HelpDescStyle.Render(help.Desc)
			b.WriteString("  " + key + "  " + desc + "\n")
		}
		b.WriteString("\n")
	}

	content := shared.HelpOverlayStyle.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
