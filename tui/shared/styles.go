package shared

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dylan/commitlabels/config"
	"github.com/dylan/commitlabels/labels"
)

var (
	// Repo header
	RepoHeaderStyle lipgloss.Style
	BranchStyle     lipgloss.Style

	// Cursor highlight
	CursorStyle lipgloss.Style

	DimStyle   lipgloss.Style
	MutedStyle lipgloss.Style

	// Status bar
	StatusBarStyle lipgloss.Style
	ToggleOnStyle  lipgloss.Style
	ToggleOffStyle lipgloss.Style

	// Help styles
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
	HelpOverlayStyle lipgloss.Style

	// Error
	ErrorStyle lipgloss.Style

	// Commit list
	GraphHashStyle   lipgloss.Style
	GraphRefStyle    lipgloss.Style
	CommitMsgStyle   lipgloss.Style
	ScopeStyle       lipgloss.Style
	GraphBorderStyle lipgloss.Style
	GraphLineColors  []lipgloss.Style

	// Overlays (type editor, export/import)
	OverlayStyle       lipgloss.Style
	OverlayTitleStyle  lipgloss.Style
	ItemStyle          lipgloss.Style
	ItemSelectedStyle  lipgloss.Style
	FieldLabelStyle    lipgloss.Style
	FieldSelectedStyle lipgloss.Style

	// Spinner
	SpinnerStyle lipgloss.Style

	// Feedback
	FeedbackSuccessStyle lipgloss.Style
	FeedbackWarningStyle lipgloss.Style
	FeedbackErrorStyle   lipgloss.Style
)

// InitStyles configures all styles from a resolved theme.
// Optional graphColors overrides the default graph color palette.
func InitStyles(theme config.ThemeConfig, graphColors ...[]string) {
	RepoHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.RepoHeader))

	BranchStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent2))

	CursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CursorBG))

	DimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	MutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFG)).
		Background(lipgloss.Color(theme.StatusBarBG)).
		Padding(0, 1)

	ToggleOnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarBG)).
		Background(lipgloss.Color(theme.Accent)).
		Padding(0, 1)

	ToggleOffStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim)).
		Background(lipgloss.Color(theme.CursorBG)).
		Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Muted)).
		Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))

	GraphHashStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	GraphRefStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)

	CommitMsgStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FG))

	ScopeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim)).
		Faint(true)

	GraphBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(theme.Muted))

	gc := config.DefaultGraphColors()
	if len(graphColors) > 0 && len(graphColors[0]) > 0 {
		gc = graphColors[0]
	}
	GraphLineColors = make([]lipgloss.Style, len(gc))
	for i, c := range gc {
		GraphLineColors[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	OverlayTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.FG))

	ItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FG))

	ItemSelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent2)).
		Bold(true)

	FieldLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim)).
		Width(13)

	FieldSelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Width(13)

	SpinnerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	FeedbackSuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackSuccessFG)).
		Background(lipgloss.Color(theme.FeedbackSuccessBG)).
		Padding(0, 1)

	FeedbackWarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackWarningFG)).
		Background(lipgloss.Color(theme.FeedbackWarningBG)).
		Padding(0, 1)

	FeedbackErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackErrorFG)).
		Background(lipgloss.Color(theme.FeedbackErrorBG)).
		Padding(0, 1)
}

// BadgeStyle returns the badge style for resolved label colors.
func BadgeStyle(c labels.Colors) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Foreground)).
		Background(lipgloss.Color(c.Background)).
		Padding(0, 1)
}

func init() {
	// Initialize with defaults so styles work even without explicit InitStyles call
	InitStyles(config.DefaultTheme())
}
