package shared

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FeedbackLevel controls styling and auto-clear duration.
type FeedbackLevel int

const (
	FeedbackInfo    FeedbackLevel = iota // transient, auto-clears 4s
	FeedbackSuccess                      // green styled, auto-clears 4s
	FeedbackWarning                      // yellow, auto-clears 8s
	FeedbackError                        // red, auto-clears 12s
)

// FeedbackTTL returns the auto-clear duration for a given level.
func FeedbackTTL(level FeedbackLevel) time.Duration {
	switch level {
	case FeedbackWarning:
		return 8 * time.Second
	case FeedbackError:
		return 12 * time.Second
	default:
		return 4 * time.Second
	}
}

// Feedback represents a user-facing feedback message.
type Feedback struct {
	Level     FeedbackLevel
	Message   string
	Timestamp time.Time
	Op        LoaderOp // which operation produced this
}

// Style returns the status bar style for the feedback level.
func (f Feedback) Style() lipgloss.Style {
	switch f.Level {
	case FeedbackSuccess:
		return FeedbackSuccessStyle
	case FeedbackWarning:
		return FeedbackWarningStyle
	case FeedbackError:
		return FeedbackErrorStyle
	default:
		return lipgloss.NewStyle()
	}
}

// FeedbackMsg delivers a feedback message to the app.
type FeedbackMsg struct {
	Feedback Feedback
}

// ExpireFeedbackMsg clears the feedback stamped at At, unless a newer one
// replaced it.
type ExpireFeedbackMsg struct {
	At time.Time
}

// Notify builds a command delivering feedback.
func Notify(level FeedbackLevel, op LoaderOp, message string) tea.Cmd {
	return func() tea.Msg {
		return FeedbackMsg{Feedback: Feedback{Level: level, Message: message, Timestamp: time.Now(), Op: op}}
	}
}

// ExpireAfterTTL schedules the expiry of f.
func ExpireAfterTTL(f Feedback) tea.Cmd {
	return tea.Tick(FeedbackTTL(f.Level), func(time.Time) tea.Msg {
		return ExpireFeedbackMsg{At: f.Timestamp}
	})
}
