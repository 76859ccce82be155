// Package nvim round-trips text through the user's editor.
package nvim

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// EditorFinishedMsg carries the edited text back to the TUI.
type EditorFinishedMsg struct {
	Text string
	Err  error
}

// Editor returns $VISUAL, then $EDITOR, then nvim.
func Editor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	return "nvim"
}

// Command builds the editor process for path. The editor value may carry
// arguments ("code --wait").
func Command(path string) *exec.Cmd {
	fields := strings.Fields(Editor())
	return exec.Command(fields[0], append(fields[1:], path)...)
}

func tempFile(text, pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(text); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	return f.Name(), nil
}

func readBack(path string, runErr error) (string, error) {
	defer os.Remove(path)
	if runErr != nil {
		return "", fmt.Errorf("running %s: %w", Editor(), runErr)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return string(data), nil
}

// Edit opens text in the editor attached to the current terminal and
// returns what was saved.
func Edit(text, pattern string) (string, error) {
	path, err := tempFile(text, pattern)
	if err != nil {
		return "", err
	}
	c := Command(path)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	return readBack(path, c.Run())
}

// EditCmd is Edit for a running bubbletea program, which is suspended
// while the editor has the terminal.
func EditCmd(text, pattern string) tea.Cmd {
	path, err := tempFile(text, pattern)
	if err != nil {
		return func() tea.Msg { return EditorFinishedMsg{Err: err} }
	}
	return tea.ExecProcess(Command(path), func(err error) tea.Msg {
		text, err := readBack(path, err)
		return EditorFinishedMsg{Text: text, Err: err}
	})
}
