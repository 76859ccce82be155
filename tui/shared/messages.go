package shared

import (
	"github.com/dylan/commitlabels/git"
	"github.com/dylan/commitlabels/labels"
)

// GraphFetchedMsg carries a page of the commit graph. Skip is non-zero for
// "load more" pages, which are appended instead of replacing the list.
type GraphFetchedMsg struct {
	Lines    []git.GraphLine
	RepoPath string
	Branch   string
	Skip     int
	Refresh  bool
	Err      error
}

// ScanDueMsg means the scheduler wants a scan.
type ScanDueMsg struct{}

// ScanStepMsg advances the running scan by one batch.
type ScanStepMsg struct {
	Gen int
}

// RepoChangedMsg is sent when the watched repository's refs move.
type RepoChangedMsg struct {
	RepoPath string
}

// ConfigChangedMsg is sent when the app config file changes on disk.
type ConfigChangedMsg struct{}

// AppearanceMsg reports the OS dark-mode preference.
type AppearanceMsg struct {
	Dark bool
}

// ColorModeSavedMsg reports the result of persisting a new color mode.
type ColorModeSavedMsg struct {
	Mode string
	Err  error
}

// LabelConfigSavedMsg reports the result of persisting the label
// configuration. Config is the configuration that was saved.
type LabelConfigSavedMsg struct {
	Config *labels.Configuration
	Source string
	Err    error
}

type CloseEditorMsg struct{}
type CloseExchangeMsg struct{}

type ClipboardCopiedMsg struct {
	Err error
}
