package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dylan/commitlabels/labels"
)

type Config struct {
	Workspace WorkspaceInfo   `toml:"workspace"`
	Projects  []ProjectConfig `toml:"project"`
	Display   DisplayConfig   `toml:"display"`
	Theme     ThemeConfig     `toml:"theme"`
	Storage   StorageConfig   `toml:"storage"`
	Log       LogConfig       `toml:"log"`
}

type WorkspaceInfo struct {
	Name string `toml:"name"`
}

type ProjectConfig struct {
	Name  string       `toml:"name"`
	Path  string       `toml:"path"` // project root; relative repo paths resolve against it
	Repos []RepoConfig `toml:"repo"`
}

type RepoConfig struct {
	Path string `toml:"path"`
}

type DisplayConfig struct {
	Icons           bool  `toml:"icons,omitempty"`
	NerdFonts       bool  `toml:"nerd_fonts,omitempty"`
	GraphMaxCommits int   `toml:"graph_max_commits,omitempty"`
	PageSize        int   `toml:"page_size,omitempty"` // commits appended by "load more"
	ShowGraph       *bool `toml:"show_graph,omitempty"`
}

// ThemeConfig holds the label theme signals and the UI chrome colors.
type ThemeConfig struct {
	// ColorMode is light, dark or auto. Auto follows the OS preference.
	ColorMode  string `toml:"color_mode,omitempty"`
	DayTheme   string `toml:"day_theme,omitempty"`
	NightTheme string `toml:"night_theme,omitempty"`

	FG          string   `toml:"fg,omitempty"`
	Accent      string   `toml:"accent,omitempty"`
	Accent2     string   `toml:"accent2,omitempty"`
	Muted       string   `toml:"muted,omitempty"`
	Dim         string   `toml:"dim,omitempty"`
	RepoHeader  string   `toml:"repo_header,omitempty"`
	StatusBarBG string   `toml:"status_bar_bg,omitempty"`
	StatusBarFG string   `toml:"status_bar_fg,omitempty"`
	Error       string   `toml:"error,omitempty"`
	CursorBG    string   `toml:"cursor_bg,omitempty"`
	GraphColors []string `toml:"graph_colors,omitempty"`

	FeedbackSuccessFG string `toml:"feedback_success_fg,omitempty"`
	FeedbackSuccessBG string `toml:"feedback_success_bg,omitempty"`
	FeedbackWarningFG string `toml:"feedback_warning_fg,omitempty"`
	FeedbackWarningBG string `toml:"feedback_warning_bg,omitempty"`
	FeedbackErrorFG   string `toml:"feedback_error_fg,omitempty"`
	FeedbackErrorBG   string `toml:"feedback_error_bg,omitempty"`
}

type StorageConfig struct {
	Path string `toml:"path,omitempty"`
}

type LogConfig struct {
	File  string `toml:"file,omitempty"`
	Level string `toml:"level,omitempty"`
}

// Dir returns ~/.config/commitlabels.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "commitlabels")
}

// DefaultConfigPath returns ~/.config/commitlabels/config.toml.
func DefaultConfigPath() string {
	return filepath.Join(Dir(), "config.toml")
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	absConfigDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return cfg, fmt.Errorf("resolving config directory: %w", err)
	}

	for pi := range cfg.Projects {
		proj := &cfg.Projects[pi]

		if proj.Path != "" {
			proj.Path = expandHome(proj.Path)
			if !filepath.IsAbs(proj.Path) {
				proj.Path = filepath.Join(absConfigDir, proj.Path)
			}
			if err := requireDir(proj.Path); err != nil {
				return cfg, fmt.Errorf("project path %q: %w", proj.Path, err)
			}
		}

		for ri := range proj.Repos {
			repo := &proj.Repos[ri]
			repo.Path = expandHome(repo.Path)

			// Resolve relative repo paths against project path (or config dir)
			if !filepath.IsAbs(repo.Path) {
				if proj.Path != "" {
					repo.Path = filepath.Join(proj.Path, repo.Path)
				} else {
					repo.Path = filepath.Join(absConfigDir, repo.Path)
				}
			}

			if err := requireDir(repo.Path); err != nil {
				return cfg, fmt.Errorf("repo path %q: %w", repo.Path, err)
			}
		}
	}

	return cfg, nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	return nil
}

// AllRepos returns all repos across all projects.
func (c Config) AllRepos() []RepoConfig {
	var repos []RepoConfig
	for _, proj := range c.Projects {
		repos = append(repos, proj.Repos...)
	}
	return repos
}

// WorkspaceName returns the workspace name, or "commitlabels" as fallback.
func (c Config) WorkspaceName() string {
	if c.Workspace.Name != "" {
		return c.Workspace.Name
	}
	return "commitlabels"
}

// ThemeAttributes returns the label theme signals. An unset color mode
// means auto.
func (c Config) ThemeAttributes() labels.Attributes {
	mode := strings.ToLower(c.Theme.ColorMode)
	if mode == "" {
		mode = labels.ModeAuto
	}
	return labels.Attributes{
		ColorMode:  mode,
		LightTheme: c.Theme.DayTheme,
		DarkTheme:  c.Theme.NightTheme,
	}
}

// DefaultTheme returns the Vesper chrome palette.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		FG:          "#ffffff",
		Accent:      "#ffc799",
		Accent2:     "#99ffe4",
		Muted:       "#505050",
		Dim:         "#a0a0a0",
		RepoHeader:  "#ffffff",
		StatusBarBG: "#1a1a1a",
		StatusBarFG: "#a0a0a0",
		Error:       "#ff8080",
		CursorBG:    "#2a2a2a",

		FeedbackSuccessFG: "#99ffe4",
		FeedbackSuccessBG: "#1a3a2a",
		FeedbackWarningFG: "#ffc799",
		FeedbackWarningBG: "#2a2215",
		FeedbackErrorFG:   "#ff8080",
		FeedbackErrorBG:   "#3a1a1a",
	}
}

// ResolvedTheme merges config theme with defaults for any unset fields.
func (c Config) ResolvedTheme() ThemeConfig {
	d := DefaultTheme()
	return ThemeConfig{
		ColorMode:  c.Theme.ColorMode,
		DayTheme:   c.Theme.DayTheme,
		NightTheme: c.Theme.NightTheme,

		FG:          pick(c.Theme.FG, d.FG),
		Accent:      pick(c.Theme.Accent, d.Accent),
		Accent2:     pick(c.Theme.Accent2, d.Accent2),
		Muted:       pick(c.Theme.Muted, d.Muted),
		Dim:         pick(c.Theme.Dim, d.Dim),
		RepoHeader:  pick(c.Theme.RepoHeader, d.RepoHeader),
		StatusBarBG: pick(c.Theme.StatusBarBG, d.StatusBarBG),
		StatusBarFG: pick(c.Theme.StatusBarFG, d.StatusBarFG),
		Error:       pick(c.Theme.Error, d.Error),
		CursorBG:    pick(c.Theme.CursorBG, d.CursorBG),
		GraphColors: c.ResolvedGraphColors(),

		FeedbackSuccessFG: pick(c.Theme.FeedbackSuccessFG, d.FeedbackSuccessFG),
		FeedbackSuccessBG: pick(c.Theme.FeedbackSuccessBG, d.FeedbackSuccessBG),
		FeedbackWarningFG: pick(c.Theme.FeedbackWarningFG, d.FeedbackWarningFG),
		FeedbackWarningBG: pick(c.Theme.FeedbackWarningBG, d.FeedbackWarningBG),
		FeedbackErrorFG:   pick(c.Theme.FeedbackErrorFG, d.FeedbackErrorFG),
		FeedbackErrorBG:   pick(c.Theme.FeedbackErrorBG, d.FeedbackErrorBG),
	}
}

// DefaultGraphColors returns the default 6-color rotating palette for git graph lines.
func DefaultGraphColors() []string {
	return []string{"#6699ff", "#ffc799", "#ff99cc", "#99ffe4", "#cc99ff", "#ffff99"}
}

// ResolvedGraphColors returns config graph colors if set, otherwise defaults.
func (c Config) ResolvedGraphColors() []string {
	if len(c.Theme.GraphColors) > 0 {
		return c.Theme.GraphColors
	}
	return DefaultGraphColors()
}

// ResolvedGraphMaxCommits returns the configured max commits or 50 as default.
func (c Config) ResolvedGraphMaxCommits() int {
	if c.Display.GraphMaxCommits > 0 {
		return c.Display.GraphMaxCommits
	}
	return 50
}

// ResolvedPageSize returns how many commits "load more" appends.
func (c Config) ResolvedPageSize() int {
	if c.Display.PageSize > 0 {
		return c.Display.PageSize
	}
	return c.ResolvedGraphMaxCommits()
}

// ResolvedShowGraph returns the configured show_graph or true as default.
func (c Config) ResolvedShowGraph() bool {
	if c.Display.ShowGraph != nil {
		return *c.Display.ShowGraph
	}
	return true
}

// ResolvedStoragePath returns the label database path.
func (c Config) ResolvedStoragePath() string {
	if c.Storage.Path != "" {
		return expandHome(c.Storage.Path)
	}
	return filepath.Join(Dir(), "labels.db")
}

// ResolvedLogFile returns the log file path.
func (c Config) ResolvedLogFile() string {
	if c.Log.File != "" {
		return expandHome(c.Log.File)
	}
	return filepath.Join(Dir(), "commitlabels.log")
}

// ResolvedLogLevel returns the configured level or "info".
func (c Config) ResolvedLogLevel() string {
	return pick(c.Log.Level, "info")
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// saveable types for writing config back to TOML without internal fields

type saveableConfig struct {
	Workspace WorkspaceInfo     `toml:"workspace"`
	Projects  []saveableProject `toml:"project,omitempty"`
	Display   DisplayConfig     `toml:"display,omitempty"`
	Theme     ThemeConfig       `toml:"theme,omitempty"`
	Storage   StorageConfig     `toml:"storage,omitempty"`
	Log       LogConfig         `toml:"log,omitempty"`
}

type saveableProject struct {
	Name  string         `toml:"name"`
	Path  string         `toml:"path,omitempty"`
	Repos []saveableRepo `toml:"repo,omitempty"`
}

type saveableRepo struct {
	Path string `toml:"path"`
}

// Save writes the config back to a TOML file, converting absolute paths to relative.
func Save(path string, cfg Config) error {
	configDir := filepath.Dir(path)
	absConfigDir, err := filepath.Abs(configDir)
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	sc := saveableConfig{
		Workspace: cfg.Workspace,
		Display:   cfg.Display,
		Theme:     cfg.Theme,
		Storage:   cfg.Storage,
		Log:       cfg.Log,
	}

	for _, proj := range cfg.Projects {
		sp := saveableProject{Name: proj.Name}

		if proj.Path != "" {
			sp.Path = relOrAbs(absConfigDir, proj.Path)
		}

		base := absConfigDir
		if proj.Path != "" {
			base = proj.Path
		}
		for _, repo := range proj.Repos {
			sp.Repos = append(sp.Repos, saveableRepo{Path: relOrAbs(base, repo.Path)})
		}

		sc.Projects = append(sc.Projects, sp)
	}

	data, err := toml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write then rename so a watcher never reads a half-written file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func relOrAbs(base, p string) string {
	if rel, err := filepath.Rel(base, p); err == nil {
		return rel
	}
	return p
}

// NextColorMode cycles auto → light → dark → auto.
func NextColorMode(mode string) string {
	switch strings.ToLower(mode) {
	case "", labels.ModeAuto:
		return labels.ModeLight
	case labels.ModeLight:
		return labels.ModeDark
	default:
		return labels.ModeAuto
	}
}
