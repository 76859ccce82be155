package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dylan/commitlabels/labels"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadResolvesRepoPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "proj", "api"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "web"), 0o755))

	path := writeConfig(t, dir, `
[workspace]
name = "work"

[[project]]
name = "backend"
path = "proj"
[[project.repo]]
path = "api"

[[project]]
name = "frontend"
[[project.repo]]
path = "web"

[display]
graph_max_commits = 30

[theme]
color_mode = "dark"
night_theme = "dark_dimmed"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "work", cfg.WorkspaceName())

	repos := cfg.AllRepos()
	require.Len(t, repos, 2)
	require.Equal(t, filepath.Join(dir, "proj", "api"), repos[0].Path)
	require.Equal(t, filepath.Join(dir, "web"), repos[1].Path)

	require.Equal(t, 30, cfg.ResolvedGraphMaxCommits())
	require.Equal(t, 30, cfg.ResolvedPageSize())
	require.Equal(t, labels.Attributes{ColorMode: "dark", DarkTheme: "dark_dimmed"}, cfg.ThemeAttributes())
}

func TestLoadRejectsMissingRepo(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[[project]]
name = "x"
[[project.repo]]
path = "nope"
`)
	_, err := Load(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaults(t *testing.T) {
	var cfg Config
	require.Equal(t, "commitlabels", cfg.WorkspaceName())
	require.Equal(t, 50, cfg.ResolvedGraphMaxCommits())
	require.True(t, cfg.ResolvedShowGraph())
	require.Equal(t, "info", cfg.ResolvedLogLevel())
	require.Equal(t, "labels.db", filepath.Base(cfg.ResolvedStoragePath()))
	require.Equal(t, labels.ModeAuto, cfg.ThemeAttributes().ColorMode)
	require.Equal(t, DefaultTheme().Accent, cfg.ResolvedTheme().Accent)
	require.Equal(t, DefaultGraphColors(), cfg.ResolvedTheme().GraphColors)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "repo"), 0o755))

	cfg := Config{
		Workspace: WorkspaceInfo{Name: "w"},
		Projects: []ProjectConfig{{
			Name:  "p",
			Repos: []RepoConfig{{Path: filepath.Join(dir, "repo")}},
		}},
		Theme: ThemeConfig{ColorMode: "light", DayTheme: "light_high_contrast"},
		Log:   LogConfig{Level: "debug"},
	}
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, Save(path, cfg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `path = "repo"`)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Projects, loaded.Projects)
	require.Equal(t, "light_high_contrast", loaded.Theme.DayTheme)
	require.Equal(t, "debug", loaded.ResolvedLogLevel())
}

func TestNextColorMode(t *testing.T) {
	require.Equal(t, "light", NextColorMode(""))
	require.Equal(t, "dark", NextColorMode("light"))
	require.Equal(t, "auto", NextColorMode("dark"))
	require.Equal(t, "light", NextColorMode("auto"))
}

func TestWatchSeesSave(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	select {
	case <-w.Events():
		t.Fatal("unrelated file signaled")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, Save(path, Config{Theme: ThemeConfig{ColorMode: "light"}}))
	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("save did not signal")
	}
}
