// Package cli wires the commitlabels commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/commitlabels/config"
	"github.com/dylan/commitlabels/git"
	"github.com/dylan/commitlabels/logging"
	"github.com/dylan/commitlabels/store"
	"github.com/dylan/commitlabels/system"
	"github.com/dylan/commitlabels/tui"
	"github.com/spf13/cobra"
)

var (
	configPath string
	storePath  string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "commitlabels [repo...]",
	Short: "Conventional-commit labels for git history",
	Long: `commitlabels shows the commit graph of your repositories with a themed
label in front of every conventional-commit title.

Without a repo argument it opens the repos listed in the config file, or the
current directory when that is a git repository.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: ~/.config/commitlabels/config.toml)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "path to the label database (default: from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// env is what every command needs: the app config and the label store.
type env struct {
	cfg     config.Config
	cfgPath string // empty when running on defaults
	kv      *store.SQLite
}

func (e *env) close() {
	if e.kv != nil {
		e.kv.Close()
	}
	logging.Close()
}

// setup loads the config, starts logging and opens the store. Subcommands
// log to the console; the TUI logs to the configured file.
func setup(console bool) (*env, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := logLevel
	if level == "" {
		level = cfg.ResolvedLogLevel()
	}
	if err := logging.Init(logging.Options{File: cfg.ResolvedLogFile(), Level: level, Console: console}); err != nil {
		return nil, err
	}

	dbPath := storePath
	if dbPath == "" {
		dbPath = cfg.ResolvedStoragePath()
	}
	kv, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, cfgPath: path, kv: kv}, nil
}

func loadConfig() (config.Config, string, error) {
	path := configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		// A missing default config means built-in defaults
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config.Config{}, "", nil
		}
		return cfg, "", fmt.Errorf("loading config: %w", err)
	}
	return cfg, path, nil
}

// resolveRepos picks the repositories to show: args, then the config, then
// the working directory.
func resolveRepos(cfg config.Config, args []string) ([]string, error) {
	var repos []string
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", arg, err)
		}
		repos = append(repos, abs)
	}
	if len(repos) == 0 {
		for _, r := range cfg.AllRepos() {
			repos = append(repos, r.Path)
		}
	}
	if len(repos) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if _, err := git.GitDir(wd); err != nil {
			return nil, errors.New("no repositories: pass a path or add [[project.repo]] entries to the config")
		}
		repos = append(repos, wd)
	}
	return repos, nil
}

func runTUI(args []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.close()

	repos, err := resolveRepos(e.cfg, args)
	if err != nil {
		return err
	}

	// The appearance fallback reads from the terminal, so it must run
	// before bubbletea takes over input.
	app, err := tui.NewApp(e.cfg, tui.Options{
		ConfigPath: e.cfgPath,
		Repos:      repos,
		Store:      e.kv,
		Appearance: system.New(),
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus())
	final, err := p.Run()
	if a, ok := final.(tui.App); ok {
		a.Close()
	} else {
		app.Close()
	}
	return err
}
