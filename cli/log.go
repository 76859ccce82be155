package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dylan/commitlabels/config"
	"github.com/dylan/commitlabels/git"
	"github.com/dylan/commitlabels/labels"
	"github.com/dylan/commitlabels/logging"
	"github.com/dylan/commitlabels/system"
	"github.com/dylan/commitlabels/tui/shared"
	"github.com/spf13/cobra"
)

var (
	logCount int
	logWatch bool
)

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().IntVarP(&logCount, "count", "n", 0, "number of commits (default: display.graph_max_commits)")
	logCmd.Flags().BoolVarP(&logWatch, "watch", "w", false, "re-print when the repository changes")
}

var logCmd = &cobra.Command{
	Use:   "log [repo]",
	Short: "Print labeled commits",
	Long:  "Print the latest commits of a repository with their labels.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(true)
		if err != nil {
			return err
		}
		defer e.close()

		repos, err := resolveRepos(e.cfg, args)
		if err != nil {
			return err
		}
		cfg, err := labels.Load(e.kv)
		if err != nil {
			return err
		}

		count := logCount
		if count <= 0 {
			count = e.cfg.ResolvedGraphMaxCommits()
		}
		v := newLogView(repos[0], count, cfg, themeFor(e.cfg))

		if !logWatch {
			if err := v.refresh(cmd.Context()); err != nil {
				return err
			}
			v.print(cmd.OutOrStdout())
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return v.watch(ctx, cmd.OutOrStdout())
	},
}

func themeFor(cfg config.Config) labels.Theme {
	return cfg.ThemeAttributes().Resolve(system.New().IsDark())
}

// logEntry is one commit line. Its key is the commit hash, so a commit that
// survives a refresh keeps its label.
type logEntry struct {
	commit git.CommitInfo
	title  string
	label  *labels.Label
}

func (e *logEntry) Key() string       { return e.commit.Hash }
func (e *logEntry) Title() string     { return e.title }
func (e *logEntry) SetTitle(s string) { e.title = s }
func (e *logEntry) HasLabel() bool    { return e.label != nil }
func (e *logEntry) InsertLabel(l *labels.Label) error {
	e.label = l
	return nil
}

func (e *logEntry) UpdateLabel(l *labels.Label) error {
	if e.label == nil {
		return errors.New("commit has no label")
	}
	e.label = l
	return nil
}

type logView struct {
	repo    string
	count   int
	scanner *labels.Scanner
	byHash  map[string]*logEntry
	order   []*logEntry
}

func newLogView(repo string, count int, cfg *labels.Configuration, theme labels.Theme) *logView {
	v := &logView{
		repo:   repo,
		count:  count,
		byHash: make(map[string]*logEntry),
	}
	r := labels.NewRenderer(cfg, nil)
	v.scanner = labels.NewScanner(r, func() labels.Theme { return theme }, labels.Strategy{
		Name: "git-log",
		Find: func() ([]labels.Entry, error) {
			out := make([]labels.Entry, len(v.order))
			for i, e := range v.order {
				out[i] = e
			}
			return out, nil
		},
	})
	return v
}

// refresh reloads the commit list and labels new commits.
func (v *logView) refresh(ctx context.Context) error {
	commits, err := git.GetCommits(v.repo, v.count)
	if err != nil {
		return fmt.Errorf("reading log of %s: %w", v.repo, err)
	}

	byHash := make(map[string]*logEntry, len(commits))
	order := make([]*logEntry, 0, len(commits))
	for _, c := range commits {
		e, ok := v.byHash[c.Hash]
		if !ok {
			e = &logEntry{commit: c, title: c.Subject}
		}
		byHash[c.Hash] = e
		order = append(order, e)
	}
	v.byHash, v.order = byHash, order

	_, err = v.scanner.Run(ctx, nil)
	return err
}

func (v *logView) print(w io.Writer) {
	for _, e := range v.order {
		line := shared.GraphHashStyle.Render(e.commit.Hash) + " "
		if l := e.label; l != nil && l.Visible {
			line += shared.BadgeStyle(l.Colors).Render(l.String())
			if s := l.ScopeSuffix(); s != "" {
				line += " " + shared.ScopeStyle.Render(s)
			}
			line += " "
		}
		line += shared.CommitMsgStyle.Render(e.title)
		line += " " + shared.DimStyle.Render(e.commit.Author+", "+e.commit.RelativeDate)
		fmt.Fprintln(w, line)
	}
}

// watch prints the log, then again after every coalesced repo change until
// ctx is canceled.
func (v *logView) watch(ctx context.Context, w io.Writer) error {
	log := logging.Component("log")

	watcher, err := git.WatchRepo(v.repo)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	sched := labels.NewScheduler(labels.DefaultSchedulerConfig())
	defer sched.Stop()
	go func() {
		for range watcher.Events() {
			sched.Notify(labels.TriggerMutation)
		}
	}()
	sched.Notify(labels.TriggerInitial)

	err = sched.Run(ctx, func(ctx context.Context) error {
		if err := v.refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("refresh failed")
			return nil
		}
		fmt.Fprintln(w, shared.DimStyle.Render("── "+time.Now().Format(time.Kitchen)+" ──"))
		v.print(w)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
