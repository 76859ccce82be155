package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/commitlabels/config"
	"github.com/dylan/commitlabels/fswatch"
	"github.com/dylan/commitlabels/git"
	"github.com/dylan/commitlabels/labels"
	"github.com/dylan/commitlabels/logging"
	"github.com/dylan/commitlabels/nvim"
	"github.com/dylan/commitlabels/system"
	"github.com/dylan/commitlabels/tui/commitlist"
	"github.com/dylan/commitlabels/tui/exchange"
	"github.com/dylan/commitlabels/tui/help"
	"github.com/dylan/commitlabels/tui/icons"
	"github.com/dylan/commitlabels/tui/shared"
	"github.com/dylan/commitlabels/tui/typeeditor"
	"github.com/rs/zerolog"
)

type ActiveView int

const (
	ListView ActiveView = iota
	EditorView
	ExchangeView
)

const (
	sourceEditor = "editor"
	sourceReset  = "reset"
	sourceImport = "import"
	sourceToggle = "toggle"
)

// Options are the collaborators the app is built from.
type Options struct {
	// ConfigPath is watched and rewritten when the color mode changes.
	// Empty disables both.
	ConfigPath string
	// Repos are the repositories tab cycles through.
	Repos []string
	// Store holds the label configuration.
	Store labels.KV
	// Appearance reports the OS dark-mode preference. It is queried at
	// startup and whenever the terminal regains focus.
	Appearance *system.Appearance
	// Scheduler overrides the default trigger delays.
	Scheduler *labels.SchedulerConfig
}

type App struct {
	cfg        config.Config
	cfgPath    string
	kv         labels.KV
	appearance *system.Appearance
	log        zerolog.Logger

	renderer  *labels.Renderer
	scanner   *labels.Scanner
	scheduler *labels.Scheduler
	resolver  *labels.ThemeResolver

	// scan is the scan in progress. A due signal arriving while it runs
	// sets rescan.
	scan    *labels.Scan
	scanGen int
	rescan  bool

	repos       []string
	repoIdx     int
	history     []string
	histPos     int
	trigger     labels.Trigger
	loadingMore bool
	startCmd    tea.Cmd

	repoWatcher   *fswatch.Watcher
	configWatcher *fswatch.Watcher

	activeView ActiveView
	showHelp   bool
	list       commitlist.Model
	editor     typeeditor.Model
	exchange   exchange.Model
	helpView   help.Model

	spinner  spinner.Model
	loading  map[shared.LoaderOp]string
	feedback *shared.Feedback

	width  int
	height int
}

func NewApp(cfg config.Config, opts Options) (App, error) {
	shared.InitStyles(cfg.ResolvedTheme(), cfg.ResolvedGraphColors())
	icons.SetIcons(cfg.Display.Icons)
	icons.SetNerdFonts(cfg.Display.NerdFonts)

	if len(opts.Repos) == 0 {
		return App{}, fmt.Errorf("no repositories configured")
	}

	labelCfg, err := labels.Load(opts.Store)
	if err != nil {
		return App{}, fmt.Errorf("loading label configuration: %w", err)
	}

	systemDark := true
	if opts.Appearance != nil {
		systemDark = opts.Appearance.IsDark()
	}
	resolver := labels.NewThemeResolver(cfg.ThemeAttributes(), systemDark)
	renderer := labels.NewRenderer(labelCfg, nil)
	log := logging.Component("tui")
	// Theme signals are delivered from Update, so recoloring stays on the
	// UI goroutine.
	resolver.OnChange(func(t labels.Theme) {
		n := renderer.Recolor(t)
		log.Debug().Str("theme", string(t)).Int("labels", n).Msg("recolored")
	})

	schedCfg := labels.DefaultSchedulerConfig()
	if opts.Scheduler != nil {
		schedCfg = *opts.Scheduler
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = shared.SpinnerStyle

	a := App{
		cfg:        cfg,
		cfgPath:    opts.ConfigPath,
		kv:         opts.Store,
		appearance: opts.Appearance,
		log:        log,
		renderer:   renderer,
		scanner:    labels.NewScanner(renderer, resolver.Current),
		scheduler:  labels.NewScheduler(schedCfg),
		resolver:   resolver,
		repos:      opts.Repos,
		history:    []string{opts.Repos[0]},
		trigger:    labels.TriggerInitial,
		list:       commitlist.New(cfg.ResolvedShowGraph()),
		editor:     typeeditor.New(),
		exchange:   exchange.New(),
		helpView:   help.New(),
		spinner:    sp,
		loading:    make(map[shared.LoaderOp]string),
	}

	if a.cfgPath != "" {
		w, err := config.Watch(a.cfgPath)
		if err != nil {
			a.log.Warn().Err(err).Str("path", a.cfgPath).Msg("config watch unavailable")
		} else {
			a.configWatcher = w
		}
	}
	a.startCmd = a.openRepo(opts.Repos[0], labels.TriggerInitial)
	return a, nil
}

// Close stops the scheduler and the watchers.
func (a App) Close() {
	a.scheduler.Stop()
	if a.repoWatcher != nil {
		a.repoWatcher.Stop()
	}
	if a.configWatcher != nil {
		a.configWatcher.Stop()
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{waitDueCmd(a.scheduler)}
	if a.configWatcher != nil {
		cmds = append(cmds, waitConfigCmd(a.configWatcher))
	}
	return tea.Batch(append(cmds, a.startCmd)...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, max(msg.Height-1, 3))
		a.editor.SetSize(msg.Width, msg.Height)
		a.exchange.SetSize(msg.Width, msg.Height)
		a.helpView.SetSize(msg.Width, msg.Height)
		return a, nil

	case shared.GraphFetchedMsg:
		return a.handleGraph(msg)

	case shared.ScanDueMsg:
		if a.scan != nil {
			a.rescan = true
			return a, waitDueCmd(a.scheduler)
		}
		cmd := a.beginScan()
		return a, tea.Batch(waitDueCmd(a.scheduler), cmd)

	case shared.ScanStepMsg:
		return a.stepScan(msg)

	case shared.RepoChangedMsg:
		if msg.RepoPath != a.currentRepo() || a.repoWatcher == nil {
			return a, nil
		}
		return a, tea.Batch(
			waitRepoCmd(a.repoWatcher, msg.RepoPath),
			fetchGraphCmd(msg.RepoPath, max(a.list.CommitCount(), a.cfg.ResolvedGraphMaxCommits()), 0, true),
		)

	case shared.ConfigChangedMsg:
		return a.reloadConfig()

	case tea.FocusMsg:
		if a.appearance == nil {
			return a, nil
		}
		return a, appearanceCmd(a.appearance)

	case shared.AppearanceMsg:
		if a.resolver.SetSystemDark(msg.Dark) {
			a.recolor()
		}
		return a, nil

	case shared.ColorModeSavedMsg:
		if msg.Err != nil {
			return a, shared.Notify(shared.FeedbackError, shared.OpSave, "Saving color mode: "+msg.Err.Error())
		}
		return a, shared.Notify(shared.FeedbackInfo, shared.OpSave, "Color mode: "+msg.Mode)

	case shared.LabelConfigSavedMsg:
		return a.handleLabelsSaved(msg)

	case shared.ClipboardCopiedMsg:
		if msg.Err != nil {
			return a, shared.Notify(shared.FeedbackError, shared.OpExport, "Clipboard: "+msg.Err.Error())
		}
		a.exchange.SetNotice("Copied to clipboard")
		return a, shared.Notify(shared.FeedbackSuccess, shared.OpExport, "Configuration copied to clipboard")

	case nvim.EditorFinishedMsg:
		return a.handleEdited(msg)

	case shared.CloseEditorMsg, shared.CloseExchangeMsg:
		a.activeView = ListView
		return a, nil

	case shared.LoaderStartMsg:
		first := len(a.loading) == 0
		a.loading[msg.Op] = msg.Label
		if first {
			return a, a.spinner.Tick
		}
		return a, nil

	case shared.LoaderStopMsg:
		delete(a.loading, msg.Op)
		return a, nil

	case spinner.TickMsg:
		if len(a.loading) == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case shared.FeedbackMsg:
		f := msg.Feedback
		a.feedback = &f
		return a, shared.ExpireAfterTTL(f)

	case shared.ExpireFeedbackMsg:
		if a.feedback != nil && a.feedback.Timestamp.Equal(msg.At) {
			a.feedback = nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Route remaining updates (cursor blink) to the active dialog
	switch a.activeView {
	case EditorView:
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd
	case ExchangeView:
		var cmd tea.Cmd
		a.exchange, cmd = a.exchange.Update(msg)
		return a, cmd
	}
	return a, nil
}

// --- Graph and scanning ---

func (a App) handleGraph(msg shared.GraphFetchedMsg) (tea.Model, tea.Cmd) {
	stop := func() tea.Msg { return shared.LoaderStopMsg{Op: shared.OpLoad} }
	if msg.RepoPath != a.currentRepo() {
		return a, stop
	}
	if msg.Skip > 0 {
		a.loadingMore = false
	}
	if msg.Err != nil {
		a.log.Error().Err(msg.Err).Str("repo", msg.RepoPath).Msg("graph fetch failed")
		return a, tea.Batch(stop, shared.Notify(shared.FeedbackError, shared.OpLoad, "git log: "+msg.Err.Error()))
	}

	switch {
	case msg.Skip > 0:
		exhausted := commitCount(msg.Lines) < a.cfg.ResolvedPageSize()
		if a.list.AppendGraph(msg.Lines, exhausted) > 0 {
			a.scheduler.Notify(labels.TriggerMutation)
		}
	case msg.Refresh:
		exhausted := commitCount(msg.Lines) < max(a.list.CommitCount(), a.cfg.ResolvedGraphMaxCommits())
		a.list.MergeGraph(msg.Lines, msg.Branch, exhausted)
		a.scheduler.Notify(labels.TriggerMutation)
	default:
		exhausted := commitCount(msg.Lines) < a.cfg.ResolvedGraphMaxCommits()
		a.abortScan()
		a.list.SetGraph(msg.Lines, msg.RepoPath, msg.Branch, exhausted)
		a.scheduler.Notify(a.trigger)
	}
	return a, stop
}

func (a *App) beginScan() tea.Cmd {
	a.scanner.SetStrategies(a.list.Strategy())
	a.scan = a.scanner.Begin()
	a.scanGen++
	a.rescan = false
	return scanStepCmd(a.scanGen)
}

func (a App) stepScan(msg shared.ScanStepMsg) (tea.Model, tea.Cmd) {
	if a.scan == nil || msg.Gen != a.scanGen {
		return a, nil
	}
	more := a.scan.Step()
	a.list.Rerender()
	if more {
		return a, scanStepCmd(a.scanGen)
	}

	stats := a.scan.Stats()
	a.scan = nil
	a.log.Debug().
		Str("strategy", stats.Strategy).
		Int("labeled", stats.Labeled).
		Int("failed", stats.Failed).
		Int("batches", stats.Batches).
		Msg("scan finished")

	var cmd tea.Cmd
	if stats.Failed > 0 {
		cmd = shared.Notify(shared.FeedbackWarning, shared.OpScan, fmt.Sprintf("%d commits could not be labeled", stats.Failed))
	}
	if a.rescan {
		next := a.beginScan()
		return a, tea.Batch(cmd, next)
	}
	return a, cmd
}

// abortScan drops the scan in progress; its step messages become stale.
func (a *App) abortScan() {
	if a.scan != nil {
		a.scan = nil
		a.scanGen++
		a.rescan = false
	}
}

// recolor redraws rows after a theme change recolored their labels.
func (a *App) recolor() {
	a.list.Rerender()
}

// --- Repositories ---

func (a App) currentRepo() string {
	return a.history[a.histPos]
}

// openRepo moves the list and the repo watcher to path. The scan that
// follows the fetch uses trigger.
func (a *App) openRepo(path string, trigger labels.Trigger) tea.Cmd {
	a.trigger = trigger
	a.loadingMore = false
	if a.repoWatcher != nil {
		a.repoWatcher.Stop()
		a.repoWatcher = nil
	}

	cmds := []tea.Cmd{
		func() tea.Msg { return shared.LoaderStartMsg{Op: shared.OpLoad, Label: "Loading " + repoLabel(path)} },
		fetchGraphCmd(path, a.cfg.ResolvedGraphMaxCommits(), 0, false),
	}
	w, err := git.WatchRepo(path)
	if err != nil {
		a.log.Warn().Err(err).Str("repo", path).Msg("repo watch unavailable")
	} else {
		a.repoWatcher = w
		cmds = append(cmds, waitRepoCmd(w, path))
	}
	return tea.Batch(cmds...)
}

// visit pushes path onto the history, dropping any forward entries.
func (a *App) visit(path string) tea.Cmd {
	a.history = append(a.history[:a.histPos+1], path)
	a.histPos = len(a.history) - 1
	return a.openRepo(path, labels.TriggerNavigation)
}

func (a *App) switchRepo(step int) tea.Cmd {
	if len(a.repos) < 2 {
		return nil
	}
	a.repoIdx = (a.repoIdx + step + len(a.repos)) % len(a.repos)
	return a.visit(a.repos[a.repoIdx])
}

func (a *App) walkHistory(step int) tea.Cmd {
	pos := a.histPos + step
	if pos < 0 || pos >= len(a.history) {
		return nil
	}
	a.histPos = pos
	path := a.history[pos]
	for i, r := range a.repos {
		if r == path {
			a.repoIdx = i
		}
	}
	return a.openRepo(path, labels.TriggerHistory)
}

func (a *App) loadMore() tea.Cmd {
	if a.loadingMore || !a.list.CanLoadMore() {
		return nil
	}
	a.loadingMore = true
	return fetchGraphCmd(a.list.RepoPath(), a.cfg.ResolvedPageSize(), a.list.CommitCount(), false)
}

// --- Configuration ---

func (a App) reloadConfig() (tea.Model, tea.Cmd) {
	wait := waitConfigCmd(a.configWatcher)
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		a.log.Warn().Err(err).Msg("config reload failed")
		return a, tea.Batch(wait, shared.Notify(shared.FeedbackWarning, shared.OpLoad, "Config: "+err.Error()))
	}
	a.cfg = cfg
	shared.InitStyles(cfg.ResolvedTheme(), cfg.ResolvedGraphColors())
	icons.SetIcons(cfg.Display.Icons)
	icons.SetNerdFonts(cfg.Display.NerdFonts)
	if a.resolver.SetAttributes(cfg.ThemeAttributes()) {
		a.recolor()
	} else {
		a.list.Rerender()
	}
	return a, wait
}

func (a *App) cycleColorMode() tea.Cmd {
	mode := config.NextColorMode(a.cfg.Theme.ColorMode)
	a.cfg.Theme.ColorMode = mode
	if a.resolver.SetAttributes(a.cfg.ThemeAttributes()) {
		a.recolor()
	}
	if a.cfgPath == "" {
		return shared.Notify(shared.FeedbackInfo, shared.OpSave, "Color mode: "+mode)
	}
	return saveColorModeCmd(a.cfgPath, a.cfg, mode)
}

func (a App) handleLabelsSaved(msg shared.LabelConfigSavedMsg) (tea.Model, tea.Cmd) {
	stop := func() tea.Msg { return shared.LoaderStopMsg{Op: shared.OpSave} }
	if msg.Err != nil {
		a.log.Error().Err(msg.Err).Str("source", msg.Source).Msg("saving labels failed")
		return a, tea.Batch(stop, shared.Notify(shared.FeedbackError, shared.OpSave, "Saving labels: "+msg.Err.Error()))
	}
	if msg.Source == sourceToggle {
		return a, stop
	}

	a.renderer.SetConfiguration(msg.Config)
	a.activeView = ListView

	text := "Labels saved"
	switch msg.Source {
	case sourceReset:
		text = "Labels reset to defaults"
	case sourceImport:
		text = "Configuration imported"
	}
	fetch := a.openRepo(a.currentRepo(), labels.TriggerNavigation)
	return a, tea.Batch(
		stop,
		shared.Notify(shared.FeedbackSuccess, shared.OpSave, text),
		fetch,
	)
}

// handleEdited imports the JSON saved from the external editor.
func (a App) handleEdited(msg nvim.EditorFinishedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.exchange.SetError(msg.Err)
		return a, nil
	}
	if strings.TrimSpace(msg.Text) == strings.TrimSpace(a.exchange.Exported()) {
		a.exchange.SetNotice("No changes")
		return a, nil
	}
	cfg, err := labels.Import([]byte(msg.Text))
	if err != nil {
		a.exchange.SetError(err)
		return a, nil
	}
	return a, saveLabelsCmd(a.kv, cfg, sourceImport)
}

func (a *App) toggleLabels() tea.Cmd {
	a.renderer.SetVisible(!a.renderer.Configuration().LabelsVisible)
	a.list.Rerender()
	return saveLabelsCmd(a.kv, a.renderer.Configuration().Clone(), sourceToggle)
}

// --- Keys ---

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.activeView {
	case EditorView:
		return a.handleEditorKey(msg)
	case ExchangeView:
		return a.handleExchangeKey(msg)
	}

	if key.Matches(msg, shared.Keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, shared.Keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, shared.Keys.Down):
		if a.list.AtEnd() {
			cmd := a.loadMore()
			return a, cmd
		}
		a.list.MoveDown()
		return a, nil

	case key.Matches(msg, shared.Keys.Up):
		a.list.MoveUp()
		return a, nil

	case key.Matches(msg, shared.Keys.Top):
		a.list.GotoTop()
		return a, nil

	case key.Matches(msg, shared.Keys.Bottom):
		a.list.GotoBottom()
		return a, nil

	case key.Matches(msg, shared.Keys.LoadMore):
		cmd := a.loadMore()
		return a, cmd

	case key.Matches(msg, shared.Keys.NextRepo):
		cmd := a.switchRepo(1)
		return a, cmd

	case key.Matches(msg, shared.Keys.PrevRepo):
		cmd := a.switchRepo(-1)
		return a, cmd

	case key.Matches(msg, shared.Keys.Back):
		cmd := a.walkHistory(-1)
		return a, cmd

	case key.Matches(msg, shared.Keys.Forward):
		cmd := a.walkHistory(1)
		return a, cmd

	case key.Matches(msg, shared.Keys.Refresh):
		return a, fetchGraphCmd(a.currentRepo(), max(a.list.CommitCount(), a.cfg.ResolvedGraphMaxCommits()), 0, true)

	case key.Matches(msg, shared.Keys.ToggleGraph):
		a.list.SetShowGraph(!a.list.ShowGraph())
		return a, nil

	case key.Matches(msg, shared.Keys.CycleTheme):
		cmd := a.cycleColorMode()
		return a, cmd

	case key.Matches(msg, shared.Keys.ToggleLabels):
		cmd := a.toggleLabels()
		return a, cmd

	case key.Matches(msg, shared.Keys.EditTypes):
		a.editor.Open(a.renderer.Configuration())
		a.editor.SetSize(a.width, a.height)
		a.activeView = EditorView
		return a, nil

	case key.Matches(msg, shared.Keys.Exchange):
		if err := a.exchange.Open(a.renderer.Configuration()); err != nil {
			return a, shared.Notify(shared.FeedbackError, shared.OpExport, "Export: "+err.Error())
		}
		a.exchange.SetSize(a.width, a.height)
		a.activeView = ExchangeView
		return a, nil
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a App) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result := a.editor.HandleKey(msg)
	switch result.Action {
	case typeeditor.ActionClose:
		return a, func() tea.Msg { return shared.CloseEditorMsg{} }
	case typeeditor.ActionSave:
		return a, tea.Batch(
			func() tea.Msg { return shared.LoaderStartMsg{Op: shared.OpSave, Label: "Saving"} },
			saveLabelsCmd(a.kv, result.Config.Clone(), sourceEditor),
		)
	case typeeditor.ActionReset:
		return a, resetLabelsCmd(a.kv)
	}
	return a, result.Cmd
}

func (a App) handleExchangeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result := a.exchange.HandleKey(msg)
	switch result.Action {
	case exchange.ActionClose:
		return a, func() tea.Msg { return shared.CloseExchangeMsg{} }
	case exchange.ActionCopy:
		return a, exchange.CopyCmd(result.Text)
	case exchange.ActionEdit:
		return a, nvim.EditCmd(result.Text, "commitlabels-*.json")
	case exchange.ActionImport:
		return a, saveLabelsCmd(a.kv, result.Config, sourceImport)
	}
	return a, result.Cmd
}

// --- Rendering ---

func (a App) View() string {
	if a.showHelp {
		return a.helpView.View()
	}
	switch a.activeView {
	case EditorView:
		return a.editor.ViewOverlay(a.width, a.height)
	case ExchangeView:
		return a.exchange.ViewOverlay(a.width, a.height)
	}
	return a.list.View() + a.renderStatusBar()
}

func (a App) renderStatusBar() string {
	cfg := a.renderer.Configuration()
	parts := []string{a.cfg.WorkspaceName()}

	mode := a.resolver.Attributes().ColorMode
	parts = append(parts, icons.ForMode(mode)+" "+string(a.resolver.Current()))

	if cfg.ShowFloatingButton {
		if cfg.LabelsVisible {
			parts = append(parts, shared.ToggleOnStyle.Render("🏷️ Hide labels"))
		} else {
			parts = append(parts, shared.ToggleOffStyle.Render("🏷️ Show labels"))
		}
	}

	if cfg.EnableTooltips {
		if row, ok := a.list.Selected(); ok && row.Label() != nil && row.Label().Description != "" {
			parts = append(parts, row.Label().Description)
		}
	}

	if len(a.loading) > 0 {
		for _, op := range []shared.LoaderOp{shared.OpLoad, shared.OpSave, shared.OpScan, shared.OpExport} {
			if label, ok := a.loading[op]; ok {
				parts = append(parts, a.spinner.View()+" "+label)
				break
			}
		}
	}

	if a.feedback != nil {
		parts = append(parts, a.feedback.Style().Render(a.feedback.Message))
	}

	status := strings.Join(parts, " │ ") + " │ ? for help"
	return "\n" + shared.StatusBarStyle.Width(a.width).Render(status)
}

// --- Commands ---

func fetchGraphCmd(repoPath string, maxCount, skip int, refresh bool) tea.Cmd {
	return func() tea.Msg {
		lines, err := git.GetGraph(repoPath, maxCount, skip)
		if err != nil {
			return shared.GraphFetchedMsg{RepoPath: repoPath, Skip: skip, Refresh: refresh, Err: err}
		}
		branch, _ := git.CurrentBranch(repoPath)
		return shared.GraphFetchedMsg{Lines: lines, RepoPath: repoPath, Branch: branch, Skip: skip, Refresh: refresh}
	}
}

func scanStepCmd(gen int) tea.Cmd {
	return func() tea.Msg { return shared.ScanStepMsg{Gen: gen} }
}

func waitDueCmd(s *labels.Scheduler) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.Due():
			return shared.ScanDueMsg{}
		case <-s.Done():
			return nil
		}
	}
}

func waitRepoCmd(w *fswatch.Watcher, repoPath string) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return shared.RepoChangedMsg{RepoPath: repoPath}
	}
}

func waitConfigCmd(w *fswatch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return shared.ConfigChangedMsg{}
	}
}

func appearanceCmd(ap *system.Appearance) tea.Cmd {
	return func() tea.Msg {
		return shared.AppearanceMsg{Dark: ap.IsDark()}
	}
}

func saveColorModeCmd(path string, cfg config.Config, mode string) tea.Cmd {
	return func() tea.Msg {
		return shared.ColorModeSavedMsg{Mode: mode, Err: config.Save(path, cfg)}
	}
}

func saveLabelsCmd(kv labels.KV, cfg *labels.Configuration, source string) tea.Cmd {
	return func() tea.Msg {
		err := labels.Save(kv, cfg)
		return shared.LabelConfigSavedMsg{Config: cfg, Source: source, Err: err}
	}
}

func resetLabelsCmd(kv labels.KV) tea.Cmd {
	return func() tea.Msg {
		cfg, err := labels.Reset(kv)
		return shared.LabelConfigSavedMsg{Config: cfg, Source: sourceReset, Err: err}
	}
}

func commitCount(lines []git.GraphLine) int {
	n := 0
	for _, l := range lines {
		if l.IsCommit {
			n++
		}
	}
	return n
}

func repoLabel(path string) string {
	return filepath.Base(path)
}
