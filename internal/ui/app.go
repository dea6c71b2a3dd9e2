package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flip/internal/clock"
	"github.com/five82/flip/internal/config"
	"github.com/five82/flip/internal/flipper"
	"github.com/five82/flip/internal/lifecycle"
	"github.com/five82/flip/internal/logging"
	"github.com/five82/flip/internal/prefs"
	"github.com/five82/flip/internal/state"
)

const (
	defaultRefreshTick = 200 * time.Millisecond
	delayStep          = 50 * time.Millisecond
	maxDelay           = 2 * time.Second
	taskBuffer         = 64
)

// Refresher asks the feed poller for an immediate fetch.
type Refresher interface {
	Refresh()
}

// Options configure the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Poller    Refresher
	Config    *config.Config
	Prefs     prefs.Prefs
	PrefsPath string

	// RefreshTick is how often the store is read. Zero uses 200ms.
	RefreshTick time.Duration

	// Clock drives flip delays and fades. Nil uses a wall-clock loop whose
	// wake-ups are delivered through Update.
	Clock clock.Clock

	Logger *slog.Logger
}

// Model is the Bubble Tea model. It is used by pointer because the flip
// callbacks close over it.
type Model struct {
	ctx       context.Context
	cancel    context.CancelFunc
	store     *state.Store
	poller    Refresher
	prefs     prefs.Prefs
	prefsPath string
	log       *slog.Logger

	refreshTick  time.Duration
	fadeDuration time.Duration

	loop     *clock.Loop // nil when a clock was injected
	owner    *lifecycle.Owner
	fade     *flipper.CrossFade
	sched    *flipper.Delayed
	progress *flipper.Progress

	content *region
	empty   *region
	loading *region

	theme    Theme
	keys     keyMap
	help     help.Model
	list     viewport.Model
	spinner  spinner.Model
	showHelp bool

	width  int
	height int

	snapshot    state.Snapshot
	fetches     int
	lastUpdated time.Time
	quitting    bool
}

// New creates the model. The content region starts visible.
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	refreshTick := opts.RefreshTick
	if refreshTick <= 0 {
		refreshTick = defaultRefreshTick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	clk := opts.Clock
	var loop *clock.Loop
	if clk == nil {
		loop = clock.NewLoop(taskBuffer)
		clk = loop
	}

	delay := flipper.DefaultDelay
	fadeDuration := flipper.DefaultFadeDuration
	if opts.Config != nil {
		delay = opts.Config.FlipDelay
		fadeDuration = opts.Config.FadeDuration
	}

	m := &Model{
		ctx:          ctx,
		cancel:       cancel,
		store:        opts.Store,
		poller:       opts.Poller,
		prefs:        opts.Prefs,
		prefsPath:    prefsPath,
		log:          logger,
		refreshTick:  refreshTick,
		fadeDuration: fadeDuration,
		loop:         loop,
		owner:        lifecycle.New(),
		fade:         flipper.NewCrossFade(clk),
		content:      newRegion("content", true),
		empty:        newRegion("empty", false),
		loading:      newRegion("loading", false),
		theme:        GetTheme(opts.Prefs.Theme),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		list:         viewport.New(0, 0),
	}
	m.applyAnimations()

	m.sched = flipper.NewDelayed(m.owner, clk,
		flipper.WithDelay(delay),
		flipper.WithAnimator(m.fade),
		flipper.WithLogger(logger),
	)
	m.progress = flipper.NewProgress(m.content, m.empty, m.loading, m.sched)
	m.progress.OnFlip(func(t flipper.Target) {
		m.log.Debug("flip settled", "target", t.String())
	})
	m.progress.OnLoading(func(visible bool) {
		m.log.Debug("loading indicator", "visible", visible)
	})

	m.spinner = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(m.theme.Styles().Spinner),
	)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.refreshTick),
		m.spinner.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.loop != nil {
		cmds = append(cmds, waitTaskCmd(m.ctx, m.loop.Tasks()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.Width = msg.Width
		m.list.Height = m.bodyHeight()
		m.renderList()
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		cmds := []tea.Cmd{tickCmd(m.refreshTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case taskMsg:
		msg()
		if m.loop == nil || m.quitting {
			return m, nil
		}
		return m, waitTaskCmd(m.ctx, m.loop.Tasks())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// applySnapshot turns a store snapshot into flip reports. The loading flag
// is reported on every tick; the item count only when a fetch completed.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if m.quitting {
		return
	}

	if m.prefs.AnimationsEnabled() {
		m.progress.ShowDelayedLoading(snap.Loading)
	} else {
		m.progress.ShowDelayedLoadingNoAnimation(snap.Loading)
	}

	if snap.Fetches == m.fetches {
		return
	}
	m.fetches = snap.Fetches
	m.lastUpdated = snap.LastUpdated
	m.progress.SetItemCount(len(snap.Items))
	m.renderList()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.shutdown()
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Refresh):
		if m.poller != nil {
			m.poller.Refresh()
		}

	case key.Matches(msg, m.keys.ToggleAnimations):
		m.prefs = m.prefs.WithAnimations(!m.prefs.AnimationsEnabled())
		m.applyAnimations()
		m.savePrefs()

	case key.Matches(msg, m.keys.DelayUp):
		m.setDelay(m.sched.Delay() + delayStep)

	case key.Matches(msg, m.keys.DelayDown):
		m.setDelay(m.sched.Delay() - delayStep)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = m.theme.Styles().Spinner
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.renderList()

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		if m.content.Visible() {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) setDelay(d time.Duration) {
	switch {
	case d < 0:
		d = 0
	case d > maxDelay:
		d = maxDelay
	}
	m.sched.SetDelay(d)
	m.log.Debug("flip delay changed", "delay_ms", d.Milliseconds())
}

func (m *Model) applyAnimations() {
	if m.prefs.AnimationsEnabled() {
		m.fade.SetDuration(m.fadeDuration)
		return
	}
	m.fade.SetDuration(0)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// shutdown destroys the screen owner, which cancels any pending flip and
// settles a running fade, then stops wall-clock wake-ups.
func (m *Model) shutdown() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.owner.Destroy()
	m.cancel()
	if m.loop != nil {
		m.loop.Close()
	}
	m.log.Info("ui closed")
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// taskMsg carries a clock wake-up that must run on the Update goroutine.
type taskMsg func()

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func waitTaskCmd(ctx context.Context, tasks <-chan func()) tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-tasks:
			return taskMsg(fn)
		case <-ctx.Done():
			return nil
		}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	defer m.shutdown()

	runOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		runOpts = append(runOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, runOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
