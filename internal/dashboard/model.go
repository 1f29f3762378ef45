package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lightworkai/kycmon/internal/health"
	"github.com/lightworkai/kycmon/internal/logger"
)

// Layout constants
const (
	// SidebarBreakpoint is the narrowest terminal that still shows the sidebar.
	SidebarBreakpoint = 100
	// SidebarWidth is the sidebar's width in columns.
	SidebarWidth = 24
	// StaticWidth is the width used when rendering without a terminal.
	StaticWidth = 120
	// footerHeight is the number of rows reserved below the body.
	footerHeight = 1
)

// DefaultFetchTimeout bounds a single provider call.
const DefaultFetchTimeout = 5 * time.Second

// Model is the Bubble Tea model for the monitoring dashboard.
type Model struct {
	provider health.Provider
	log      logger.Logger
	theme    Theme
	keys     keyMap
	help     help.Model
	teams    []health.TeamOption
	target   float64
	timeout  time.Duration

	selection Selection
	snapshot  *health.Snapshot
	summary   health.Summary
	err       error // last fetch error; the previous snapshot stays visible
	loading   bool

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	showHelp bool
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithSelection sets the initial team, date range and tab.
func WithSelection(s Selection) Option {
	return func(m *Model) { m.selection = s }
}

// WithTeams sets the teams the team selector cycles through.
func WithTeams(teams []health.TeamOption) Option {
	return func(m *Model) {
		if len(teams) > 0 {
			m.teams = teams
		}
	}
}

// WithTheme sets the colors and styles.
func WithTheme(t Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithTargetPassRate sets the pass rate drawn as the chart's target line.
func WithTargetPassRate(target float64) Option {
	return func(m *Model) { m.target = target }
}

// WithFetchTimeout bounds each provider call.
func WithFetchTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithLogger sets the logger for fetch diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// snapshotMsg carries the result of a provider fetch, tagged with the
// selection it was requested for.
type snapshotMsg struct {
	team      health.Team
	dateRange health.DateRange
	snapshot  *health.Snapshot
	err       error
}

// NewModel creates a dashboard backed by provider.
func NewModel(provider health.Provider, opts ...Option) Model {
	m := Model{
		provider:  provider,
		log:       logger.Noop(),
		theme:     DefaultTheme(),
		keys:      keys,
		help:      help.New(),
		teams:     health.DefaultTeams(),
		target:    health.DefaultTargetPassRate,
		timeout:   DefaultFetchTimeout,
		selection: DefaultSelection(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Styles.ShortKey = m.theme.Footer.UnsetPadding().Bold(true)
	m.help.Styles.ShortDesc = m.theme.Footer.UnsetPadding()
	m.help.Styles.ShortSeparator = m.theme.Muted
	return m
}

// Selection returns the current team, date range and tab.
func (m Model) Selection() Selection {
	return m.selection
}

// Snapshot returns the snapshot on screen, or nil before the first fetch
// completes.
func (m Model) Snapshot() *health.Snapshot {
	return m.snapshot
}

// Err returns the last fetch error, cleared by the next successful fetch.
func (m Model) Err() error {
	return m.err
}

// Prefetch fetches the snapshot for the current selection synchronously so
// the first frame or a static render has data.
func (m Model) Prefetch(ctx context.Context) (Model, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	team, dateRange := m.selection.Team, m.selection.DateRange
	snap, err := m.provider.FetchHealthSnapshot(ctx, team, dateRange)
	m.applySnapshot(snapshotMsg{team: team, dateRange: dateRange, snapshot: snap, err: err})
	return m, err
}

// Init triggers the initial snapshot fetch.
func (m Model) Init() tea.Cmd {
	return m.fetchCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case snapshotMsg:
		m.applySnapshot(msg)
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading dashboard..."
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		return m.selectTab(m.selection.NextTab().Tab), nil
	case key.Matches(msg, m.keys.PrevTab):
		return m.selectTab(m.selection.PrevTab().Tab), nil
	case key.Matches(msg, m.keys.TabUsage):
		return m.selectTab(TabUsage), nil
	case key.Matches(msg, m.keys.TabIssues):
		return m.selectTab(TabIssues), nil
	case key.Matches(msg, m.keys.TabHealth):
		return m.selectTab(TabHealth), nil

	case key.Matches(msg, m.keys.NextTeam):
		return m.reselect(m.selection.NextTeam(m.teams))
	case key.Matches(msg, m.keys.PrevTeam):
		return m.reselect(m.selection.PrevTeam(m.teams))
	case key.Matches(msg, m.keys.NextRange):
		return m.reselect(m.selection.NextDateRange())
	case key.Matches(msg, m.keys.PrevRange):
		return m.reselect(m.selection.PrevDateRange())

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.refreshContent()
		return m, m.fetchCmd()

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectTab changes the active tab. Tabs don't change data, so no fetch.
func (m Model) selectTab(t Tab) Model {
	m.selection = m.selection.SetTab(t)
	m.refreshContent()
	return m
}

// reselect applies a team or date range change and fetches for it.
func (m Model) reselect(s Selection) (tea.Model, tea.Cmd) {
	if s == m.selection {
		return m, nil
	}
	m.selection = s
	m.loading = true
	m.refreshContent()
	return m, m.fetchCmd()
}

// fetchCmd returns a command that fetches a snapshot for the current
// selection with a timeout.
func (m Model) fetchCmd() tea.Cmd {
	provider, timeout, log := m.provider, m.timeout, m.log
	team, dateRange := m.selection.Team, m.selection.DateRange

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		log.Debug("fetching snapshot team=%s range=%s", team, dateRange)
		snap, err := provider.FetchHealthSnapshot(ctx, team, dateRange)
		return snapshotMsg{team: team, dateRange: dateRange, snapshot: snap, err: err}
	}
}

// applySnapshot stores a fetch result unless the selection moved on while
// it was in flight.
func (m *Model) applySnapshot(msg snapshotMsg) {
	if msg.team != m.selection.Team || msg.dateRange != m.selection.DateRange {
		m.log.Debug("discarding stale snapshot for team=%s range=%s", msg.team, msg.dateRange)
		return
	}

	m.loading = false
	if msg.err != nil {
		m.log.Warn("snapshot fetch failed: %v", msg.err)
		m.err = msg.err
	} else {
		m.err = nil
		m.snapshot = msg.snapshot
		m.summary = health.Summarize(msg.snapshot, m.target)
	}
	m.refreshContent()
}

// resize updates the layout for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	bodyHeight := height - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.mainWidth(), bodyHeight)
		m.viewport.KeyMap = viewportKeys(m.keys)
		m.ready = true
	} else {
		m.viewport.Width = m.mainWidth()
		m.viewport.Height = bodyHeight
	}
	m.refreshContent()
}

// refreshContent re-renders the scrollable body into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderBody(m.mainWidth()))
}

// showSidebar reports whether the terminal is wide enough for the sidebar.
func (m Model) showSidebar() bool {
	return m.width >= SidebarBreakpoint
}

// mainWidth is the width available to the header and sections.
func (m Model) mainWidth() int {
	w := m.width
	if m.showSidebar() {
		w -= SidebarWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}
