package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/logradar/collector"
	"github.com/ftahirops/logradar/engine"
	"github.com/ftahirops/logradar/model"
)

// Mode is the UI's modal state machine: Normal is the default two-pane
// view, the rest are mutually-exclusive overlays/drilldowns entered and
// left by single keypresses.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeHelp
	ModeDrilldown
	ModeProfilePicker
	ModeSourceMenu
)

// Pane identifies which of the two normal-mode panes has focus.
type Pane int

const (
	PanePatterns Pane = iota
	PaneSources
)

const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

// discoveryMsg carries a background discovery probe's result back into
// Update, off the main event channel.
type discoveryMsg model.DiscoveryResult

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// sourceMenuField identifies which add-source input is active.
type sourceMenuField int

const (
	menuKindDocker sourceMenuField = iota
	menuKindCommand
	menuKindFile
	menuKindAzure
	menuKindCount
)

// Model is the bubbletea model driving the whole application: it owns the
// pattern store, the source table, and every piece of UI-navigation state.
// It is the sole reader of both the supervisor's fan-in channel (via
// ticker) and of discovery results, so none of its fields need locking.
type Model struct {
	store      *engine.PatternStore
	ticker     engine.Ticker
	supervisor *collector.Supervisor
	recorder   *engine.Recorder

	sources         map[string]*model.SourceInfo
	sourceOrder     []string
	sourceRates     map[string][]time.Time // source id -> timestamps within the last minute
	collapsedGroups map[model.SourceKind]bool

	profiles   []model.Profile
	profileIdx int
	theme      Theme
	styles     styles
	showBanner bool

	width, height int

	mode Mode
	pane Pane

	selectedPattern int
	selectedSource  int

	searchQuery     string
	filteredIndices []int // pattern indices matching searchQuery, score order; nil means unfiltered
	activeSourceFilter string

	drilldownScroll    int
	drilldownNormalized bool

	profilePickerIdx int

	sourceMenuField sourceMenuField
	sourceMenuInput string
	sourceMenuErr   string
	dockerList      []model.DockerContainer
	azureList       []model.AzureContainerApp
	azureToken      string
	discovering     bool

	paused     bool
	tickCount  uint64
	statusMsg  string
	statusTime time.Time
}

// NewModel constructs the application model. profiles is the resolved
// profile table (built-ins merged with any config overrides); activeName
// selects the starting profile by name, falling back to index 0.
func NewModel(sup *collector.Supervisor, ticker engine.Ticker, profiles []model.Profile, activeName string, theme Theme, showBanner bool, recorder *engine.Recorder) Model {
	idx := 0
	for i, p := range profiles {
		if p.Name == activeName {
			idx = i
			break
		}
	}
	return Model{
		store:           engine.NewPatternStore(),
		ticker:          ticker,
		supervisor:      sup,
		recorder:        recorder,
		sources:         make(map[string]*model.SourceInfo),
		sourceRates:     make(map[string][]time.Time),
		collapsedGroups: make(map[model.SourceKind]bool),
		profiles:        profiles,
		profileIdx:      idx,
		theme:           theme,
		styles:          newStyles(theme),
		showBanner:      showBanner,
		mode:            ModeNormal,
	}
}

// AttachSource registers a source and starts its producer. Used both for
// sources pre-attached from CLI flags and for ones added via the add-source
// menu. name is the display name; for command sources the id's <name>
// segment is reduced to the shell string's first token, per the source id
// table, while the display name keeps the full command.
func (m *Model) AttachSource(name string, kind model.SourceKind, target string, p collector.Producer) string {
	idName := name
	if kind == model.SourceCommand {
		idName = firstToken(name)
	}
	id := collector.NewSourceID(kind, idName)
	m.sources[id] = &model.SourceInfo{
		ID:        id,
		Name:      name,
		Kind:      kind,
		Status:    model.StatusStarting,
		Target:    target,
		StartedAt: time.Now(),
	}
	m.sourceOrder = append(m.sourceOrder, id)
	m.supervisor.Start(context.Background(), id, p)
	return id
}

// OpenSourceMenuOnStart puts the model straight into the add-source menu,
// used when logradar starts with no --docker/--cmd/--file flags and isn't
// replaying a recorded session.
func (m *Model) OpenSourceMenuOnStart() {
	m.mode = ModeSourceMenu
}

// firstToken returns the first whitespace-delimited token of s, or s
// itself if it has none.
func firstToken(s string) string {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}

func (m Model) activeProfile() model.Profile {
	if m.profileIdx < 0 || m.profileIdx >= len(m.profiles) {
		return model.DefaultProfile()
	}
	return m.profiles[m.profileIdx]
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case discoveryMsg:
		m.discovering = false
		if msg.Docker != nil || msg.DockerErr != nil {
			m.dockerList = msg.Docker
			if msg.DockerErr != nil {
				m.sourceMenuErr = msg.DockerErr.Error()
			}
		}
		if msg.Azure != nil || msg.AzureErr != nil {
			m.azureList = msg.Azure
			if msg.AzureErr != nil {
				m.sourceMenuErr = msg.AzureErr.Error()
			}
		}
		if msg.AzureToken != "" {
			m.azureToken = msg.AzureToken
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.onTick()
		return m, tick()
	}
	return m, nil
}

// onTick drains the ticker, advances rolling windows, and prunes stale
// per-source rate timestamps. It runs once per tick regardless of mode,
// except that a paused session drops Log events silently while still
// applying Status transitions, and does not advance the rate windows
// (time effectively stops for statistics while paused).
func (m *Model) onTick() {
	m.tickCount++
	now := time.Now()
	minLevel := m.activeProfile().MinLevel

	for i := 0; i < 64; i++ { // bounded drain per tick; backpressure, not starvation
		ev, ok := m.ticker.Next()
		if !ok {
			break
		}
		if m.recorder != nil {
			m.recorder.Record(ev)
		}
		src, known := m.sources[ev.SourceID]
		if !known {
			// Seen only through a recorded event (--replay): reconstruct a
			// SourceInfo from the id itself rather than dropping the event,
			// since a replay never runs the AttachSource flow that would
			// otherwise have registered it.
			kind, name, ok := model.ParseSourceID(ev.SourceID)
			if !ok {
				continue
			}
			src = &model.SourceInfo{
				ID:        ev.SourceID,
				Name:      name,
				Kind:      kind,
				Status:    model.StatusRunning,
				StartedAt: now,
			}
			m.sources[ev.SourceID] = src
			m.sourceOrder = append(m.sourceOrder, ev.SourceID)
		}
		if ev.Status != model.StatusRunning || ev.Line == "" {
			src.Status = ev.Status
			if ev.Err != nil {
				src.Err = truncateErr(ev.Err.Error())
			}
			continue
		}
		if m.paused {
			continue
		}
		src.EventsIn++
		m.sourceRates[ev.SourceID] = append(m.sourceRates[ev.SourceID], now)

		logEv := engine.ParseLine(src.ID, ev.Line)
		if logEv.Level.Rank() < minLevel.Rank() {
			continue
		}
		m.store.Ingest(logEv)
	}

	if !m.paused {
		m.store.Tick()
		for id, ts := range m.sourceRates {
			m.sourceRates[id] = pruneOlderThan(ts, now, 60*time.Second)
		}
	}

	m.recomputeFilter()
	if m.selectedPattern >= m.visibleCount() {
		m.selectedPattern = max(0, m.visibleCount()-1)
	}
}

func pruneOlderThan(ts []time.Time, now time.Time, window time.Duration) []time.Time {
	i := 0
	for i < len(ts) && now.Sub(ts[i]) > window {
		i++
	}
	return ts[i:]
}

func truncateErr(s string) string {
	const max = 120
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
