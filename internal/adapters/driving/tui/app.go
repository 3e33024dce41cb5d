package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/zenith/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/zenith/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/zenith/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/zenith/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// DefaultInterval is the refresh period when Config leaves it unset.
const DefaultInterval = 5 * time.Second

// Config selects what the dashboard watches.
type Config struct {
	// Request is the natal chart to compare against.
	Request domain.ChartRequest

	// Title names the subject in the header.
	Title string

	// Observer makes the Moon topocentric and adds current angles. Nil
	// defers to the configured default observer.
	Observer *domain.Location

	// Interval between refreshes; zero means DefaultInterval.
	Interval time.Duration
}

// classFilters is the cycle order of the aspect filter; empty shows all.
var classFilters = []domain.TransitClass{
	"",
	domain.TransitLongTerm,
	domain.TransitRegular,
	domain.TransitShortTerm,
}

// App is the transit dashboard following the Elm architecture.
// It implements tea.Model for use with Bubbletea. Every refresh recomputes
// the snapshot from scratch; nothing is cached between ticks.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model
	status *status.Bar

	config Config
	now    func() time.Time

	natal    *domain.NatalChart
	snapshot *domain.TransitSnapshot

	// filter is an index into classFilters.
	filter int

	// offset is the first visible aspect row.
	offset int

	paused bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates a window size has been received.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new dashboard with the given ports.
func NewApp(ports *Ports, cfg Config) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("creating app: %w", ErrInvalidInterval)
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		help:   help.New(),
		status: status.NewBar(s, km),
		config: cfg,
		now:    time.Now,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithClock replaces the clock used for snapshot instants.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Init implements tea.Model.
// It casts the natal chart; the first snapshot follows once it arrives.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("zenith - transits"),
		a.loadNatal(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.NatalLoaded:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.natal = msg.Chart
		return a, tea.Batch(a.loadSnapshot(), a.tick())

	case messages.SnapshotLoaded:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.err = nil
		a.snapshot = msg.Snapshot
		a.clampOffset()
		a.status.SetUpdated(msg.Snapshot.At, len(msg.Snapshot.Aspects))
		if a.paused {
			a.status.SetState(status.StatePaused)
		} else {
			a.status.SetState(status.StateLive)
		}
		return a, nil

	case messages.Tick:
		if a.paused || a.natal == nil {
			return a, a.tick()
		}
		return a, tea.Batch(a.loadSnapshot(), a.tick())
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return tea.Quit

	case key.Matches(msg, a.keymap.Help):
		a.help.ShowAll = !a.help.ShowAll

	case key.Matches(msg, a.keymap.Refresh):
		if a.natal != nil {
			return a.loadSnapshot()
		}

	case key.Matches(msg, a.keymap.Pause):
		a.paused = !a.paused
		if a.paused {
			a.status.SetState(status.StatePaused)
			return nil
		}
		a.status.SetState(status.StateLive)
		if a.natal != nil {
			return a.loadSnapshot()
		}

	case key.Matches(msg, a.keymap.Filter):
		a.filter = (a.filter + 1) % len(classFilters)
		a.offset = 0

	case key.Matches(msg, a.keymap.Up):
		if a.offset > 0 {
			a.offset--
		}

	case key.Matches(msg, a.keymap.Down):
		a.offset++
		a.clampOffset()
	}
	return nil
}

func (a *App) fail(err error) {
	a.err = err
	a.status.SetState(status.StateError)
	a.status.SetMessage(err.Error())
}

func (a *App) loadNatal() tea.Cmd {
	ctx, chart, req := a.ctx, a.ports.Chart, a.config.Request
	return func() tea.Msg {
		c, err := chart.Natal(ctx, req)
		return messages.NatalLoaded{Chart: c, Err: err}
	}
}

// loadSnapshot reads the clock now so that the computed instant matches
// the moment the refresh was requested.
func (a *App) loadSnapshot() tea.Cmd {
	ctx, chart, natal := a.ctx, a.ports.Chart, a.natal
	at := a.now().UTC()
	opts := domain.TransitOptions{Now: &at, Observer: a.config.Observer}
	return func() tea.Msg {
		snap, err := chart.Transits(ctx, natal, opts)
		return messages.SnapshotLoaded{Snapshot: snap, Err: err}
	}
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.config.Interval, func(t time.Time) tea.Msg {
		return messages.Tick{At: t}
	})
}

// visibleAspects returns the aspects passing the class filter.
func (a *App) visibleAspects() []domain.TransitAspect {
	if a.snapshot == nil {
		return nil
	}
	class := classFilters[a.filter]
	if class == "" {
		return a.snapshot.Aspects
	}
	return a.snapshot.ByClass(class)
}

func (a *App) clampOffset() {
	n := len(a.visibleAspects())
	if a.offset >= n {
		a.offset = n - 1
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

// View implements tea.Model.
// It renders the dashboard as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	title := "Transits"
	if a.config.Title != "" {
		title += " to " + a.config.Title
	}
	b.WriteString(a.styles.Title.Render(title))
	b.WriteString("\n")

	if a.snapshot == nil {
		if a.err != nil {
			b.WriteString(a.styles.Error.Render(a.err.Error()))
		} else {
			b.WriteString(a.styles.Muted.Render("Computing..."))
		}
		b.WriteString("\n\n")
		b.WriteString(a.status.View())
		return b.String()
	}

	frame := "geocentric"
	if a.snapshot.Topocentric {
		frame = "topocentric Moon"
	}
	b.WriteString(a.styles.Muted.Render(fmt.Sprintf("%s UTC, %s",
		a.snapshot.At.Format("2006-01-02 15:04:05"), frame)))
	b.WriteString("\n\n")

	sky := a.styles.Panel.Render(a.viewSky())
	aspects := a.styles.Panel.Render(a.viewAspects())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sky, " ", aspects))
	b.WriteString("\n")

	if a.help.ShowAll {
		b.WriteString(a.help.View(a.keymap))
		b.WriteString("\n")
	}
	b.WriteString(a.status.View())
	return b.String()
}

func (a *App) viewSky() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Sky"))
	b.WriteString("\n")
	for _, p := range a.snapshot.Bodies {
		name := fmt.Sprintf("%-9s", p.Body.DisplayName())
		if !p.Available() {
			b.WriteString(name + " " + a.styles.Warning.Render("unavailable") + "\n")
			continue
		}
		line := name + " " + domain.FormatZodiac(p.Longitude)
		if p.Retrograde() {
			line += " " + a.styles.Retrograde.Render("R")
		}
		b.WriteString(line + "\n")
	}
	if ang := a.snapshot.Angles; ang != nil {
		b.WriteString(fmt.Sprintf("%-9s %s\n", "ASC", domain.FormatZodiac(ang.Ascendant)))
		b.WriteString(fmt.Sprintf("%-9s %s\n", "MC", domain.FormatZodiac(ang.Midheaven)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) viewAspects() string {
	var b strings.Builder
	heading := "Aspects"
	if class := classFilters[a.filter]; class != "" {
		heading += " (" + strings.ReplaceAll(class.String(), "_", " ") + ")"
	}
	b.WriteString(a.styles.Subtitle.Render(heading))
	b.WriteString("\n")

	aspects := a.visibleAspects()
	if len(aspects) == 0 {
		b.WriteString(a.styles.Muted.Render("none within orb"))
		return b.String()
	}

	rows := a.aspectRows()
	end := a.offset + rows
	if end > len(aspects) {
		end = len(aspects)
	}
	for _, t := range aspects[a.offset:end] {
		state := "sep"
		if t.Applying {
			state = "app"
		}
		line := fmt.Sprintf("%-9s %-14s %-11s %5.2f° %s",
			t.Transiting.DisplayName(), t.Type, t.Natal.DisplayName(), t.Orb, state)
		b.WriteString(a.styles.Class(t.Class).Render(line))
		b.WriteString("\n")
	}
	if end < len(aspects) {
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("… %d more", len(aspects)-end)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// aspectRows is how many aspect lines fit above the status bar.
func (a *App) aspectRows() int {
	rows := a.height - 9
	if rows < 5 {
		rows = 5
	}
	return rows
}

// Snapshot returns the most recent snapshot, or nil before the first refresh.
func (a *App) Snapshot() *domain.TransitSnapshot {
	return a.snapshot
}

// Paused returns whether periodic refresh is suspended.
func (a *App) Paused() bool {
	return a.paused
}

// Filter returns the transit class shown; empty means all.
func (a *App) Filter() domain.TransitClass {
	return classFilters[a.filter]
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.status.SetWidth(width)
	a.help.Width = width
}
