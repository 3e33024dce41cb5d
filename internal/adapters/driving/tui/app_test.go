package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zenith/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

var fixedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, chart *MockChartService) *App {
	t.Helper()
	app, err := NewApp(&Ports{Chart: chart}, Config{
		Request: domain.ChartRequest{Birth: domain.CivilTime{Year: 1990, Month: 1, Day: 1}},
		Title:   "Ada",
	})
	require.NoError(t, err)
	app.WithClock(func() time.Time { return fixedNow })
	app.SetDimensions(120, 40)
	return app
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func sampleSnapshot() *domain.TransitSnapshot {
	return &domain.TransitSnapshot{
		At: fixedNow,
		Bodies: []domain.BodyPosition{
			{Body: domain.BodySun, Longitude: 0.5, Speed: 0.99, Precision: domain.PrecisionSeries},
			{Body: domain.BodyMercury, Longitude: 20, Speed: -0.2, Precision: domain.PrecisionElements},
			{Body: domain.BodyVesta, Precision: domain.PrecisionUnavailable},
		},
		Aspects: []domain.TransitAspect{
			{Transiting: domain.BodyPluto.Point(), Natal: domain.BodySun.Point(), Type: domain.AspectConjunction,
				Orb: 0.4, Class: domain.TransitLongTerm},
			{Transiting: domain.BodyMars.Point(), Natal: domain.BodyMoon.Point(), Type: domain.AspectTrine,
				Orb: 1.1, Applying: true, Class: domain.TransitRegular},
			{Transiting: domain.BodyMoon.Point(), Natal: domain.PointAscendant, Type: domain.AspectSquare,
				Orb: 2.0, Class: domain.TransitShortTerm},
		},
	}
}

// loaded drives the app through natal and first snapshot delivery.
func loaded(t *testing.T, app *App) {
	t.Helper()
	msg := app.loadNatal()()
	_, cmd := app.Update(msg)
	require.NotNil(t, cmd)
	_, _ = app.Update(app.loadSnapshot()())
	require.NotNil(t, app.Snapshot())
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(&Ports{Chart: &MockChartService{}}, Config{})

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, DefaultInterval, app.config.Interval)
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{}, Config{})

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingChartService)
}

func TestNewApp_NegativeInterval(t *testing.T) {
	_, err := NewApp(&Ports{Chart: &MockChartService{}}, Config{Interval: -time.Second})

	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t, &MockChartService{})

	assert.NotNil(t, app.Init())
}

func TestApp_WithContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "watch")

	var seen context.Context
	chart := &MockChartService{
		NatalFunc: func(ctx context.Context, _ domain.ChartRequest) (*domain.NatalChart, error) {
			seen = ctx
			return &domain.NatalChart{}, nil
		},
	}
	app := newTestApp(t, chart)
	app.WithContext(ctx)

	app.loadNatal()()
	require.NotNil(t, seen)
	assert.Equal(t, "watch", seen.Value(ctxKey{}))
}

func TestApp_LoadsSnapshotAfterNatal(t *testing.T) {
	chart := &MockChartService{
		TransitsFunc: func(_ context.Context, _ *domain.NatalChart, _ domain.TransitOptions) (*domain.TransitSnapshot, error) {
			return sampleSnapshot(), nil
		},
	}
	app := newTestApp(t, chart)

	loaded(t, app)

	assert.Equal(t, 1, chart.transitCalls)
	require.NotNil(t, chart.lastOpts.Now)
	assert.Equal(t, fixedNow, *chart.lastOpts.Now)
	assert.Len(t, app.Snapshot().Aspects, 3)
	assert.NoError(t, app.Err())
}

func TestApp_NatalError(t *testing.T) {
	chart := &MockChartService{
		NatalFunc: func(context.Context, domain.ChartRequest) (*domain.NatalChart, error) {
			return nil, domain.ErrInvalidDate
		},
	}
	app := newTestApp(t, chart)

	_, cmd := app.Update(app.loadNatal()())

	assert.Nil(t, cmd)
	assert.ErrorIs(t, app.Err(), domain.ErrInvalidDate)
	assert.Contains(t, app.View(), "invalid date")
	assert.Equal(t, 0, chart.transitCalls)
}

func TestApp_SnapshotErrorKeepsLastSnapshot(t *testing.T) {
	calls := 0
	chart := &MockChartService{
		TransitsFunc: func(context.Context, *domain.NatalChart, domain.TransitOptions) (*domain.TransitSnapshot, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("ephemeris offline")
			}
			return sampleSnapshot(), nil
		},
	}
	app := newTestApp(t, chart)
	loaded(t, app)

	_, _ = app.Update(app.loadSnapshot()())

	assert.EqualError(t, app.Err(), "ephemeris offline")
	assert.NotNil(t, app.Snapshot())
}

func TestApp_TickRefreshesUnlessPaused(t *testing.T) {
	chart := &MockChartService{}
	app := newTestApp(t, chart)

	// Before the natal chart arrives a tick only reschedules.
	_, cmd := app.Update(messages.Tick{At: fixedNow})
	assert.NotNil(t, cmd)

	loaded(t, app)

	_, cmd = app.Update(runeKey('p'))
	assert.Nil(t, cmd)
	assert.True(t, app.Paused())

	_, cmd = app.Update(messages.Tick{At: fixedNow})
	assert.NotNil(t, cmd)

	_, cmd = app.Update(runeKey('p'))
	require.NotNil(t, cmd)
	assert.False(t, app.Paused())

	msg := cmd()
	_, ok := msg.(messages.SnapshotLoaded)
	assert.True(t, ok)
}

func TestApp_RefreshKey(t *testing.T) {
	chart := &MockChartService{}
	app := newTestApp(t, chart)

	_, cmd := app.Update(runeKey('r'))
	assert.Nil(t, cmd, "nothing to refresh before the natal chart")

	loaded(t, app)
	_, cmd = app.Update(runeKey('r'))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 2, chart.transitCalls)
}

func TestApp_FilterCyclesClasses(t *testing.T) {
	chart := &MockChartService{
		TransitsFunc: func(context.Context, *domain.NatalChart, domain.TransitOptions) (*domain.TransitSnapshot, error) {
			return sampleSnapshot(), nil
		},
	}
	app := newTestApp(t, chart)
	loaded(t, app)

	want := []domain.TransitClass{
		domain.TransitLongTerm,
		domain.TransitRegular,
		domain.TransitShortTerm,
		"",
	}
	for _, class := range want {
		app.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, class, app.Filter())
		if class != "" {
			require.Len(t, app.visibleAspects(), 1)
			assert.Equal(t, class, app.visibleAspects()[0].Class)
		}
	}
	assert.Len(t, app.visibleAspects(), 3)
}

func TestApp_ScrollIsClamped(t *testing.T) {
	chart := &MockChartService{
		TransitsFunc: func(context.Context, *domain.NatalChart, domain.TransitOptions) (*domain.TransitSnapshot, error) {
			return sampleSnapshot(), nil
		},
	}
	app := newTestApp(t, chart)
	loaded(t, app)

	for i := 0; i < 10; i++ {
		app.Update(runeKey('j'))
	}
	assert.Equal(t, 2, app.offset)

	for i := 0; i < 10; i++ {
		app.Update(runeKey('k'))
	}
	assert.Equal(t, 0, app.offset)
}

func TestApp_View(t *testing.T) {
	chart := &MockChartService{
		TransitsFunc: func(context.Context, *domain.NatalChart, domain.TransitOptions) (*domain.TransitSnapshot, error) {
			return sampleSnapshot(), nil
		},
	}
	app := newTestApp(t, chart)
	assert.Contains(t, app.View(), "Computing...")

	loaded(t, app)
	view := app.View()

	assert.Contains(t, view, "Transits to Ada")
	assert.Contains(t, view, "2024-03-20 12:00:00 UTC, geocentric")
	assert.Contains(t, view, " 0°30' Aries")
	assert.Contains(t, view, "unavailable")
	assert.Contains(t, view, "Pluto")
	assert.Contains(t, view, "conjunction")
	assert.Contains(t, view, "Live, updated 12:00:00, 3 aspects")
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t, &MockChartService{})
	loaded(t, app)

	app.Update(runeKey('?'))
	assert.Contains(t, app.View(), "refresh")

	app.Update(runeKey('?'))
	assert.False(t, app.help.ShowAll)
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t, &MockChartService{})

	_, cmd := app.Update(runeKey('q'))

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(&Ports{Chart: &MockChartService{}}, Config{})
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.status.Width())
}
