package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/zenith/internal/astro/calendar"
	"github.com/custodia-labs/zenith/internal/astro/chart"
	"github.com/custodia-labs/zenith/internal/astro/ephemeris"
	"github.com/custodia-labs/zenith/internal/astro/transit"
	"github.com/custodia-labs/zenith/internal/core/domain"
	"github.com/custodia-labs/zenith/internal/core/ports/driven"
	"github.com/custodia-labs/zenith/internal/core/ports/driving"
	"github.com/custodia-labs/zenith/internal/logger"
)

// Ensure ChartService implements the interface.
var _ driving.ChartService = (*ChartService)(nil)

// maxBatchWorkers bounds concurrent chart assembly in NatalBatch.
const maxBatchWorkers = 4

// ChartService computes charts against one shared ephemeris handle.
type ChartService struct {
	eph          *ephemeris.Ephemeris
	assembler    *chart.Assembler
	transits     *transit.Engine
	settings     driving.SettingsService
	profileStore driven.ProfileStore
}

// NewChartService creates a new chart service. A nil handle uses the
// built-in orbital elements; a nil settings service uses defaults.
func NewChartService(
	eph *ephemeris.Ephemeris,
	settings driving.SettingsService,
	profileStore driven.ProfileStore,
) *ChartService {
	if eph == nil {
		eph = &ephemeris.Ephemeris{}
	}
	return &ChartService{
		eph:          eph,
		assembler:    chart.New(eph),
		transits:     transit.New(eph),
		settings:     settings,
		profileStore: profileStore,
	}
}

// SetClock overrides the instant transits use when no time is given.
func (s *ChartService) SetClock(clock func() time.Time) {
	s.transits = s.transits.WithClock(clock)
}

// Natal assembles a natal chart.
func (s *ChartService) Natal(ctx context.Context, req domain.ChartRequest) (*domain.NatalChart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer logger.Elapsed("natal chart", time.Now())

	req = s.applyDefaults(req)
	c, err := s.assembler.Natal(req)
	if err != nil {
		return nil, fmt.Errorf("natal chart: %w", err)
	}
	reportDegraded(&c)
	return &c, nil
}

// NatalBatch assembles several charts concurrently, keeping input order.
func (s *ChartService) NatalBatch(ctx context.Context, reqs []domain.ChartRequest) ([]domain.NatalChart, error) {
	charts := make([]domain.NatalChart, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchWorkers)
	for i, req := range reqs {
		g.Go(func() error {
			c, err := s.Natal(gctx, req)
			if err != nil {
				return fmt.Errorf("chart %d: %w", i, err)
			}
			charts[i] = *c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return charts, nil
}

// NatalForProfile assembles the chart of a stored birth profile.
func (s *ChartService) NatalForProfile(ctx context.Context, profileID string) (*domain.NatalChart, error) {
	if s.profileStore == nil {
		return nil, domain.ErrNotImplemented
	}
	profile, err := s.profileStore.Get(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return s.Natal(ctx, profile.Request(nil, ""))
}

// Position returns one body's apparent geocentric position.
func (s *ChartService) Position(ctx context.Context, body domain.Body, at time.Time) (*domain.BodyPosition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.eph.Init(); err != nil {
		return nil, fmt.Errorf("ephemeris: %w", err)
	}
	pos, err := s.eph.Position(body, calendar.FromTime(at))
	if err != nil {
		return nil, fmt.Errorf("position of %s: %w", body, err)
	}
	if pos.Precision.IsDegraded() {
		logger.Debug("%s computed at %s precision: %s", body, pos.Precision, pos.Note)
	}
	return &pos, nil
}

// Transits compares current positions with a natal chart.
func (s *ChartService) Transits(
	ctx context.Context,
	natal *domain.NatalChart,
	opts domain.TransitOptions,
) (*domain.TransitSnapshot, error) {
	if natal == nil {
		return nil, fmt.Errorf("%w: natal chart required", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Observer == nil {
		opts.Observer = s.loadSettings().Observer
	}
	snap, err := s.transits.Snapshot(*natal, opts)
	if err != nil {
		return nil, fmt.Errorf("transits: %w", err)
	}
	logger.Debug("transits at %s: %d aspects (topocentric=%t)",
		snap.At.Format(time.RFC3339), len(snap.Aspects), snap.Topocentric)
	return &snap, nil
}

// Progressed advances a natal chart to target.
func (s *ChartService) Progressed(
	ctx context.Context,
	req domain.ChartRequest,
	target time.Time,
	method domain.ProgressionMethod,
) (*domain.ProgressedChart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if method == "" {
		method = s.loadSettings().Chart.Progression
	}
	req = s.applyDefaults(req)

	p, err := s.assembler.Progressed(req, target, method)
	if err != nil {
		return nil, fmt.Errorf("progressed chart: %w", err)
	}
	logger.Debug("progressed %s to JD %.5f (arc %.4f°)", method, p.ProgressedJulianDay, p.SolarArc)
	reportDegraded(&p.Chart)
	return &p, nil
}

func (s *ChartService) applyDefaults(req domain.ChartRequest) domain.ChartRequest {
	if len(req.HouseSystems) > 0 && req.NodeMode != "" {
		return req
	}
	settings := s.loadSettings()
	if len(req.HouseSystems) == 0 {
		req.HouseSystems = settings.Chart.HouseSystems
	}
	if req.NodeMode == "" {
		req.NodeMode = settings.Chart.NodeMode
	}
	return req
}

func (s *ChartService) loadSettings() domain.AppSettings {
	if s.settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := s.settings.Get()
	if err != nil || settings == nil {
		logger.Warn("could not load settings, using defaults: %v", err)
		return domain.DefaultAppSettings()
	}
	return *settings
}

// reportDegraded logs every fallback taken while assembling c.
func reportDegraded(c *domain.NatalChart) {
	for _, h := range c.Houses {
		if h.Degraded {
			logger.Warn("%s houses unavailable at latitude %.2f, using %s: %s",
				h.Requested, c.Request.Location.Latitude, h.System, h.Reason)
		}
	}
	for _, p := range c.Bodies {
		switch {
		case p.Precision == domain.PrecisionUnavailable:
			logger.Warn("%s omitted: %s", p.Body, p.Note)
		case p.Precision.IsDegraded():
			logger.Debug("%s at %s precision: %s", p.Body, p.Precision, p.Note)
		}
	}
}
