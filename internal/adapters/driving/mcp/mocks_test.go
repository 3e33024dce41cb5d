package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// mockChartService is a mock implementation of driving.ChartService.
// It records the last request it saw so tests can inspect the mapping.
type mockChartService struct {
	chart      *domain.NatalChart
	position   *domain.BodyPosition
	snapshot   *domain.TransitSnapshot
	progressed *domain.ProgressedChart
	err        error

	lastRequest domain.ChartRequest
	lastBody    domain.Body
	lastAt      time.Time
	lastOpts    domain.TransitOptions
	lastMethod  domain.ProgressionMethod
	lastProfile string
}

func (m *mockChartService) Natal(_ context.Context, req domain.ChartRequest) (*domain.NatalChart, error) {
	m.lastRequest = req
	return m.chart, m.err
}

func (m *mockChartService) NatalBatch(_ context.Context, reqs []domain.ChartRequest) ([]domain.NatalChart, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.NatalChart, len(reqs))
	for i := range reqs {
		out[i] = *m.chart
	}
	return out, nil
}

func (m *mockChartService) NatalForProfile(_ context.Context, profileID string) (*domain.NatalChart, error) {
	m.lastProfile = profileID
	return m.chart, m.err
}

func (m *mockChartService) Position(_ context.Context, body domain.Body, at time.Time) (*domain.BodyPosition, error) {
	m.lastBody = body
	m.lastAt = at
	return m.position, m.err
}

func (m *mockChartService) Transits(
	_ context.Context,
	_ *domain.NatalChart,
	opts domain.TransitOptions,
) (*domain.TransitSnapshot, error) {
	m.lastOpts = opts
	return m.snapshot, m.err
}

func (m *mockChartService) Progressed(
	_ context.Context,
	req domain.ChartRequest,
	target time.Time,
	method domain.ProgressionMethod,
) (*domain.ProgressedChart, error) {
	m.lastRequest = req
	m.lastAt = target
	m.lastMethod = method
	return m.progressed, m.err
}

// mockProfileService is a mock implementation of driving.ProfileService.
type mockProfileService struct {
	profiles []domain.BirthProfile
	profile  *domain.BirthProfile
	err      error
}

func (m *mockProfileService) Add(_ context.Context, p domain.BirthProfile) (*domain.BirthProfile, error) {
	return &p, m.err
}

func (m *mockProfileService) Get(_ context.Context, _ string) (*domain.BirthProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) Find(_ context.Context, _ string) (*domain.BirthProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) List(_ context.Context) ([]domain.BirthProfile, error) {
	return m.profiles, m.err
}

func (m *mockProfileService) Update(_ context.Context, _ domain.BirthProfile) error {
	return m.err
}

func (m *mockProfileService) Remove(_ context.Context, _ string) error {
	return m.err
}

// sampleChart is a minimal chart with one body, houses and an aspect.
func sampleChart() *domain.NatalChart {
	return &domain.NatalChart{
		JulianDay: 2447892.5,
		UT:        time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Angles:    domain.NewChartAngles(190, 100),
		Bodies: []domain.BodyPosition{
			{Body: domain.BodySun, Longitude: 280.5, Speed: 1.02, House: 4, Precision: domain.PrecisionSeries},
			{Body: domain.BodyMercury, Longitude: 290.1, Speed: -0.3, House: 4, Precision: domain.PrecisionElements},
			{Body: domain.BodyVesta, Precision: domain.PrecisionUnavailable, Note: "no elements"},
		},
		Houses: []domain.HouseCusps{{
			Requested: domain.HouseSystemPlacidus,
			System:    domain.HouseSystemPlacidus,
		}},
		LunarPhase: domain.NewLunarPhase(45),
		Aspects: []domain.Aspect{{
			A:    domain.BodySun.Point(),
			B:    domain.BodyMercury.Point(),
			Type: domain.AspectConjunction,
			Orb:  9.6,
		}},
	}
}
