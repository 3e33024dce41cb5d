package services

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zenith/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/zenith/internal/core/domain"
	"github.com/custodia-labs/zenith/internal/logger"
)

func londonChartRequest() domain.ChartRequest {
	return domain.ChartRequest{
		Birth:    domain.CivilTime{Year: 1990, Month: 1, Day: 1},
		Location: domain.Location{Latitude: 51.5072, Longitude: -0.1276},
	}
}

func newChartService(t *testing.T) (*ChartService, *SettingsService, *memory.ProfileStore) {
	t.Helper()
	settings := NewSettingsService(memory.NewConfigStore())
	profiles := memory.NewProfileStore()
	return NewChartService(nil, settings, profiles), settings, profiles
}

func TestChartService_Natal_UsesSettingsDefaults(t *testing.T) {
	service, settings, _ := newChartService(t)
	require.NoError(t, settings.SetHouseSystems([]domain.HouseSystem{domain.HouseSystemWholeSign, domain.HouseSystemEqual}))
	require.NoError(t, settings.SetNodeMode(domain.NodeTrue))

	c, err := service.Natal(context.Background(), londonChartRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.NodeTrue, c.Request.NodeMode)
	require.Len(t, c.Houses, 2)
	assert.Equal(t, domain.HouseSystemWholeSign, c.Houses[0].System)
	assert.Equal(t, domain.HouseSystemEqual, c.Houses[1].System)
}

func TestChartService_Natal_RequestOverridesSettings(t *testing.T) {
	service, settings, _ := newChartService(t)
	require.NoError(t, settings.SetHouseSystems([]domain.HouseSystem{domain.HouseSystemWholeSign}))

	req := londonChartRequest()
	req.HouseSystems = []domain.HouseSystem{domain.HouseSystemEqual}
	c, err := service.Natal(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, c.Houses, 1)
	assert.Equal(t, domain.HouseSystemEqual, c.Houses[0].System)
	assert.Equal(t, domain.NodeMean, c.Request.NodeMode)
}

func TestChartService_Natal_NilSettings(t *testing.T) {
	service := NewChartService(nil, nil, nil)
	c, err := service.Natal(context.Background(), londonChartRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.HouseSystemPlacidus, c.Houses[0].System)
}

func TestChartService_Natal_Errors(t *testing.T) {
	service, _, _ := newChartService(t)

	req := londonChartRequest()
	req.Birth.Month = 13
	_, err := service.Natal(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = service.Natal(ctx, londonChartRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChartService_Natal_LogsPolarFallback(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	service, _, _ := newChartService(t)
	req := londonChartRequest()
	req.Location.Latitude = 89
	c, err := service.Natal(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, c.Houses[0].Degraded)
	assert.Contains(t, buf.String(), "placidus houses unavailable")
}

func TestChartService_NatalBatch_KeepsOrder(t *testing.T) {
	service, _, _ := newChartService(t)

	var reqs []domain.ChartRequest
	for year := 1950; year < 1960; year++ {
		req := londonChartRequest()
		req.Birth.Year = year
		reqs = append(reqs, req)
	}

	charts, err := service.NatalBatch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, charts, len(reqs))
	for i, c := range charts {
		assert.Equal(t, reqs[i].Birth.Year, c.Request.Birth.Year)

		single, err := service.Natal(context.Background(), reqs[i])
		require.NoError(t, err)
		assert.Equal(t, *single, c)
	}
}

func TestChartService_NatalBatch_FailsOnBadRequest(t *testing.T) {
	service, _, _ := newChartService(t)

	bad := londonChartRequest()
	bad.Location.Longitude = 500
	_, err := service.NatalBatch(context.Background(), []domain.ChartRequest{londonChartRequest(), bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	charts, err := service.NatalBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, charts)
}

func TestChartService_NatalForProfile(t *testing.T) {
	service, _, profiles := newChartService(t)
	ctx := context.Background()

	profile := domain.BirthProfile{ID: "ada", Name: "Ada", Birth: londonChartRequest().Birth, Location: londonChartRequest().Location}
	require.NoError(t, profiles.Save(ctx, profile))

	c, err := service.NatalForProfile(ctx, "ada")
	require.NoError(t, err)
	direct, err := service.Natal(ctx, londonChartRequest())
	require.NoError(t, err)
	assert.Equal(t, direct, c)

	_, err = service.NatalForProfile(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = NewChartService(nil, nil, nil).NatalForProfile(ctx, "ada")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestChartService_Position(t *testing.T) {
	service, _, _ := newChartService(t)
	at := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	sun, err := service.Position(context.Background(), domain.BodySun, at)
	require.NoError(t, err)
	assert.Equal(t, domain.BodySun, sun.Body)
	assert.InDelta(t, 280.3, sun.Longitude, 0.3)

	_, err = service.Position(context.Background(), domain.Body("nibiru"), at)
	assert.ErrorIs(t, err, domain.ErrUnknownBody)
}

func TestChartService_Transits(t *testing.T) {
	service, settings, _ := newChartService(t)
	ctx := context.Background()

	natal, err := service.Natal(ctx, londonChartRequest())
	require.NoError(t, err)

	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	snap, err := service.Transits(ctx, natal, domain.TransitOptions{Now: &now})
	require.NoError(t, err)
	assert.Equal(t, now, snap.At)
	assert.False(t, snap.Topocentric)
	assert.Nil(t, snap.Angles)

	// The configured observer applies when the caller gives none.
	require.NoError(t, settings.SetObserver(&domain.Location{Latitude: 51.5, Longitude: -0.12}))
	snap, err = service.Transits(ctx, natal, domain.TransitOptions{Now: &now})
	require.NoError(t, err)
	assert.True(t, snap.Topocentric)
	assert.NotNil(t, snap.Angles)

	_, err = service.Transits(ctx, nil, domain.TransitOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChartService_Transits_Clock(t *testing.T) {
	service, _, _ := newChartService(t)
	fixed := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	service.SetClock(func() time.Time { return fixed })

	natal, err := service.Natal(context.Background(), londonChartRequest())
	require.NoError(t, err)
	snap, err := service.Transits(context.Background(), natal, domain.TransitOptions{})
	require.NoError(t, err)
	assert.Equal(t, fixed, snap.At)
}

func TestChartService_Progressed(t *testing.T) {
	service, settings, _ := newChartService(t)
	ctx := context.Background()
	target := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	p, err := service.Progressed(ctx, londonChartRequest(), target, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ProgressionSolarArc, p.Method)
	assert.InDelta(t, 30, p.SolarArc, 2)

	require.NoError(t, settings.SetProgression(domain.ProgressionNaiveDate))
	p, err = service.Progressed(ctx, londonChartRequest(), target, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ProgressionNaiveDate, p.Method)

	_, err = service.Progressed(ctx, londonChartRequest(), target, "tertiary")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
