package chart

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

func londonRequest() domain.ChartRequest {
	return domain.ChartRequest{
		Birth:    domain.CivilTime{Year: 1990, Month: 1, Day: 1},
		Location: domain.Location{Latitude: 51.5072, Longitude: -0.1276},
	}
}

func TestNatal_London1990(t *testing.T) {
	c, err := New(nil).Natal(londonRequest())
	require.NoError(t, err)

	assert.InDelta(t, 2447892.5, c.JulianDay, 1e-9)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), c.UT)
	assert.Equal(t, []domain.HouseSystem{domain.HouseSystemPlacidus}, c.Request.HouseSystems)
	assert.Equal(t, domain.NodeMean, c.Request.NodeMode)

	assert.Equal(t, angle.Normalize(c.Angles.Ascendant+180), c.Angles.Descendant)
	assert.Equal(t, angle.Normalize(c.Angles.Midheaven+180), c.Angles.ImumCoeli)

	h, ok := c.PrimaryHouses()
	require.True(t, ok)
	assert.False(t, h.Degraded)
	assert.Equal(t, domain.HouseSystemPlacidus, h.System)
	var total float64
	for i := 0; i < 12; i++ {
		arc := angle.Normalize(h.Cusps[(i+1)%12] - h.Cusps[i])
		assert.Greater(t, arc, 0.1, "house %d", i+1)
		total += arc
	}
	assert.InDelta(t, 360, total, 1e-6)

	sun, ok := c.Body(domain.BodySun)
	require.True(t, ok)
	assert.Equal(t, domain.Capricorn, sun.Sign())
	assert.InDelta(t, 280.3, sun.Longitude, 0.3)
	assert.False(t, sun.Retrograde())

	assert.Len(t, c.Bodies, len(domain.Roster()))
	for _, p := range c.Bodies {
		assert.True(t, p.Available(), p.Body)
		assert.GreaterOrEqual(t, p.Longitude, 0.0)
		assert.Less(t, p.Longitude, 360.0)
		assert.GreaterOrEqual(t, p.Latitude, -90.0)
		assert.LessOrEqual(t, p.Latitude, 90.0)
		assert.False(t, math.IsNaN(p.Speed))
		assert.GreaterOrEqual(t, p.House, 1)
		assert.LessOrEqual(t, p.House, 12)
	}

	chiron, ok := c.Chiron()
	require.True(t, ok)
	assert.Equal(t, domain.PrecisionEstimated, chiron.Precision)

	moon, _ := c.Body(domain.BodyMoon)
	assert.Equal(t, PartOfFortune(c.Angles.Ascendant, moon.Longitude, sun.Longitude), c.Points.PartOfFortune)
	assert.InDelta(t, angle.Normalize(moon.Longitude-sun.Longitude), c.LunarPhase.Angle, 1e-9)
	assert.InDelta(t, angle.Normalize(c.Points.NorthNode.Longitude+180), c.Points.SouthNode.Longitude, 1e-9)
	assert.NotEmpty(t, c.Aspects)
	assert.False(t, c.Degraded())
}

func TestNatal_Deterministic(t *testing.T) {
	a := New(nil)
	c1, err := a.Natal(londonRequest())
	require.NoError(t, err)
	c2, err := a.Natal(londonRequest())
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

func TestNatal_PolarFallsBackToEqual(t *testing.T) {
	req := londonRequest()
	req.Location.Latitude = 89
	req.HouseSystems = []domain.HouseSystem{domain.HouseSystemPlacidus, domain.HouseSystemWholeSign}

	c, err := New(nil).Natal(req)
	require.NoError(t, err)
	require.Len(t, c.Houses, 2)

	h := c.Houses[0]
	assert.True(t, h.Degraded)
	assert.Equal(t, domain.HouseSystemPlacidus, h.Requested)
	assert.Equal(t, domain.HouseSystemEqual, h.System)
	for _, cusp := range h.Cusps {
		assert.False(t, math.IsNaN(cusp))
	}
	assert.False(t, c.Houses[1].Degraded)
	assert.True(t, c.Degraded())
}

func TestNatal_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ChartRequest)
		want   error
	}{
		{"day 32", func(r *domain.ChartRequest) { r.Birth.Day = 32 }, domain.ErrInvalidDate},
		{"latitude", func(r *domain.ChartRequest) { r.Location.Latitude = 91 }, domain.ErrInvalidInput},
		{"house system", func(r *domain.ChartRequest) { r.HouseSystems = []domain.HouseSystem{"koch"} }, domain.ErrInvalidInput},
		{"node mode", func(r *domain.ChartRequest) { r.NodeMode = "osculating" }, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := londonRequest()
			tt.mutate(&req)
			_, err := New(nil).Natal(req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNatal_HouseSystemsDeduplicated(t *testing.T) {
	req := londonRequest()
	req.HouseSystems = []domain.HouseSystem{domain.HouseSystemEqual, domain.HouseSystemEqual, domain.HouseSystemWholeSign}
	c, err := New(nil).Natal(req)
	require.NoError(t, err)
	require.Len(t, c.Houses, 2)
	assert.Equal(t, domain.HouseSystemEqual, c.Houses[0].System)
	assert.Equal(t, c.Angles.Ascendant, c.Houses[0].Cusps[0])
}

func TestNatal_TrueNode(t *testing.T) {
	req := londonRequest()
	mean, err := New(nil).Natal(req)
	require.NoError(t, err)

	req.NodeMode = domain.NodeTrue
	tru, err := New(nil).Natal(req)
	require.NoError(t, err)

	d := angle.Separation(mean.Points.NorthNode.Longitude, tru.Points.NorthNode.Longitude)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 2.0)
}

func TestPartOfFortune(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		asc, moon, sun := r.Float64()*360, r.Float64()*360, r.Float64()*360
		got := PartOfFortune(asc, moon, sun)
		assert.Equal(t, angle.Normalize(asc+moon-sun), got)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestProgressed_SolarArc(t *testing.T) {
	a := New(nil)
	req := londonRequest()
	target := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	natal, err := a.Natal(req)
	require.NoError(t, err)

	p, err := a.Progressed(req, target, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ProgressionSolarArc, p.Method)
	assert.InDelta(t, natal.JulianDay+30*365.25/365.2422, p.ProgressedJulianDay, 0.01)
	assert.InDelta(t, 30, p.SolarArc, 1.5)

	shifted := natal.Angles.Shift(p.SolarArc)
	assert.InDelta(t, shifted.Ascendant, p.Chart.Angles.Ascendant, 1e-9)
	assert.InDelta(t, shifted.Midheaven, p.Chart.Angles.Midheaven, 1e-9)
	for i, cusp := range p.Chart.Houses[0].Cusps {
		assert.InDelta(t, 0, angle.Delta(angle.Normalize(natal.Houses[0].Cusps[i]+p.SolarArc), cusp), 1e-9)
	}

	sun, _ := p.Chart.Body(domain.BodySun)
	natalSun, _ := natal.Body(domain.BodySun)
	assert.InDelta(t, 0, angle.Delta(angle.Normalize(natalSun.Longitude+p.SolarArc), sun.Longitude), 1e-9)

	moon, _ := p.Chart.Body(domain.BodyMoon)
	assert.Equal(t, PartOfFortune(p.Chart.Angles.Ascendant, moon.Longitude, sun.Longitude), p.Chart.Points.PartOfFortune)
}

func TestProgressed_NaiveDate(t *testing.T) {
	a := New(nil)
	req := londonRequest()
	target := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	p, err := a.Progressed(req, target, domain.ProgressionNaiveDate)
	require.NoError(t, err)
	assert.Equal(t, p.ProgressedJulianDay, p.Chart.JulianDay)

	direct, err := a.cast(p.Chart.Request, p.ProgressedJulianDay)
	require.NoError(t, err)
	assert.Equal(t, direct.Angles, p.Chart.Angles)
}

func TestProgressed_InvalidMethod(t *testing.T) {
	_, err := New(nil).Progressed(londonRequest(), time.Now(), "tertiary")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSolarArc_Unwraps(t *testing.T) {
	assert.InDelta(t, 200, SolarArc(100, 300, 200/sunMeanMotion), 1e-9)
	assert.InDelta(t, 20, SolarArc(350, 10, 20/sunMeanMotion), 1e-9)
	assert.InDelta(t, -5, SolarArc(10, 5, -5/sunMeanMotion), 1e-9)
}
