package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zenith/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Chart, settings.Chart)
	assert.Empty(t, settings.Ephemeris.SeriesDir)
	assert.Nil(t, settings.Observer)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("chart.house_systems", []any{"whole_sign", "equal"})
	_ = store.Set("chart.progression", "naive_date")
	_ = store.Set("chart.node", "true")
	_ = store.Set("ephemeris.series_dir", "builtin")
	_ = store.Set("observer.latitude", 40.7128)
	_ = store.Set("observer.longitude", -74.006)
	_ = store.Set("observer.elevation", int64(10))

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t,
		[]domain.HouseSystem{domain.HouseSystemWholeSign, domain.HouseSystemEqual},
		settings.Chart.HouseSystems)
	assert.Equal(t, domain.ProgressionNaiveDate, settings.Chart.Progression)
	assert.Equal(t, domain.NodeTrue, settings.Chart.NodeMode)
	assert.Equal(t, "builtin", settings.Ephemeris.SeriesDir)
	require.NotNil(t, settings.Observer)
	assert.InDelta(t, 40.7128, settings.Observer.Latitude, 1e-9)
	assert.InDelta(t, -74.006, settings.Observer.Longitude, 1e-9)
	assert.InDelta(t, 10, settings.Observer.Elevation, 1e-9)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("chart.house_systems", []string{"placidus", "koch"})
	_ = store.Set("chart.progression", "tertiary")
	_ = store.Set("chart.node", "osculating")
	_ = store.Set("observer.latitude", 95.0)
	_ = store.Set("observer.longitude", 0.0)

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Chart, settings.Chart)
	assert.Nil(t, settings.Observer)
}

func TestSettingsService_Get_PartialObserverIgnored(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("observer.latitude", 51.5)

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Nil(t, settings.Observer)
}

func TestSettingsService_Save_RoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	in := domain.DefaultAppSettings()
	in.Chart.HouseSystems = []domain.HouseSystem{domain.HouseSystemEqual}
	in.Chart.NodeMode = domain.NodeTrue
	in.Ephemeris.ElementsFile = "/tmp/elements.toml"
	in.Observer = &domain.Location{Latitude: -33.87, Longitude: 151.21}

	require.NoError(t, service.Save(&in))

	out, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, in.Chart, out.Chart)
	assert.Equal(t, in.Ephemeris, out.Ephemeris)
	assert.Equal(t, in.Observer, out.Observer)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	in := domain.DefaultAppSettings()
	in.Chart.HouseSystems = nil
	assert.ErrorIs(t, service.Save(&in), domain.ErrInvalidInput)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, s *domain.AppSettings)
		wantErr error
	}{
		{
			name: "house systems list", key: "chart.house_systems", value: "whole-sign, placidus",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t,
					[]domain.HouseSystem{domain.HouseSystemWholeSign, domain.HouseSystemPlacidus},
					s.Chart.HouseSystems)
			},
		},
		{
			name: "progression", key: "chart.progression", value: "naive-date",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, domain.ProgressionNaiveDate, s.Chart.Progression)
			},
		},
		{
			name: "node", key: "chart.node", value: "TRUE",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, domain.NodeTrue, s.Chart.NodeMode)
			},
		},
		{
			name: "series dir", key: "ephemeris.series_dir", value: " /data/series ",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, "/data/series", s.Ephemeris.SeriesDir)
			},
		},
		{name: "unknown house system", key: "chart.house_systems", value: "koch", wantErr: domain.ErrInvalidInput},
		{name: "unknown node", key: "chart.node", value: "wobbly", wantErr: domain.ErrInvalidInput},
		{name: "unknown key", key: "search.mode", value: "hybrid", wantErr: domain.ErrInvalidInput},
		{name: "latitude not a number", key: "observer.latitude", value: "north", wantErr: domain.ErrInvalidInput},
		{name: "latitude out of range", key: "observer.latitude", value: "91", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())
			err := service.Set(tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_ObserverFields(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.Set("observer.latitude", "48.8566"))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Nil(t, settings.Observer, "observer needs both coordinates")

	// Unrelated keys leave the partial observer alone.
	require.NoError(t, service.Set("chart.node", "true"))

	require.NoError(t, service.Set("observer.longitude", "2.3522"))
	settings, err = service.Get()
	require.NoError(t, err)
	require.NotNil(t, settings.Observer)
	assert.InDelta(t, 48.8566, settings.Observer.Latitude, 1e-9)
	assert.InDelta(t, 2.3522, settings.Observer.Longitude, 1e-9)
}

func TestSettingsService_SetObserver_Clear(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetObserver(&domain.Location{Latitude: 10, Longitude: 20, Elevation: 5}))
	assert.Len(t, store.Keys(), 3)

	require.NoError(t, service.SetObserver(nil))
	assert.Empty(t, store.Keys())

	assert.ErrorIs(t, service.SetObserver(&domain.Location{Latitude: 10, Longitude: 200}), domain.ErrInvalidInput)
}

func TestSettingsService_Setters(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetHouseSystems([]domain.HouseSystem{domain.HouseSystemEqual}))
	require.NoError(t, service.SetProgression(domain.ProgressionNaiveDate))
	require.NoError(t, service.SetNodeMode(domain.NodeTrue))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, []domain.HouseSystem{domain.HouseSystemEqual}, settings.Chart.HouseSystems)
	assert.Equal(t, domain.ProgressionNaiveDate, settings.Chart.Progression)
	assert.Equal(t, domain.NodeTrue, settings.Chart.NodeMode)

	assert.ErrorIs(t, service.SetHouseSystems(nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.SetProgression("tertiary"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.SetNodeMode("wobbly"), domain.ErrInvalidInput)
}

func TestSettingsService_Validate(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	assert.NoError(t, service.Validate())

	_ = store.Set("chart.progression", "tertiary")
	assert.ErrorIs(t, service.Validate(), domain.ErrInvalidInput)

	_ = store.Unset("chart.progression")
	_ = store.Set("chart.house_systems", []string{"koch"})
	assert.ErrorIs(t, service.Validate(), domain.ErrInvalidInput)
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore()).Keys()
	assert.Contains(t, keys, "chart.house_systems")
	assert.Contains(t, keys, "observer.elevation")
	assert.Len(t, keys, 8)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	assert.Equal(t, domain.DefaultAppSettings(), NewSettingsService(memory.NewConfigStore()).GetDefaults())
}
