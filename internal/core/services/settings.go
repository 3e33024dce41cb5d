package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/zenith/internal/core/domain"
	"github.com/custodia-labs/zenith/internal/core/ports/driven"
	"github.com/custodia-labs/zenith/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyHouseSystems      = "chart.house_systems"
	keyProgression       = "chart.progression"
	keyNodeMode          = "chart.node"
	keySeriesDir         = "ephemeris.series_dir"
	keyElementsFile      = "ephemeris.elements_file"
	keyObserverLatitude  = "observer.latitude"
	keyObserverLongitude = "observer.longitude"
	keyObserverElevation = "observer.elevation"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Unrecognised stored values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Chart: domain.ChartSettings{
			HouseSystems: s.getHouseSystems(defaults.Chart.HouseSystems),
			Progression:  s.getProgression(defaults.Chart.Progression),
			NodeMode:     s.getNodeMode(defaults.Chart.NodeMode),
		},
		Ephemeris: domain.EphemerisSettings{
			SeriesDir:    s.configStore.GetString(keySeriesDir),
			ElementsFile: s.configStore.GetString(keyElementsFile),
		},
		Observer: s.getObserver(),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	systems := make([]string, len(settings.Chart.HouseSystems))
	for i, h := range settings.Chart.HouseSystems {
		systems[i] = h.String()
	}
	if err := s.configStore.Set(keyHouseSystems, systems); err != nil {
		return fmt.Errorf("save house systems: %w", err)
	}
	if err := s.configStore.Set(keyProgression, settings.Chart.Progression.String()); err != nil {
		return fmt.Errorf("save progression: %w", err)
	}
	if err := s.configStore.Set(keyNodeMode, settings.Chart.NodeMode.String()); err != nil {
		return fmt.Errorf("save node mode: %w", err)
	}
	if err := s.configStore.Set(keySeriesDir, settings.Ephemeris.SeriesDir); err != nil {
		return fmt.Errorf("save series dir: %w", err)
	}
	if err := s.configStore.Set(keyElementsFile, settings.Ephemeris.ElementsFile); err != nil {
		return fmt.Errorf("save elements file: %w", err)
	}
	return s.saveObserver(settings.Observer)
}

// Set parses and stores one setting by key. Only that key is written.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyHouseSystems:
		var systems []string
		for _, part := range strings.Split(value, ",") {
			h, err := domain.ParseHouseSystem(part)
			if err != nil {
				return err
			}
			systems = append(systems, h.String())
		}
		return s.configStore.Set(key, systems)
	case keyProgression:
		m, err := domain.ParseProgressionMethod(value)
		if err != nil {
			return err
		}
		return s.configStore.Set(key, m.String())
	case keyNodeMode:
		mode := domain.NodeMode(strings.ToLower(strings.TrimSpace(value)))
		if !mode.IsValid() {
			return fmt.Errorf("%w: unknown node mode %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, mode.String())
	case keySeriesDir, keyElementsFile:
		return s.configStore.Set(key, strings.TrimSpace(value))
	case keyObserverLatitude, keyObserverLongitude, keyObserverElevation:
		return s.setObserverField(key, value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{
		keyHouseSystems, keyProgression, keyNodeMode,
		keySeriesDir, keyElementsFile,
		keyObserverLatitude, keyObserverLongitude, keyObserverElevation,
	}
}

// SetHouseSystems updates the house systems; the first is primary.
func (s *SettingsService) SetHouseSystems(systems []domain.HouseSystem) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Chart.HouseSystems = systems
	return s.Save(settings)
}

// SetProgression updates the default progression method.
func (s *SettingsService) SetProgression(method domain.ProgressionMethod) error {
	if !method.IsValid() {
		return fmt.Errorf("%w: invalid progression method: %s", domain.ErrInvalidInput, method)
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Chart.Progression = method
	return s.Save(settings)
}

// SetNodeMode selects mean or true lunar nodes.
func (s *SettingsService) SetNodeMode(mode domain.NodeMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: invalid node mode: %s", domain.ErrInvalidInput, mode)
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Chart.NodeMode = mode
	return s.Save(settings)
}

// SetObserver sets or clears the default transit observer.
func (s *SettingsService) SetObserver(loc *domain.Location) error {
	if loc != nil {
		if err := loc.Validate(); err != nil {
			return err
		}
	}
	return s.saveObserver(loc)
}

// Validate checks the stored settings, including values Get would replace
// with defaults.
func (s *SettingsService) Validate() error {
	for _, v := range s.configStore.GetStringSlice(keyHouseSystems) {
		if _, err := domain.ParseHouseSystem(v); err != nil {
			return err
		}
	}
	if v := s.configStore.GetString(keyProgression); v != "" {
		if _, err := domain.ParseProgressionMethod(v); err != nil {
			return err
		}
	}
	if v := s.configStore.GetString(keyNodeMode); v != "" && !domain.NodeMode(v).IsValid() {
		return fmt.Errorf("%w: invalid node mode: %s", domain.ErrInvalidInput, v)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getHouseSystems(defaultVal []domain.HouseSystem) []domain.HouseSystem {
	vals := s.configStore.GetStringSlice(keyHouseSystems)
	if len(vals) == 0 {
		return defaultVal
	}
	systems := make([]domain.HouseSystem, 0, len(vals))
	for _, v := range vals {
		h, err := domain.ParseHouseSystem(v)
		if err != nil {
			return defaultVal
		}
		systems = append(systems, h)
	}
	return systems
}

func (s *SettingsService) getProgression(defaultVal domain.ProgressionMethod) domain.ProgressionMethod {
	val := s.configStore.GetString(keyProgression)
	if val == "" {
		return defaultVal
	}
	m, err := domain.ParseProgressionMethod(val)
	if err != nil {
		return defaultVal
	}
	return m
}

func (s *SettingsService) getNodeMode(defaultVal domain.NodeMode) domain.NodeMode {
	mode := domain.NodeMode(s.configStore.GetString(keyNodeMode))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

func (s *SettingsService) getObserver() *domain.Location {
	lat, okLat := s.configStore.GetFloat(keyObserverLatitude)
	lon, okLon := s.configStore.GetFloat(keyObserverLongitude)
	if !okLat || !okLon {
		return nil
	}
	elev, _ := s.configStore.GetFloat(keyObserverElevation)
	loc := &domain.Location{Latitude: lat, Longitude: lon, Elevation: elev}
	if loc.Validate() != nil {
		return nil
	}
	return loc
}

func (s *SettingsService) saveObserver(loc *domain.Location) error {
	if loc == nil {
		for _, key := range []string{keyObserverLatitude, keyObserverLongitude, keyObserverElevation} {
			if err := s.configStore.Unset(key); err != nil {
				return fmt.Errorf("clear %s: %w", key, err)
			}
		}
		return nil
	}
	if err := s.configStore.Set(keyObserverLatitude, loc.Latitude); err != nil {
		return fmt.Errorf("save observer latitude: %w", err)
	}
	if err := s.configStore.Set(keyObserverLongitude, loc.Longitude); err != nil {
		return fmt.Errorf("save observer longitude: %w", err)
	}
	if err := s.configStore.Set(keyObserverElevation, loc.Elevation); err != nil {
		return fmt.Errorf("save observer elevation: %w", err)
	}
	return nil
}

// setObserverField stores one observer coordinate. A partially configured
// observer is allowed; it takes effect once both coordinates are set.
func (s *SettingsService) setObserverField(key, value string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("%w: %s must be a number: %q", domain.ErrInvalidInput, key, value)
	}
	var probe domain.Location
	switch key {
	case keyObserverLatitude:
		probe.Latitude = v
	case keyObserverLongitude:
		probe.Longitude = v
	case keyObserverElevation:
		probe.Elevation = v
	}
	if err := probe.Validate(); err != nil {
		return err
	}
	return s.configStore.Set(key, v)
}
