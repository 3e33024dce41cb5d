package driving

import "github.com/custodia-labs/zenith/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses and stores one setting by key.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// SetHouseSystems updates the house systems; the first is primary.
	SetHouseSystems(systems []domain.HouseSystem) error

	// SetProgression updates the default progression method.
	SetProgression(method domain.ProgressionMethod) error

	// SetNodeMode selects mean or true lunar nodes.
	SetNodeMode(mode domain.NodeMode) error

	// SetObserver sets or clears the default transit observer.
	SetObserver(loc *domain.Location) error

	// Validate checks the stored settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
