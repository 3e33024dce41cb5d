package driven

import "github.com/custodia-labs/zenith/internal/core/domain"

// EphemerisSource supplies coefficient tables to the ephemeris handle.
// Both methods are called once, during initialisation.
type EphemerisSource interface {
	// LoadSeries returns periodic series keyed by body. Returns an error
	// wrapping domain.ErrEphemerisDataUnavailable when no tables exist.
	LoadSeries() (map[domain.Body]*domain.SeriesTable, error)

	// LoadElements returns element sets overriding the built-in catalogue.
	// Returns an error wrapping domain.ErrEphemerisDataUnavailable when no
	// override exists.
	LoadElements() (map[domain.Body]domain.OrbitalElements, error)
}
