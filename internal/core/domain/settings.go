package domain

// ChartSettings holds chart defaults applied when a request leaves them empty.
type ChartSettings struct {
	// HouseSystems lists the systems to compute; the first is primary.
	HouseSystems []HouseSystem

	// Progression is the default progression method.
	Progression ProgressionMethod

	// NodeMode selects mean or true lunar nodes.
	NodeMode NodeMode
}

// EphemerisSettings locates optional coefficient data.
type EphemerisSettings struct {
	// SeriesDir holds per-body series tables (<body>.toml). Empty means every
	// planet uses simplified orbital elements.
	SeriesDir string

	// ElementsFile optionally overrides the built-in element catalogue.
	ElementsFile string
}

// AppSettings aggregates all application settings.
type AppSettings struct {
	Chart     ChartSettings
	Ephemeris EphemerisSettings

	// Observer is the default location for transit snapshots. Nil keeps
	// transits geocentric.
	Observer *Location
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Chart: ChartSettings{
			HouseSystems: []HouseSystem{HouseSystemPlacidus},
			Progression:  ProgressionSolarArc,
			NodeMode:     NodeMean,
		},
	}
}

// Validate checks that every enum-valued setting is recognised.
func (s *AppSettings) Validate() error {
	if len(s.Chart.HouseSystems) == 0 {
		return ErrInvalidInput
	}
	for _, h := range s.Chart.HouseSystems {
		if !h.IsValid() {
			return ErrInvalidInput
		}
	}
	if !s.Chart.Progression.IsValid() || !s.Chart.NodeMode.IsValid() {
		return ErrInvalidInput
	}
	if s.Observer != nil {
		return s.Observer.Validate()
	}
	return nil
}
