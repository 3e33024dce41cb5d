package domain

// SeriesTerm is one periodic term: A·cos(B + C·t).
type SeriesTerm struct {
	A float64
	B float64
	C float64
}

// SeriesTimeUnit is the time argument of a coefficient table.
type SeriesTimeUnit string

// Time units.
const (
	// TimeUnitCenturies uses Julian centuries since J2000.0.
	TimeUnitCenturies SeriesTimeUnit = "centuries"
	// TimeUnitMillennia uses Julian millennia since J2000.0 (VSOP87 convention).
	TimeUnitMillennia SeriesTimeUnit = "millennia"
)

// SeriesTable holds the periodic series for one body's heliocentric,
// ecliptic-of-date coordinates. Each coordinate is a slice indexed by power
// of time; each power holds its periodic terms.
type SeriesTable struct {
	Body Body

	// Scale multiplies every summed amplitude (e.g. 1e-8 for VSOP87 units).
	Scale float64

	// TimeUnit selects centuries or millennia.
	TimeUnit SeriesTimeUnit

	// Longitude and Latitude series are in radians after scaling; Radius in AU.
	Longitude [][]SeriesTerm
	Latitude  [][]SeriesTerm
	Radius    [][]SeriesTerm
}

// Empty returns true when the table has no longitude or radius terms.
func (t *SeriesTable) Empty() bool {
	return t == nil || len(t.Longitude) == 0 || len(t.Radius) == 0
}

// OrbitalElements are classical two-body elements with linear rates.
// Angles are in degrees referred to the J2000 ecliptic; rates are per Julian
// century from Epoch.
type OrbitalElements struct {
	Body Body

	// Epoch is the Julian Day the base values refer to.
	Epoch float64

	SemiMajorAxis     float64
	SemiMajorAxisRate float64

	Eccentricity     float64
	EccentricityRate float64

	Inclination     float64
	InclinationRate float64

	// MeanLongitude L = ϖ + M.
	MeanLongitude     float64
	MeanLongitudeRate float64

	// PerihelionLongitude ϖ = Ω + ω.
	PerihelionLongitude     float64
	PerihelionLongitudeRate float64

	AscendingNode     float64
	AscendingNodeRate float64
}
