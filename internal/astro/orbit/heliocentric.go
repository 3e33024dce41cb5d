package orbit

import "github.com/custodia-labs/zenith/internal/astro/angle"

// Heliocentric is a spherical ecliptic position of date.
type Heliocentric struct {
	// Longitude in degrees, [0,360).
	Longitude float64
	// Latitude in degrees, [-90,90].
	Latitude float64
	// Radius in AU.
	Radius float64
}

// Rectangular returns the ecliptic rectangular coordinates in AU.
func (h Heliocentric) Rectangular() (x, y, z float64) {
	cb := angle.Cos(h.Latitude)
	x = h.Radius * cb * angle.Cos(h.Longitude)
	y = h.Radius * cb * angle.Sin(h.Longitude)
	z = h.Radius * angle.Sin(h.Latitude)
	return x, y, z
}
