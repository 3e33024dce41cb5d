package frames

import (
	"math"

	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/orbit"
)

// Geocentric subtracts Earth's heliocentric vector from the body's and
// returns the body as seen from Earth's centre.
func Geocentric(body, earth orbit.Heliocentric) orbit.Geocentric {
	bx, by, bz := body.Rectangular()
	ex, ey, ez := earth.Rectangular()
	return fromRectangular(bx-ex, by-ey, bz-ez)
}

func fromRectangular(x, y, z float64) orbit.Geocentric {
	d := math.Sqrt(x*x + y*y + z*z)
	if d == 0 {
		return orbit.Geocentric{}
	}
	return orbit.Geocentric{
		Longitude: angle.Normalize(angle.Atan2(y, x)),
		Latitude:  angle.Asin(z / d),
		Distance:  d,
	}
}
