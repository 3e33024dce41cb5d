package frames

import (
	"github.com/custodia-labs/zenith/internal/astro/angle"
)

// EclipticToEquatorial converts ecliptic longitude/latitude to right
// ascension/declination for the given obliquity. All values are degrees.
func EclipticToEquatorial(lon, lat, obliquity float64) (ra, dec float64) {
	se, ce := angle.Sin(obliquity), angle.Cos(obliquity)
	sl := angle.Sin(lon)
	ra = angle.Atan2(sl*ce-angle.Tan(lat)*se, angle.Cos(lon))
	dec = angle.Asin(angle.Sin(lat)*ce + angle.Cos(lat)*se*sl)
	return angle.Normalize(ra), dec
}

// EquatorialToEcliptic is the inverse of EclipticToEquatorial.
func EquatorialToEcliptic(ra, dec, obliquity float64) (lon, lat float64) {
	se, ce := angle.Sin(obliquity), angle.Cos(obliquity)
	sa := angle.Sin(ra)
	lon = angle.Atan2(sa*ce+angle.Tan(dec)*se, angle.Cos(ra))
	lat = angle.Asin(angle.Sin(dec)*ce - angle.Cos(dec)*se*sa)
	return angle.Normalize(lon), lat
}
