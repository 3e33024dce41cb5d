package frames

import (
	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/orbit"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

const (
	// earthEquatorialRadius in kilometres.
	earthEquatorialRadius = 6378.14
	// earthFlattening is b/a for the reference ellipsoid.
	earthFlattening = 0.99664719
)

// Topocentric shifts a geocentric position (distance in AU) to the observer's
// location. lst is the local sidereal time in degrees. Only the Moon is close
// enough for the shift to matter.
func Topocentric(pos orbit.Geocentric, lst float64, observer domain.Location, obliquity float64) orbit.Geocentric {
	if pos.Distance <= 0 {
		return pos
	}
	ra, dec := EclipticToEquatorial(pos.Longitude, pos.Latitude, obliquity)

	u := angle.Atan2(earthFlattening*angle.Sin(observer.Latitude), angle.Cos(observer.Latitude))
	h := observer.Elevation / (earthEquatorialRadius * 1000)
	rhoSin := earthFlattening*angle.Sin(u) + h*angle.Sin(observer.Latitude)
	rhoCos := angle.Cos(u) + h*angle.Cos(observer.Latitude)

	radiusAU := earthEquatorialRadius / orbit.KilometresPerAU
	ox := radiusAU * rhoCos * angle.Cos(lst)
	oy := radiusAU * rhoCos * angle.Sin(lst)
	oz := radiusAU * rhoSin

	mx := pos.Distance * angle.Cos(dec) * angle.Cos(ra)
	my := pos.Distance * angle.Cos(dec) * angle.Sin(ra)
	mz := pos.Distance * angle.Sin(dec)

	eq := fromRectangular(mx-ox, my-oy, mz-oz)
	lon, lat := EquatorialToEcliptic(eq.Longitude, eq.Latitude, obliquity)
	return orbit.Geocentric{Longitude: lon, Latitude: lat, Distance: eq.Distance}
}
