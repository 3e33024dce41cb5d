package orbit

import (
	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
)

// SunMeanLongitude returns the Sun's geometric mean longitude, mean equinox
// of date.
func SunMeanLongitude(jd float64) float64 {
	t := calendar.Centuries(jd)
	return angle.Normalize(280.46646 + 36000.76983*t + 0.0003032*t*t)
}

// SunMeanAnomaly returns the Sun's mean anomaly.
func SunMeanAnomaly(jd float64) float64 {
	t := calendar.Centuries(jd)
	return angle.Normalize(357.52911 + 35999.05029*t - 0.0001537*t*t)
}

// EarthEccentricity returns the eccentricity of Earth's orbit.
func EarthEccentricity(jd float64) float64 {
	t := calendar.Centuries(jd)
	return 0.016708634 - 0.000042037*t - 0.0000001267*t*t
}

// SunEquationOfCentre returns the difference between the Sun's true and mean
// longitude.
func SunEquationOfCentre(jd float64) float64 {
	t := calendar.Centuries(jd)
	m := SunMeanAnomaly(jd)
	return (1.914602-0.004817*t-0.000014*t*t)*angle.Sin(m) +
		(0.019993-0.000101*t)*angle.Sin(2*m) +
		0.000289*angle.Sin(3*m)
}

// Sun returns the geometric geocentric Sun from the mean longitude and
// equation of centre. Latitude is zero.
func Sun(jd float64) Geocentric {
	c := SunEquationOfCentre(jd)
	e := EarthEccentricity(jd)
	nu := SunMeanAnomaly(jd) + c
	r := 1.000001018 * (1 - e*e) / (1 + e*angle.Cos(nu))
	return Geocentric{
		Longitude: angle.Normalize(SunMeanLongitude(jd) + c),
		Distance:  r,
	}
}

// EarthFromSun returns Earth's heliocentric position implied by the solar
// theory. It is the last rung when neither series nor elements are loaded.
func EarthFromSun(jd float64) Heliocentric {
	s := Sun(jd)
	return Heliocentric{Longitude: angle.Normalize(s.Longitude + 180), Radius: s.Distance}
}
