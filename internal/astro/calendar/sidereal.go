package calendar

import "github.com/custodia-labs/zenith/internal/astro/angle"

// GMST returns Greenwich Mean Sidereal Time in degrees, [0,360).
func GMST(jd float64) float64 {
	t := Centuries(jd)
	theta := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return angle.Normalize(theta)
}

// LST returns Local Sidereal Time in degrees for a longitude (east positive).
func LST(jd, longitude float64) float64 {
	return angle.Normalize(GMST(jd) + longitude)
}

// ApparentSidereal adds the equation of the equinoxes (Δψ·cos ε) to a mean
// sidereal time. Both inputs in degrees.
func ApparentSidereal(mean, nutationLongitude, obliquity float64) float64 {
	return angle.Normalize(mean + nutationLongitude*angle.Cos(obliquity))
}
