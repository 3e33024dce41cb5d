package frames

import (
	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
)

// Nutation returns nutation in longitude and in obliquity, in degrees, from
// the low-order series in the lunar node and the Sun's and Moon's mean
// longitudes. Accuracy is about half an arcsecond.
func Nutation(jd float64) (dpsi, deps float64) {
	t := calendar.Centuries(jd)
	omega := 125.04452 - 1934.136261*t
	ls := 280.4665 + 36000.7698*t
	lm := 218.3165 + 481267.8813*t

	dpsi = -17.20*angle.Sin(omega) - 1.32*angle.Sin(2*ls) - 0.23*angle.Sin(2*lm) + 0.21*angle.Sin(2*omega)
	deps = 9.20*angle.Cos(omega) + 0.57*angle.Cos(2*ls) + 0.10*angle.Cos(2*lm) - 0.09*angle.Cos(2*omega)
	return angle.Arcseconds(dpsi), angle.Arcseconds(deps)
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees.
func MeanObliquity(jd float64) float64 {
	t := calendar.Centuries(jd)
	sec := 21.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t
	return 23 + 26.0/60 + angle.Arcseconds(sec)
}

// TrueObliquity returns the mean obliquity corrected for nutation.
func TrueObliquity(jd float64) float64 {
	_, deps := Nutation(jd)
	return MeanObliquity(jd) + deps
}
