package frames

import (
	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
	"github.com/custodia-labs/zenith/internal/astro/orbit"
)

// EquationOfTime returns apparent minus mean solar time in minutes, from the
// Sun's mean longitude and its apparent right ascension.
func EquationOfTime(jd float64) float64 {
	t := calendar.Centuries(jd)
	omega := 125.04 - 1934.136*t
	dpsi, _ := Nutation(jd)
	eps := TrueObliquity(jd)

	sun := orbit.Sun(jd)
	lambda := sun.Longitude - 0.00569 - 0.00478*angle.Sin(omega)
	ra, _ := EclipticToEquatorial(lambda, 0, eps+0.00256*angle.Cos(omega))

	e := orbit.SunMeanLongitude(jd) - 0.0057183 - ra + dpsi*angle.Cos(eps)
	return angle.Signed(e) * 4
}
