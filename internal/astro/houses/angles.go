package houses

import (
	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// Angles returns the Ascendant, Midheaven, Descendant and Imum Coeli for a
// local sidereal time, geographic latitude and obliquity, all in degrees.
//
// The two-argument arctangent resolves the quadrant directly, which places
// the Ascendant on the eastern horizon for every sidereal time.
func Angles(lst, latitude, obliquity float64) domain.ChartAngles {
	return domain.NewChartAngles(Ascendant(lst, latitude, obliquity), Midheaven(lst, obliquity))
}

// Ascendant returns the ecliptic longitude rising on the eastern horizon.
func Ascendant(lst, latitude, obliquity float64) float64 {
	y := angle.Cos(lst)
	x := -(angle.Sin(obliquity)*angle.Tan(latitude) + angle.Cos(obliquity)*angle.Sin(lst))
	return angle.Normalize(angle.Atan2(y, x))
}

// Midheaven returns the culminating ecliptic longitude.
func Midheaven(lst, obliquity float64) float64 {
	return angle.Normalize(angle.Atan2(angle.Sin(lst), angle.Cos(lst)*angle.Cos(obliquity)))
}
