package orbit

import (
	"math"

	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

const (
	// keplerIterations is fixed; convergence is adequate below e ≈ 0.3.
	keplerIterations = 5

	// approximateEccentricity is where five Newton steps stop being reliable.
	approximateEccentricity = 0.3

	// precessionRate is general precession in longitude, degrees per century.
	precessionRate = 1.3969713

	// gaussianDailyMotion is the mean motion in degrees per day at a = 1 AU.
	gaussianDailyMotion = 0.9856076686
)

// Elements wraps orbital elements with the two-body solver.
type Elements struct {
	domain.OrbitalElements
}

// NewElements returns a solver for the given elements.
func NewElements(e domain.OrbitalElements) Elements {
	return Elements{OrbitalElements: e}
}

// Approximate reports whether the eccentricity is beyond the range where the
// fixed-iteration solver is trusted.
func (e Elements) Approximate() bool {
	return e.Eccentricity >= approximateEccentricity
}

// At returns the elements evaluated at jd.
func (e Elements) At(jd float64) domain.OrbitalElements {
	epoch := e.Epoch
	if epoch == 0 {
		epoch = calendar.J2000
	}
	t := (jd - epoch) / calendar.DaysPerCentury
	return domain.OrbitalElements{
		Body:                e.Body,
		Epoch:               jd,
		SemiMajorAxis:       e.SemiMajorAxis + e.SemiMajorAxisRate*t,
		Eccentricity:        e.Eccentricity + e.EccentricityRate*t,
		Inclination:         e.Inclination + e.InclinationRate*t,
		MeanLongitude:       e.MeanLongitude + e.MeanLongitudeRate*t,
		PerihelionLongitude: e.PerihelionLongitude + e.PerihelionLongitudeRate*t,
		AscendingNode:       e.AscendingNode + e.AscendingNodeRate*t,
	}
}

// Position returns the heliocentric ecliptic position of date at jd.
func (e Elements) Position(jd float64) Heliocentric {
	el := e.At(jd)

	ecc := math.Max(0, math.Min(el.Eccentricity, 0.99))
	m := angle.Normalize(el.MeanLongitude - el.PerihelionLongitude)
	omega := el.PerihelionLongitude - el.AscendingNode

	ea := SolveKepler(m*angle.DegToRad, ecc)
	nu := 2 * math.Atan2(math.Sqrt(1+ecc)*math.Sin(ea/2), math.Sqrt(1-ecc)*math.Cos(ea/2))
	r := el.SemiMajorAxis * (1 - ecc*math.Cos(ea))

	u := omega + nu*angle.RadToDeg
	node := el.AscendingNode
	inc := el.Inclination

	x := r * (angle.Cos(node)*angle.Cos(u) - angle.Sin(node)*angle.Sin(u)*angle.Cos(inc))
	y := r * (angle.Sin(node)*angle.Cos(u) + angle.Cos(node)*angle.Sin(u)*angle.Cos(inc))
	z := r * angle.Sin(u) * angle.Sin(inc)

	lon := angle.Atan2(y, x) + precessionRate*calendar.Centuries(jd)
	return Heliocentric{
		Longitude: angle.Normalize(lon),
		Latitude:  angle.Asin(z / r),
		Radius:    r,
	}
}

// SolveKepler solves M = E − e·sin E for E (radians) with a fixed number of
// Newton steps.
func SolveKepler(m, e float64) float64 {
	ea := m + e*math.Sin(m)
	for i := 0; i < keplerIterations; i++ {
		ea -= (ea - e*math.Sin(ea) - m) / (1 - e*math.Cos(ea))
	}
	return ea
}

// MeanMotion returns the two-body mean motion in degrees per Julian century
// for a semi-major axis in AU.
func MeanMotion(a float64) float64 {
	return gaussianDailyMotion / math.Pow(a, 1.5) * calendar.DaysPerCentury
}
