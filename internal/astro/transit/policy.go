package transit

import (
	"time"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// Bodies returns the transiting roster: Sun through Pluto plus Chiron.
func Bodies() []domain.Body {
	return []domain.Body{
		domain.BodySun, domain.BodyMoon, domain.BodyMercury, domain.BodyVenus, domain.BodyMars,
		domain.BodyJupiter, domain.BodySaturn, domain.BodyUranus, domain.BodyNeptune, domain.BodyPluto,
		domain.BodyChiron,
	}
}

// AngleOrb is the orb for the observer's current Ascendant and Midheaven,
// matching the Moon's since both move faster than any body.
const AngleOrb = 3.0

// AngleHalfWindow is the half-width, in days, of an aspect from a current
// angle. The angles cross about a degree every four minutes.
const AngleHalfWindow = 1.0 / 48

// Orb returns the transit orb for a transiting body.
func Orb(b domain.Body) float64 {
	switch b {
	case domain.BodySun, domain.BodyMoon:
		return 3
	case domain.BodyMercury, domain.BodyVenus, domain.BodyMars:
		return 2
	default:
		return 2.5
	}
}

// Class groups a transiting body by how long its aspects last.
func Class(b domain.Body) domain.TransitClass {
	switch b {
	case domain.BodyMoon:
		return domain.TransitShortTerm
	case domain.BodyUranus, domain.BodyNeptune, domain.BodyPluto, domain.BodyChiron:
		return domain.TransitLongTerm
	default:
		return domain.TransitRegular
	}
}

// HalfWindow returns the half-width of the effective window, in days.
func HalfWindow(b domain.Body) float64 {
	switch b {
	case domain.BodyMoon:
		return 0.25
	case domain.BodySun, domain.BodyMercury:
		return 1
	case domain.BodyVenus:
		return 1.5
	case domain.BodyMars:
		return 3
	case domain.BodyJupiter:
		return 10
	case domain.BodySaturn:
		return 20
	default:
		return 45
	}
}

// Window returns the effective window centred on at.
func Window(b domain.Body, at time.Time) (start, end time.Time) {
	return window(HalfWindow(b), at)
}

func window(days float64, at time.Time) (start, end time.Time) {
	half := time.Duration(days * float64(24*time.Hour))
	return at.Add(-half), at.Add(half)
}
