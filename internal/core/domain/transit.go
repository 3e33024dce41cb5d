package domain

import "time"

// TransitClass groups transit aspects by how long they stay in effect.
type TransitClass string

// Transit classes.
const (
	TransitShortTerm TransitClass = "short_term"
	TransitRegular   TransitClass = "regular"
	TransitLongTerm  TransitClass = "long_term"
)

// String returns the string representation.
func (c TransitClass) String() string {
	return string(c)
}

// TransitOptions tunes a transit computation.
type TransitOptions struct {
	// Now overrides the current instant; nil means the caller's clock.
	Now *time.Time

	// Observer enables the topocentric Moon and current angles. Nil keeps
	// every position geocentric.
	Observer *Location
}

// TransitAspect is a transiting body, or a current angle, aspecting a natal point.
type TransitAspect struct {
	// Transiting is the moving body, or the observer's current Ascendant or
	// Midheaven.
	Transiting Point

	// Natal is the natal body or angle being aspected.
	Natal Point

	Type       AspectType
	Separation float64
	Orb        float64

	// Applying is approximated from the transiting body's direction only:
	// direct motion counts as applying. It is not a velocity comparison.
	// Current angles always count as applying.
	Applying bool

	// Class groups the aspect for display.
	Class TransitClass

	// WindowStart and WindowEnd bracket an estimated effective period centred
	// on the snapshot instant. They are not computed ingress/egress times.
	WindowStart time.Time
	WindowEnd   time.Time
}

// TransitSnapshot is a short-lived record of "now" positions compared with
// a natal chart. It is never stored.
type TransitSnapshot struct {
	// At is the snapshot instant (UTC).
	At time.Time

	// JulianDay of At.
	JulianDay float64

	// Bodies are the transiting positions.
	Bodies []BodyPosition

	// Angles are the current angles for the observer; nil without an observer.
	Angles *ChartAngles

	// Topocentric is set when the Moon was corrected for parallax.
	Topocentric bool

	// Aspects to natal points, tightest first.
	Aspects []TransitAspect
}

// ByClass returns the aspects of one class, keeping order.
func (s *TransitSnapshot) ByClass(class TransitClass) []TransitAspect {
	var out []TransitAspect
	for _, a := range s.Aspects {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out
}
