package domain

import (
	"fmt"
	"strings"
)

// Body identifies a tracked celestial body or derived point.
type Body string

// Supported roster, in chart order.
const (
	BodySun     Body = "sun"
	BodyMoon    Body = "moon"
	BodyMercury Body = "mercury"
	BodyVenus   Body = "venus"
	BodyMars    Body = "mars"
	BodyJupiter Body = "jupiter"
	BodySaturn  Body = "saturn"
	BodyUranus  Body = "uranus"
	BodyNeptune Body = "neptune"
	BodyPluto   Body = "pluto"

	// Minor bodies, positioned from osculating elements only.
	BodyChiron Body = "chiron"
	BodyCeres  Body = "ceres"
	BodyPallas Body = "pallas"
	BodyJuno   Body = "juno"
	BodyVesta  Body = "vesta"

	// Earth is never charted; it is the observer's heliocentric reference.
	BodyEarth Body = "earth"

	// Derived points.
	BodyNorthNode Body = "north_node"
	BodySouthNode Body = "south_node"
	BodyLilith    Body = "lilith"
)

// Roster returns the charted bodies in display order.
func Roster() []Body {
	return []Body{
		BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
		BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
		BodyChiron, BodyCeres, BodyPallas, BodyJuno, BodyVesta,
	}
}

// MinorBodies returns the bodies that only have element-based positions.
func MinorBodies() []Body {
	return []Body{BodyChiron, BodyCeres, BodyPallas, BodyJuno, BodyVesta}
}

// IsValid returns true if the body is part of the charted roster.
func (b Body) IsValid() bool {
	switch b {
	case BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
		BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
		BodyChiron, BodyCeres, BodyPallas, BodyJuno, BodyVesta:
		return true
	default:
		return false
	}
}

// IsMinor returns true for asteroids and centaurs.
func (b Body) IsMinor() bool {
	switch b {
	case BodyChiron, BodyCeres, BodyPallas, BodyJuno, BodyVesta:
		return true
	default:
		return false
	}
}

// IsDerived returns true for computed chart points.
func (b Body) IsDerived() bool {
	return b == BodyNorthNode || b == BodySouthNode || b == BodyLilith
}

// String returns the string representation.
func (b Body) String() string {
	return string(b)
}

// DisplayName returns a capitalised human-readable name.
func (b Body) DisplayName() string {
	switch b {
	case BodyNorthNode:
		return "North Node"
	case BodySouthNode:
		return "South Node"
	case "":
		return unknownDescription
	default:
		s := string(b)
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// Point returns the aspect endpoint identifier for this body.
func (b Body) Point() Point {
	return Point(b)
}

// Class returns the body's grouping used by transit policies.
func (b Body) Class() BodyClass {
	switch b {
	case BodySun, BodyMoon:
		return ClassLuminary
	case BodyMercury, BodyVenus, BodyMars:
		return ClassPersonal
	case BodyJupiter, BodySaturn:
		return ClassSocial
	case BodyUranus, BodyNeptune, BodyPluto:
		return ClassOuter
	case BodyChiron, BodyCeres, BodyPallas, BodyJuno, BodyVesta:
		return ClassMinor
	case BodyNorthNode, BodySouthNode, BodyLilith:
		return ClassPoint
	default:
		return ""
	}
}

// ParseBody parses a body name, accepting display names and underscores or spaces.
func ParseBody(s string) (Body, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "_")
	norm = strings.ReplaceAll(norm, "-", "_")
	b := Body(norm)
	if b.IsValid() || b.IsDerived() {
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBody, s)
}

// BodyClass groups bodies by orbital speed and astrological role.
type BodyClass string

// Body classes.
const (
	ClassLuminary BodyClass = "luminary"
	ClassPersonal BodyClass = "personal"
	ClassSocial   BodyClass = "social"
	ClassOuter    BodyClass = "outer"
	ClassMinor    BodyClass = "minor"
	ClassPoint    BodyClass = "point"
)

const unknownDescription = "Unknown"

// Point identifies an aspect endpoint: a body, a derived point, or a chart angle.
type Point string

// Chart angle points.
const (
	PointAscendant  Point = "ascendant"
	PointMidheaven  Point = "midheaven"
	PointDescendant Point = "descendant"
	PointImumCoeli  Point = "imum_coeli"
)

// IsAngle returns true for the four chart angles.
func (p Point) IsAngle() bool {
	switch p {
	case PointAscendant, PointMidheaven, PointDescendant, PointImumCoeli:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Point) String() string {
	return string(p)
}

// DisplayName returns a human-readable point name.
func (p Point) DisplayName() string {
	switch p {
	case PointAscendant:
		return "Ascendant"
	case PointMidheaven:
		return "Midheaven"
	case PointDescendant:
		return "Descendant"
	case PointImumCoeli:
		return "Imum Coeli"
	default:
		return Body(p).DisplayName()
	}
}
