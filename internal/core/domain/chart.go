package domain

import (
	"math"
	"time"
)

// NodeMode selects the lunar node formula.
type NodeMode string

// Node modes.
const (
	// NodeMean uses the mean regression formula.
	NodeMean NodeMode = "mean"
	// NodeTrue adds the leading periodic corrections to the mean node.
	NodeTrue NodeMode = "true"
)

// IsValid returns true if the node mode is recognised.
func (m NodeMode) IsValid() bool {
	return m == NodeMean || m == NodeTrue
}

// String returns the string representation.
func (m NodeMode) String() string {
	return string(m)
}

// ChartRequest is everything needed to assemble a chart.
type ChartRequest struct {
	// Birth is the civil instant the chart is cast for.
	Birth CivilTime

	// Location is the observer position.
	Location Location

	// HouseSystems lists the systems to compute; the first is primary.
	// Empty means Placidus.
	HouseSystems []HouseSystem

	// NodeMode selects mean or true nodes; empty means mean.
	NodeMode NodeMode
}

// PrimaryHouseSystem returns the first requested system, or Placidus.
func (r ChartRequest) PrimaryHouseSystem() HouseSystem {
	if len(r.HouseSystems) == 0 {
		return HouseSystemPlacidus
	}
	return r.HouseSystems[0]
}

// LunarPhase describes the Moon's elongation from the Sun.
type LunarPhase struct {
	// Angle is normalize(Moon - Sun), in [0,360).
	Angle float64

	// Name is the traditional eight-fold phase name.
	Name string

	// Illumination is the illuminated fraction of the disc, 0..1.
	Illumination float64
}

// NewLunarPhase builds a phase from its elongation angle.
func NewLunarPhase(angle float64) LunarPhase {
	angle = normalize(angle)
	names := [8]string{
		"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
		"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
	}
	idx := int(normalize(angle+22.5)/45) % 8
	return LunarPhase{
		Angle:        angle,
		Name:         names[idx],
		Illumination: (1 - math.Cos(angle*math.Pi/180)) / 2,
	}
}

// DerivedPoints are the classical points computed from Sun and Moon formulas.
type DerivedPoints struct {
	NorthNode BodyPosition
	SouthNode BodyPosition
	Lilith    BodyPosition

	// PartOfFortune is normalize(Ascendant + Moon - Sun).
	PartOfFortune float64
}

// NatalChart is an assembled, immutable chart record. A fresh value is
// produced for every request; nothing holds on to it afterwards.
type NatalChart struct {
	// Request echoes the inputs.
	Request ChartRequest

	// JulianDay is the UT Julian Day of the chart instant.
	JulianDay float64

	// UT is the chart instant in UTC.
	UT time.Time

	// GreenwichSiderealTime and LocalSiderealTime in degrees, [0,360).
	GreenwichSiderealTime float64
	LocalSiderealTime     float64

	// Obliquity is the true obliquity of the ecliptic in degrees.
	Obliquity float64

	// NutationLongitude is Δψ in degrees, applied to every apparent longitude.
	NutationLongitude float64

	// EquationOfTime in minutes (apparent minus mean solar time).
	EquationOfTime float64

	// Bodies holds the roster positions in Roster() order.
	Bodies []BodyPosition

	// Points holds nodes, Lilith and Part of Fortune.
	Points DerivedPoints

	// Angles is the chart's angular framework.
	Angles ChartAngles

	// Houses holds one division per requested system, primary first.
	Houses []HouseCusps

	// LunarPhase is the Sun-Moon elongation.
	LunarPhase LunarPhase

	// Aspects between bodies, derived points and angles.
	Aspects []Aspect
}

// Body returns the position of a roster body or derived point.
func (c *NatalChart) Body(b Body) (BodyPosition, bool) {
	switch b {
	case BodyNorthNode:
		return c.Points.NorthNode, true
	case BodySouthNode:
		return c.Points.SouthNode, true
	case BodyLilith:
		return c.Points.Lilith, true
	}
	for _, p := range c.Bodies {
		if p.Body == b {
			return p, true
		}
	}
	return BodyPosition{}, false
}

// PrimaryHouses returns the first house division, if any.
func (c *NatalChart) PrimaryHouses() (HouseCusps, bool) {
	if len(c.Houses) == 0 {
		return HouseCusps{}, false
	}
	return c.Houses[0], true
}

// Degraded returns true if any body or house division fell back.
func (c *NatalChart) Degraded() bool {
	for _, h := range c.Houses {
		if h.Degraded {
			return true
		}
	}
	for _, p := range c.Bodies {
		if p.Precision == PrecisionUnavailable {
			return true
		}
	}
	return false
}

// Chiron returns Chiron's position.
func (c *NatalChart) Chiron() (BodyPosition, bool) {
	return c.Body(BodyChiron)
}
