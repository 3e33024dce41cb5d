package domain

import (
	"fmt"
	"math"
	"strings"
)

// ChartAngles holds the four angles of a chart, in degrees.
// Descendant and ImumCoeli are always opposite Ascendant and Midheaven;
// build values with NewChartAngles to keep that invariant.
type ChartAngles struct {
	Ascendant  float64
	Midheaven  float64
	Descendant float64
	ImumCoeli  float64
}

// NewChartAngles derives the opposite angles from Ascendant and Midheaven.
func NewChartAngles(asc, mc float64) ChartAngles {
	asc = normalize(asc)
	mc = normalize(mc)
	return ChartAngles{
		Ascendant:  asc,
		Midheaven:  mc,
		Descendant: normalize(asc + 180),
		ImumCoeli:  normalize(mc + 180),
	}
}

// Shift rotates every angle by delta degrees.
func (a ChartAngles) Shift(delta float64) ChartAngles {
	return NewChartAngles(a.Ascendant+delta, a.Midheaven+delta)
}

// Of returns the longitude of an angle point.
func (a ChartAngles) Of(p Point) (float64, bool) {
	switch p {
	case PointAscendant:
		return a.Ascendant, true
	case PointMidheaven:
		return a.Midheaven, true
	case PointDescendant:
		return a.Descendant, true
	case PointImumCoeli:
		return a.ImumCoeli, true
	default:
		return 0, false
	}
}

// HouseSystem selects a house division method.
type HouseSystem string

// Supported house systems.
const (
	HouseSystemPlacidus  HouseSystem = "placidus"
	HouseSystemEqual     HouseSystem = "equal"
	HouseSystemWholeSign HouseSystem = "whole_sign"
)

// HouseSystems returns all supported systems.
func HouseSystems() []HouseSystem {
	return []HouseSystem{HouseSystemPlacidus, HouseSystemEqual, HouseSystemWholeSign}
}

// IsValid returns true if the house system is recognised.
func (h HouseSystem) IsValid() bool {
	switch h {
	case HouseSystemPlacidus, HouseSystemEqual, HouseSystemWholeSign:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (h HouseSystem) String() string {
	return string(h)
}

// Description returns a human-readable description of the system.
func (h HouseSystem) Description() string {
	switch h {
	case HouseSystemPlacidus:
		return "Placidus (time-based semi-arc division)"
	case HouseSystemEqual:
		return "Equal (30° from the Ascendant)"
	case HouseSystemWholeSign:
		return "Whole Sign (one sign per house)"
	default:
		return unknownDescription
	}
}

// ParseHouseSystem parses a system name; "whole-sign" and "wholesign" are accepted.
func ParseHouseSystem(s string) (HouseSystem, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch norm {
	case "wholesign", "whole-sign", "whole sign":
		norm = string(HouseSystemWholeSign)
	}
	h := HouseSystem(norm)
	if !h.IsValid() {
		return "", fmt.Errorf("%w: unknown house system %q", ErrInvalidInput, s)
	}
	return h, nil
}

// HouseCusps is one house division of a chart.
type HouseCusps struct {
	// Requested is the system the caller asked for.
	Requested HouseSystem

	// System is the system actually used; differs from Requested on fallback.
	System HouseSystem

	// Cusps holds the 12 cusp longitudes; Cusps[0] is house 1.
	Cusps [12]float64

	// Degraded is set when System is a fallback for Requested.
	Degraded bool

	// Reason explains the fallback.
	Reason string
}

// Cusp returns the cusp of a 1-based house number.
func (h HouseCusps) Cusp(house int) float64 {
	return h.Cusps[(house-1+120)%12]
}

// HouseOf returns the 1-based house containing a longitude.
// Arcs run from a cusp (inclusive) to the next cusp (exclusive) and may wrap through 0°.
func (h HouseCusps) HouseOf(longitude float64) int {
	longitude = normalize(longitude)
	for i := 0; i < 12; i++ {
		start := h.Cusps[i]
		end := h.Cusps[(i+1)%12]
		width := normalize(end - start)
		if normalize(longitude-start) < width {
			return i + 1
		}
	}
	return 1
}

// normalize mirrors angle.Normalize; domain may not import it.
func normalize(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}
