package domain

import (
	"fmt"
	"strings"
	"time"
)

// ProgressionMethod selects how a progressed chart is derived.
type ProgressionMethod string

// Progression methods.
const (
	// ProgressionSolarArc keeps the natal angles and advances them by the
	// Sun's travel between the natal and progressed instants.
	ProgressionSolarArc ProgressionMethod = "solar_arc"

	// ProgressionNaiveDate recomputes everything, angles included, for the
	// progressed instant at the birth location.
	ProgressionNaiveDate ProgressionMethod = "naive_date"
)

// IsValid returns true if the method is recognised.
func (m ProgressionMethod) IsValid() bool {
	return m == ProgressionSolarArc || m == ProgressionNaiveDate
}

// String returns the string representation.
func (m ProgressionMethod) String() string {
	return string(m)
}

// Description returns a human-readable description of the method.
func (m ProgressionMethod) Description() string {
	switch m {
	case ProgressionSolarArc:
		return "Solar arc (natal angles advanced by the Sun's arc)"
	case ProgressionNaiveDate:
		return "Naive date (full recomputation at the progressed date)"
	default:
		return unknownDescription
	}
}

// ParseProgressionMethod parses a method name; empty selects solar arc.
func ParseProgressionMethod(s string) (ProgressionMethod, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if norm == "" {
		return ProgressionSolarArc, nil
	}
	m := ProgressionMethod(norm)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: unknown progression method %q", ErrInvalidInput, s)
	}
	return m, nil
}

// ProgressedChart is a natal chart advanced to a target date.
type ProgressedChart struct {
	// Method used to derive the chart.
	Method ProgressionMethod

	// Target is the real-world date the progression is cast for.
	Target time.Time

	// ProgressedJulianDay is the symbolic instant (one day per year of life).
	ProgressedJulianDay float64

	// SolarArc is the Sun's longitude travel from natal to progressed instant.
	SolarArc float64

	// Chart holds the progressed positions, angles and houses.
	Chart NatalChart
}
