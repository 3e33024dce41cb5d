package aspects

import (
	"math"
	"sort"

	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// Point is a named longitude taking part in aspect detection.
type Point struct {
	ID        domain.Point
	Longitude float64
}

// Separation returns the shorter arc between two longitudes, in [0,180].
func Separation(a, b float64) float64 {
	return angle.Separation(a, b)
}

// Match returns the tightest aspect between two longitudes. The bool is
// false when no aspect in the table is within its orb. Ties go to the
// earlier table entry.
func Match(a, b float64, table Table) (Definition, float64, bool) {
	sep := Separation(a, b)
	best := -1
	bestDev := math.Inf(1)
	for i, d := range table {
		dev := math.Abs(sep - d.Type.Angle())
		if dev <= d.Orb && dev < bestDev {
			best, bestDev = i, dev
		}
	}
	if best < 0 {
		return Definition{}, 0, false
	}
	return table[best], bestDev, true
}

// Between returns the aspect between two points, if any.
func Between(a, b Point, table Table) (domain.Aspect, bool) {
	def, dev, ok := Match(a.Longitude, b.Longitude, table)
	if !ok {
		return domain.Aspect{}, false
	}
	exact := 1.0
	if def.Orb > 0 {
		exact = 1 - dev/def.Orb
	}
	return domain.Aspect{
		A:          a.ID,
		B:          b.ID,
		Type:       def.Type,
		Separation: Separation(a.Longitude, b.Longitude),
		Orb:        dev,
		Exactness:  exact,
	}, true
}

// Detect matches every unordered pair of points. Results are ordered by orb,
// tightest first, then by input order.
func Detect(points []Point, table Table) []domain.Aspect {
	var out []domain.Aspect
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].ID == points[j].ID {
				continue
			}
			if a, ok := Between(points[i], points[j], table); ok {
				out = append(out, a)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orb < out[j].Orb })
	return out
}
