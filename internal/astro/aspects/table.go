package aspects

import "github.com/custodia-labs/zenith/internal/core/domain"

// Definition pairs an aspect with its maximum orb in degrees.
type Definition struct {
	Type domain.AspectType
	Orb  float64
}

// Table is an ordered set of aspect definitions, smallest angle first.
type Table []Definition

// DefaultTable returns the natal orb table.
func DefaultTable() Table {
	return Table{
		{domain.AspectConjunction, 8},
		{domain.AspectSemisextile, 2},
		{domain.AspectSemisquare, 2},
		{domain.AspectSextile, 8},
		{domain.AspectQuintile, 2},
		{domain.AspectSquare, 8},
		{domain.AspectTrine, 8},
		{domain.AspectSesquiquadrate, 2},
		{domain.AspectBiquintile, 2},
		{domain.AspectQuincunx, 3},
		{domain.AspectOpposition, 8},
	}
}

// Only returns the definitions whose type is listed, keeping order.
func (t Table) Only(types ...domain.AspectType) Table {
	keep := make(map[domain.AspectType]bool, len(types))
	for _, ty := range types {
		keep[ty] = true
	}
	out := make(Table, 0, len(types))
	for _, d := range t {
		if keep[d.Type] {
			out = append(out, d)
		}
	}
	return out
}

// Major returns the Ptolemaic aspects only.
func (t Table) Major() Table {
	out := make(Table, 0, 5)
	for _, d := range t {
		if d.Type.IsMajor() {
			out = append(out, d)
		}
	}
	return out
}

// WithOrbs returns a copy with the given orbs replaced. Types missing from
// the map keep their orb.
func (t Table) WithOrbs(orbs map[domain.AspectType]float64) Table {
	out := make(Table, len(t))
	for i, d := range t {
		if o, ok := orbs[d.Type]; ok {
			d.Orb = o
		}
		out[i] = d
	}
	return out
}

// WithOrb returns a copy with every orb set to orb.
func (t Table) WithOrb(orb float64) Table {
	out := make(Table, len(t))
	for i, d := range t {
		d.Orb = orb
		out[i] = d
	}
	return out
}

// Orb returns the orb of an aspect type, or false if it is not in the table.
func (t Table) Orb(ty domain.AspectType) (float64, bool) {
	for _, d := range t {
		if d.Type == ty {
			return d.Orb, true
		}
	}
	return 0, false
}
