package ephemeris

import (
	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/frames"
	"github.com/custodia-labs/zenith/internal/astro/orbit"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// Nodes returns the lunar nodes at jd. The south node is always opposite the
// north node and shares its speed.
func (e *Ephemeris) Nodes(jd float64, mode domain.NodeMode) (north, south domain.BodyPosition) {
	node := orbit.MeanNode
	if mode == domain.NodeTrue {
		node = orbit.TrueNode
	}
	dpsi, _ := frames.Nutation(jd)
	lon := angle.Normalize(node(jd) + dpsi)
	speed := angle.Delta(node(jd), node(jd+speedStep)) / speedStep

	north = domain.BodyPosition{
		Body:      domain.BodyNorthNode,
		Longitude: lon,
		Speed:     speed,
		Precision: domain.PrecisionLunarTheory,
	}
	south = north
	south.Body = domain.BodySouthNode
	south.Longitude = angle.Normalize(lon + 180)
	return north, south
}

// Lilith returns the mean lunar apogee with nutation applied.
func (e *Ephemeris) Lilith(jd float64) domain.BodyPosition {
	dpsi, _ := frames.Nutation(jd)
	return domain.BodyPosition{
		Body:      domain.BodyLilith,
		Longitude: angle.Normalize(orbit.MeanApogee(jd) + dpsi),
		Speed:     angle.Delta(orbit.MeanApogee(jd), orbit.MeanApogee(jd+speedStep)) / speedStep,
		Precision: domain.PrecisionLunarTheory,
	}
}
