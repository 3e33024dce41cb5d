package ephemeris

import (
	"fmt"

	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/frames"
	"github.com/custodia-labs/zenith/internal/astro/orbit"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// speedStep is the interval, in days, used for speed and retrograde motion.
const speedStep = 1.0

// Position returns the apparent geocentric position of body at jd, with its
// daily speed. Derived points use the mean node.
//
// An unknown body fails with domain.ErrUnknownBody. A body with no data on
// any rung returns a position marked unavailable together with an error
// wrapping domain.ErrEphemerisDataUnavailable.
func (e *Ephemeris) Position(body domain.Body, jd float64) (domain.BodyPosition, error) {
	if !body.IsValid() && !body.IsDerived() {
		return domain.BodyPosition{}, fmt.Errorf("%w: %q", domain.ErrUnknownBody, body)
	}
	if err := e.Init(); err != nil {
		return domain.BodyPosition{}, err
	}

	switch body {
	case domain.BodyNorthNode, domain.BodySouthNode:
		north, south := e.Nodes(jd, domain.NodeMean)
		if body == domain.BodyNorthNode {
			return north, nil
		}
		return south, nil
	case domain.BodyLilith:
		return e.Lilith(jd), nil
	}

	now, err := e.apparent(body, jd)
	if err != nil {
		return domain.BodyPosition{
			Body:      body,
			Precision: domain.PrecisionUnavailable,
			Note:      err.Error(),
		}, err
	}
	next, err := e.apparent(body, jd+speedStep)
	if err != nil {
		return domain.BodyPosition{}, err
	}

	now.Speed = angle.Delta(now.Longitude, next.Longitude) / speedStep
	return now, nil
}

// Positions computes every body, recording per-body failures on the
// position instead of failing the set. Unknown bodies are skipped.
func (e *Ephemeris) Positions(bodies []domain.Body, jd float64) []domain.BodyPosition {
	out := make([]domain.BodyPosition, 0, len(bodies))
	for _, b := range bodies {
		p, err := e.Position(b, jd)
		if err != nil && p.Body == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// apparent computes one instant without speed.
func (e *Ephemeris) apparent(body domain.Body, jd float64) (domain.BodyPosition, error) {
	dpsi, _ := frames.Nutation(jd)

	var (
		geo  orbit.Geocentric
		prec domain.Precision
		note string
	)

	switch body {
	case domain.BodyMoon:
		geo = orbit.Moon(jd)
		prec = domain.PrecisionLunarTheory
	case domain.BodySun:
		earth, ep, en := e.earth(jd)
		geo = frames.Geocentric(orbit.Heliocentric{}, earth)
		prec, note = ep, en
	default:
		helio, hp, hn, err := e.heliocentric(body, jd)
		if err != nil {
			return domain.BodyPosition{}, err
		}
		earth, ep, en := e.earth(jd)
		geo = frames.Geocentric(helio, earth)
		prec, note = worse(hp, hn, ep, en)
	}

	return domain.BodyPosition{
		Body:      body,
		Longitude: angle.Normalize(geo.Longitude + dpsi),
		Latitude:  geo.Latitude,
		Distance:  geo.Distance,
		Precision: prec,
		Note:      note,
	}, nil
}

// Heliocentric returns body's heliocentric position from the best available
// rung with the precision achieved.
func (e *Ephemeris) Heliocentric(body domain.Body, jd float64) (orbit.Heliocentric, domain.Precision, error) {
	if err := e.Init(); err != nil {
		return orbit.Heliocentric{}, domain.PrecisionUnavailable, err
	}
	if body == domain.BodyEarth {
		h, p, _ := e.earth(jd)
		return h, p, nil
	}
	if !body.IsValid() || body == domain.BodySun || body == domain.BodyMoon {
		return orbit.Heliocentric{}, domain.PrecisionUnavailable, fmt.Errorf("%w: no heliocentric orbit for %q", domain.ErrUnknownBody, body)
	}
	h, p, _, err := e.heliocentric(body, jd)
	return h, p, err
}

// seriesBody reports whether body may use a series table. Pluto and the
// minor bodies always come from elements.
func seriesBody(body domain.Body) bool {
	return body != domain.BodyPluto && !body.IsMinor()
}

func (e *Ephemeris) heliocentric(body domain.Body, jd float64) (orbit.Heliocentric, domain.Precision, string, error) {
	var seriesErr error
	if table, ok := e.series[body]; ok && seriesBody(body) {
		h, err := orbit.EvaluateSeries(table, jd)
		if err == nil {
			return h, domain.PrecisionSeries, "", nil
		}
		seriesErr = err
	}

	el, ok := e.elements[body]
	if !ok {
		return orbit.Heliocentric{}, domain.PrecisionUnavailable, "",
			fmt.Errorf("%w: no series or elements for %q", domain.ErrEphemerisDataUnavailable, body)
	}

	h := el.Position(jd)
	switch {
	case body.IsMinor():
		return h, domain.PrecisionEstimated, "osculating elements at a fixed epoch", nil
	case el.Approximate():
		return h, domain.PrecisionEstimated, "eccentric orbit; Kepler solution approximate", nil
	case seriesErr != nil:
		return h, domain.PrecisionElements, "series failed; simplified elements", nil
	default:
		return h, domain.PrecisionElements, "", nil
	}
}

// earth walks the ladder for Earth: series, barycentre elements, then the
// solar theory.
func (e *Ephemeris) earth(jd float64) (orbit.Heliocentric, domain.Precision, string) {
	if table, ok := e.series[domain.BodyEarth]; ok {
		if h, err := orbit.EvaluateSeries(table, jd); err == nil {
			return h, domain.PrecisionSeries, ""
		}
	}
	if el, ok := e.elements[domain.BodyEarth]; ok {
		return el.Position(jd), domain.PrecisionElements, ""
	}
	return orbit.EarthFromSun(jd), domain.PrecisionElements, "solar theory"
}

var precisionRank = map[domain.Precision]int{
	domain.PrecisionSeries:      0,
	domain.PrecisionLunarTheory: 0,
	domain.PrecisionElements:    1,
	domain.PrecisionEstimated:   2,
	domain.PrecisionUnavailable: 3,
}

// worse returns the lower of two precisions with its note.
func worse(a domain.Precision, an string, b domain.Precision, bn string) (domain.Precision, string) {
	if precisionRank[b] > precisionRank[a] {
		return b, bn
	}
	return a, an
}
