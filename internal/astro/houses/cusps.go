package houses

import (
	"errors"
	"fmt"
	"math"

	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

const (
	placidusMaxIterations = 100
	placidusTolerance     = 1e-8
)

// Cusps computes the twelve cusps for one system. Placidus fails with
// domain.ErrHouseSystemUnavailable where a semi-arc is undefined.
func Cusps(system domain.HouseSystem, angles domain.ChartAngles, lst, latitude, obliquity float64) (domain.HouseCusps, error) {
	out := domain.HouseCusps{Requested: system, System: system}
	switch system {
	case domain.HouseSystemEqual:
		out.Cusps = equal(angles.Ascendant)
	case domain.HouseSystemWholeSign:
		out.Cusps = wholeSign(angles.Ascendant)
	case domain.HouseSystemPlacidus:
		c, err := placidus(angles, lst, latitude, obliquity)
		if err != nil {
			return domain.HouseCusps{}, err
		}
		out.Cusps = c
	default:
		return domain.HouseCusps{}, fmt.Errorf("%w: unknown house system %q", domain.ErrInvalidInput, system)
	}
	return out, nil
}

// Calculate is Cusps with the Equal House fallback: when the requested
// system is unavailable the result is Equal House, flagged degraded with the
// reason recorded.
func Calculate(system domain.HouseSystem, angles domain.ChartAngles, lst, latitude, obliquity float64) (domain.HouseCusps, error) {
	out, err := Cusps(system, angles, lst, latitude, obliquity)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, domain.ErrHouseSystemUnavailable) {
		return domain.HouseCusps{}, err
	}
	return domain.HouseCusps{
		Requested: system,
		System:    domain.HouseSystemEqual,
		Cusps:     equal(angles.Ascendant),
		Degraded:  true,
		Reason:    err.Error(),
	}, nil
}

func equal(asc float64) [12]float64 {
	var c [12]float64
	for i := range c {
		c[i] = angle.Normalize(asc + 30*float64(i))
	}
	return c
}

func wholeSign(asc float64) [12]float64 {
	start := math.Floor(angle.Normalize(asc)/30) * 30
	var c [12]float64
	for i := range c {
		c[i] = angle.Normalize(start + 30*float64(i))
	}
	return c
}

// placidus trisects the diurnal and nocturnal semi-arcs. Each intermediate
// cusp is the ecliptic point whose hour angle is a fixed fraction of its own
// semi-arc, found by fixed-point iteration on right ascension.
func placidus(angles domain.ChartAngles, lst, latitude, obliquity float64) ([12]float64, error) {
	type quadrant struct {
		house int
		// offset and fraction give RA = lst + offset + fraction·DSA.
		offset, fraction float64
	}
	intermediate := []quadrant{
		{11, 0, 1.0 / 3},
		{12, 0, 2.0 / 3},
		{2, 60, 2.0 / 3},
		{3, 120, 1.0 / 3},
	}

	var c [12]float64
	c[0] = angles.Ascendant
	c[3] = angles.ImumCoeli
	c[6] = angles.Descendant
	c[9] = angles.Midheaven

	for _, q := range intermediate {
		lon, err := placidusCusp(lst, latitude, obliquity, q.offset, q.fraction)
		if err != nil {
			return c, fmt.Errorf("house %d: %w", q.house, err)
		}
		c[q.house-1] = lon
		c[(q.house+5)%12] = angle.Normalize(lon + 180)
	}
	return c, nil
}

func placidusCusp(lst, latitude, obliquity, offset, fraction float64) (float64, error) {
	tanPhi := angle.Tan(latitude)
	ra := angle.Normalize(lst + offset + 90*fraction)
	for i := 0; i < placidusMaxIterations; i++ {
		lon := raToEcliptic(ra, obliquity)
		dec := angle.Asin(angle.Sin(obliquity) * angle.Sin(lon))
		k := tanPhi * angle.Tan(dec)
		if math.Abs(k) > 1 || math.IsNaN(k) {
			return 0, fmt.Errorf("%w: semi-arc undefined at latitude %.2f", domain.ErrHouseSystemUnavailable, latitude)
		}
		dsa := angle.Acos(-k)
		next := angle.Normalize(lst + offset + fraction*dsa)
		if math.Abs(angle.Delta(ra, next)) < placidusTolerance {
			return raToEcliptic(next, obliquity), nil
		}
		ra = next
	}
	return 0, fmt.Errorf("%w: no convergence at latitude %.2f", domain.ErrHouseSystemUnavailable, latitude)
}

// raToEcliptic returns the ecliptic longitude of the point with right
// ascension ra on the ecliptic.
func raToEcliptic(ra, obliquity float64) float64 {
	return angle.Normalize(angle.Atan2(angle.Sin(ra), angle.Cos(ra)*angle.Cos(obliquity)))
}
