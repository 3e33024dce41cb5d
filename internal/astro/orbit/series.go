package orbit

import (
	"fmt"
	"math"

	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// EvaluateSeries sums a body's periodic series at jd.
//
// Each coordinate is Σ_p τ^p Σ_k A·cos(B + C·τ), scaled by the table's Scale,
// where τ is Julian centuries or millennia from J2000.0. Longitude and
// latitude sums are radians; radius is AU.
func EvaluateSeries(table *domain.SeriesTable, jd float64) (Heliocentric, error) {
	if table.Empty() {
		body := domain.Body("")
		if table != nil {
			body = table.Body
		}
		return Heliocentric{}, fmt.Errorf("%w: no series for %q", domain.ErrEphemerisDataUnavailable, body)
	}

	tau := calendar.Centuries(jd)
	if table.TimeUnit == domain.TimeUnitMillennia {
		tau = calendar.Millennia(jd)
	}
	scale := table.Scale
	if scale == 0 {
		scale = 1
	}

	lon := sumSeries(table.Longitude, tau) * scale
	lat := sumSeries(table.Latitude, tau) * scale
	rad := sumSeries(table.Radius, tau) * scale

	if math.IsNaN(lon) || math.IsNaN(lat) || math.IsNaN(rad) || rad <= 0 {
		return Heliocentric{}, fmt.Errorf("%w: series for %q produced no valid position", domain.ErrEphemerisDataUnavailable, table.Body)
	}

	return Heliocentric{
		Longitude: angle.Normalize(lon * angle.RadToDeg),
		Latitude:  lat * angle.RadToDeg,
		Radius:    rad,
	}, nil
}

func sumSeries(powers [][]domain.SeriesTerm, tau float64) float64 {
	var total float64
	tp := 1.0
	for _, terms := range powers {
		var s float64
		for _, t := range terms {
			s += t.A * math.Cos(t.B+t.C*tau)
		}
		total += s * tp
		tp *= tau
	}
	return total
}
