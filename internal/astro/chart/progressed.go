package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

const (
	// tropicalYear is the number of days mapped onto one progressed day.
	tropicalYear = 365.2422

	// sunMeanMotion in degrees per day, used to unwrap arcs past 180°.
	sunMeanMotion = 0.98564736
)

// ProgressedJulianDay maps a target instant onto the symbolic
// one-day-per-year instant after birth.
func ProgressedJulianDay(natalJD, targetJD float64) float64 {
	return natalJD + (targetJD-natalJD)/tropicalYear
}

// Progressed advances the natal chart to target. Solar arc keeps the natal
// angles and cusps and moves them by the Sun's travel; naive date recomputes
// the whole chart at the progressed instant. An empty method selects solar arc.
func (a *Assembler) Progressed(req domain.ChartRequest, target time.Time, method domain.ProgressionMethod) (domain.ProgressedChart, error) {
	if method == "" {
		method = domain.ProgressionSolarArc
	}
	if !method.IsValid() {
		return domain.ProgressedChart{}, fmt.Errorf("%w: unknown progression method %q", domain.ErrInvalidInput, method)
	}

	req, err := normalizeRequest(req)
	if err != nil {
		return domain.ProgressedChart{}, err
	}
	natalJD, err := calendar.JulianDay(req.Birth)
	if err != nil {
		return domain.ProgressedChart{}, err
	}
	progJD := ProgressedJulianDay(natalJD, calendar.FromTime(target))

	natal, err := a.cast(req, natalJD)
	if err != nil {
		return domain.ProgressedChart{}, err
	}
	prog, err := a.cast(req, progJD)
	if err != nil {
		return domain.ProgressedChart{}, err
	}

	natalSun, _ := natal.Body(domain.BodySun)
	progSun, _ := prog.Body(domain.BodySun)
	arc := SolarArc(natalSun.Longitude, progSun.Longitude, progJD-natalJD)

	out := domain.ProgressedChart{
		Method:              method,
		Target:              target.UTC(),
		ProgressedJulianDay: progJD,
		SolarArc:            arc,
	}

	if method == domain.ProgressionSolarArc {
		prog.Angles = natal.Angles.Shift(arc)
		prog.Houses = make([]domain.HouseCusps, len(natal.Houses))
		for i, h := range natal.Houses {
			for j := range h.Cusps {
				h.Cusps[j] = angle.Normalize(h.Cusps[j] + arc)
			}
			prog.Houses[i] = h
		}
		a.derive(&prog)
	}

	out.Chart = prog
	return out, nil
}

// SolarArc returns the Sun's signed travel from natal to progressed
// longitude, unwrapped with the mean motion over elapsed days.
func SolarArc(natalSun, progressedSun, elapsedDays float64) float64 {
	d := angle.Delta(natalSun, progressedSun)
	approx := elapsedDays * sunMeanMotion
	return d + 360*math.Round((approx-d)/360)
}
