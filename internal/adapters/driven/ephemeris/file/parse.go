package file

import (
	"fmt"
	"math"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

type seriesFile struct {
	Body      string        `toml:"body"`
	TimeUnit  string        `toml:"time_unit"`
	Scale     float64       `toml:"scale"`
	Longitude []seriesPower `toml:"longitude"`
	Latitude  []seriesPower `toml:"latitude"`
	Radius    []seriesPower `toml:"radius"`
}

type seriesPower struct {
	Terms [][]any `toml:"terms"`
}

type elementsFile struct {
	Bodies []elementsEntry `toml:"body"`
}

type elementsEntry struct {
	Name  string  `toml:"name"`
	Epoch float64 `toml:"epoch"`

	SemiMajorAxis           float64 `toml:"semi_major_axis"`
	SemiMajorAxisRate       float64 `toml:"semi_major_axis_rate"`
	Eccentricity            float64 `toml:"eccentricity"`
	EccentricityRate        float64 `toml:"eccentricity_rate"`
	Inclination             float64 `toml:"inclination"`
	InclinationRate         float64 `toml:"inclination_rate"`
	MeanLongitude           float64 `toml:"mean_longitude"`
	MeanLongitudeRate       float64 `toml:"mean_longitude_rate"`
	PerihelionLongitude     float64 `toml:"perihelion_longitude"`
	PerihelionLongitudeRate float64 `toml:"perihelion_longitude_rate"`
	AscendingNode           float64 `toml:"ascending_node"`
	AscendingNodeRate       float64 `toml:"ascending_node_rate"`
}

// ParseSeries decodes one series table. fallback names the body when the
// file has no body key.
func ParseSeries(raw []byte, fallback domain.Body) (*domain.SeriesTable, error) {
	var f seriesFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	body := fallback
	if f.Body != "" {
		body = domain.Body(strings.ToLower(strings.TrimSpace(f.Body)))
	}
	if !body.IsValid() && body != domain.BodyEarth {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBody, body)
	}

	unit := domain.SeriesTimeUnit(f.TimeUnit)
	switch unit {
	case "":
		unit = domain.TimeUnitCenturies
	case domain.TimeUnitCenturies, domain.TimeUnitMillennia:
	default:
		return nil, fmt.Errorf("%w: unknown time unit %q", domain.ErrInvalidInput, f.TimeUnit)
	}

	table := &domain.SeriesTable{
		Body:     body,
		Scale:    f.Scale,
		TimeUnit: unit,
	}
	var err error
	if table.Longitude, err = convertPowers("longitude", f.Longitude); err != nil {
		return nil, err
	}
	if table.Latitude, err = convertPowers("latitude", f.Latitude); err != nil {
		return nil, err
	}
	if table.Radius, err = convertPowers("radius", f.Radius); err != nil {
		return nil, err
	}
	if table.Empty() {
		return nil, fmt.Errorf("%w: %s table needs longitude and radius terms", domain.ErrInvalidInput, body)
	}
	return table, nil
}

func convertPowers(coord string, powers []seriesPower) ([][]domain.SeriesTerm, error) {
	out := make([][]domain.SeriesTerm, len(powers))
	for p, power := range powers {
		terms := make([]domain.SeriesTerm, len(power.Terms))
		for i, raw := range power.Terms {
			if len(raw) != 3 {
				return nil, fmt.Errorf("%w: %s%d term %d has %d values, want 3",
					domain.ErrInvalidInput, coord, p, i, len(raw))
			}
			var v [3]float64
			for j, x := range raw {
				f, ok := number(x)
				if !ok {
					return nil, fmt.Errorf("%w: %s%d term %d value %d is not a number",
						domain.ErrInvalidInput, coord, p, i, j)
				}
				v[j] = f
			}
			terms[i] = domain.SeriesTerm{A: v[0], B: v[1], C: v[2]}
		}
		out[p] = terms
	}
	return out, nil
}

// number accepts TOML integers and finite floats.
func number(x any) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// ParseElements decodes an elements override file.
func ParseElements(raw []byte) (map[domain.Body]domain.OrbitalElements, error) {
	var f elementsFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	out := make(map[domain.Body]domain.OrbitalElements, len(f.Bodies))
	for _, e := range f.Bodies {
		body := domain.Body(strings.ToLower(strings.TrimSpace(e.Name)))
		if !body.IsValid() && body != domain.BodyEarth {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBody, e.Name)
		}
		if body == domain.BodySun || body == domain.BodyMoon {
			return nil, fmt.Errorf("%w: %s has no heliocentric elements", domain.ErrInvalidInput, body)
		}
		if e.Eccentricity < 0 || e.Eccentricity >= 1 {
			return nil, fmt.Errorf("%w: %s eccentricity %v outside [0,1)", domain.ErrInvalidInput, body, e.Eccentricity)
		}
		if _, dup := out[body]; dup {
			return nil, fmt.Errorf("%w: duplicate elements for %s", domain.ErrInvalidInput, body)
		}
		epoch := e.Epoch
		if epoch == 0 {
			epoch = 2451545.0
		}
		out[body] = domain.OrbitalElements{
			Body:                    body,
			Epoch:                   epoch,
			SemiMajorAxis:           e.SemiMajorAxis,
			SemiMajorAxisRate:       e.SemiMajorAxisRate,
			Eccentricity:            e.Eccentricity,
			EccentricityRate:        e.EccentricityRate,
			Inclination:             e.Inclination,
			InclinationRate:         e.InclinationRate,
			MeanLongitude:           e.MeanLongitude,
			MeanLongitudeRate:       e.MeanLongitudeRate,
			PerihelionLongitude:     e.PerihelionLongitude,
			PerihelionLongitudeRate: e.PerihelionLongitudeRate,
			AscendingNode:           e.AscendingNode,
			AscendingNodeRate:       e.AscendingNodeRate,
		}
	}
	return out, nil
}
