package mcp

import (
	"time"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// PositionOutput is one body or derived point.
type PositionOutput struct {
	Body       string  `json:"body"`
	Longitude  float64 `json:"longitude"`
	Zodiac     string  `json:"zodiac"`
	Latitude   float64 `json:"latitude"`
	DistanceAU float64 `json:"distance_au,omitempty"`
	Speed      float64 `json:"speed"`
	Retrograde bool    `json:"retrograde"`
	House      int     `json:"house,omitempty"`
	Precision  string  `json:"precision"`
	Note       string  `json:"note,omitempty"`
}

// AnglesOutput holds the four chart angles.
type AnglesOutput struct {
	Ascendant  float64 `json:"ascendant"`
	Midheaven  float64 `json:"midheaven"`
	Descendant float64 `json:"descendant"`
	ImumCoeli  float64 `json:"imum_coeli"`
}

// HousesOutput is one house division.
type HousesOutput struct {
	Requested string    `json:"requested"`
	System    string    `json:"system"`
	Cusps     []float64 `json:"cusps"`
	Degraded  bool      `json:"degraded,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

// AspectOutput is an aspect between two natal points.
type AspectOutput struct {
	A         string  `json:"a"`
	B         string  `json:"b"`
	Type      string  `json:"type"`
	Orb       float64 `json:"orb"`
	Exactness float64 `json:"exactness"`
}

// LunarPhaseOutput describes the Sun-Moon elongation.
type LunarPhaseOutput struct {
	Angle        float64 `json:"angle"`
	Name         string  `json:"name"`
	Illumination float64 `json:"illumination"`
}

// ChartOutput is the output schema for the natal_chart tool.
type ChartOutput struct {
	UT                string           `json:"ut"`
	JulianDay         float64          `json:"julian_day"`
	LocalSiderealTime float64          `json:"local_sidereal_time"`
	Obliquity         float64          `json:"obliquity"`
	EquationOfTime    float64          `json:"equation_of_time_minutes"`
	Angles            AnglesOutput     `json:"angles"`
	Bodies            []PositionOutput `json:"bodies"`
	Points            []PositionOutput `json:"points"`
	PartOfFortune     float64          `json:"part_of_fortune"`
	Houses            []HousesOutput   `json:"houses"`
	LunarPhase        LunarPhaseOutput `json:"lunar_phase"`
	Aspects           []AspectOutput   `json:"aspects"`
	Degraded          bool             `json:"degraded"`
}

// TransitAspectOutput is a transiting body aspecting a natal point.
type TransitAspectOutput struct {
	Transiting  string  `json:"transiting"`
	Natal       string  `json:"natal"`
	Type        string  `json:"type"`
	Orb         float64 `json:"orb"`
	Applying    bool    `json:"applying"`
	Class       string  `json:"class"`
	WindowStart string  `json:"window_start"`
	WindowEnd   string  `json:"window_end"`
}

// TransitsOutput is the output schema for the transits tool.
type TransitsOutput struct {
	At          string                `json:"at"`
	JulianDay   float64               `json:"julian_day"`
	Topocentric bool                  `json:"topocentric"`
	Bodies      []PositionOutput      `json:"bodies"`
	Angles      *AnglesOutput         `json:"angles,omitempty"`
	Aspects     []TransitAspectOutput `json:"aspects"`
}

// ProgressedOutput is the output schema for the progressed_chart tool.
type ProgressedOutput struct {
	Method              string      `json:"method"`
	Target              string      `json:"target"`
	ProgressedJulianDay float64     `json:"progressed_julian_day"`
	SolarArc            float64     `json:"solar_arc"`
	Chart               ChartOutput `json:"chart"`
}

func toPosition(p domain.BodyPosition) PositionOutput {
	out := PositionOutput{
		Body:       p.Body.String(),
		Longitude:  p.Longitude,
		Latitude:   p.Latitude,
		DistanceAU: p.Distance,
		Speed:      p.Speed,
		Retrograde: p.Retrograde(),
		House:      p.House,
		Precision:  p.Precision.String(),
		Note:       p.Note,
	}
	if p.Available() {
		out.Zodiac = domain.FormatZodiac(p.Longitude)
	}
	return out
}

func toPositions(ps []domain.BodyPosition) []PositionOutput {
	out := make([]PositionOutput, len(ps))
	for i := range ps {
		out[i] = toPosition(ps[i])
	}
	return out
}

func toAngles(a domain.ChartAngles) AnglesOutput {
	return AnglesOutput{
		Ascendant:  a.Ascendant,
		Midheaven:  a.Midheaven,
		Descendant: a.Descendant,
		ImumCoeli:  a.ImumCoeli,
	}
}

func toChart(c *domain.NatalChart) ChartOutput {
	out := ChartOutput{
		UT:                c.UT.Format(time.RFC3339),
		JulianDay:         c.JulianDay,
		LocalSiderealTime: c.LocalSiderealTime,
		Obliquity:         c.Obliquity,
		EquationOfTime:    c.EquationOfTime,
		Angles:            toAngles(c.Angles),
		Bodies:            toPositions(c.Bodies),
		Points: []PositionOutput{
			toPosition(c.Points.NorthNode),
			toPosition(c.Points.SouthNode),
			toPosition(c.Points.Lilith),
		},
		PartOfFortune: c.Points.PartOfFortune,
		Houses:        make([]HousesOutput, len(c.Houses)),
		LunarPhase: LunarPhaseOutput{
			Angle:        c.LunarPhase.Angle,
			Name:         c.LunarPhase.Name,
			Illumination: c.LunarPhase.Illumination,
		},
		Aspects:  make([]AspectOutput, len(c.Aspects)),
		Degraded: c.Degraded(),
	}

	for i, h := range c.Houses {
		out.Houses[i] = HousesOutput{
			Requested: h.Requested.String(),
			System:    h.System.String(),
			Cusps:     h.Cusps[:],
			Degraded:  h.Degraded,
			Reason:    h.Reason,
		}
	}
	for i, a := range c.Aspects {
		out.Aspects[i] = AspectOutput{
			A:         a.A.String(),
			B:         a.B.String(),
			Type:      a.Type.String(),
			Orb:       a.Orb,
			Exactness: a.Exactness,
		}
	}
	return out
}

func toTransits(s *domain.TransitSnapshot) TransitsOutput {
	out := TransitsOutput{
		At:          s.At.Format(time.RFC3339),
		JulianDay:   s.JulianDay,
		Topocentric: s.Topocentric,
		Bodies:      toPositions(s.Bodies),
		Aspects:     make([]TransitAspectOutput, len(s.Aspects)),
	}
	if s.Angles != nil {
		a := toAngles(*s.Angles)
		out.Angles = &a
	}
	for i, a := range s.Aspects {
		out.Aspects[i] = TransitAspectOutput{
			Transiting:  a.Transiting.String(),
			Natal:       a.Natal.String(),
			Type:        a.Type.String(),
			Orb:         a.Orb,
			Applying:    a.Applying,
			Class:       a.Class.String(),
			WindowStart: a.WindowStart.Format(time.RFC3339),
			WindowEnd:   a.WindowEnd.Format(time.RFC3339),
		}
	}
	return out
}
