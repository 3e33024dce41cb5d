package chart

import (
	"fmt"

	"github.com/custodia-labs/zenith/internal/astro/angle"
	"github.com/custodia-labs/zenith/internal/astro/aspects"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
	"github.com/custodia-labs/zenith/internal/astro/ephemeris"
	"github.com/custodia-labs/zenith/internal/astro/frames"
	"github.com/custodia-labs/zenith/internal/astro/houses"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// Assembler builds charts against one ephemeris handle.
type Assembler struct {
	eph   *ephemeris.Ephemeris
	table aspects.Table
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithAspectTable replaces the natal orb table.
func WithAspectTable(t aspects.Table) Option {
	return func(a *Assembler) {
		a.table = t
	}
}

// New creates an assembler. A nil handle uses the built-in elements.
func New(eph *ephemeris.Ephemeris, opts ...Option) *Assembler {
	if eph == nil {
		eph = &ephemeris.Ephemeris{}
	}
	a := &Assembler{eph: eph, table: aspects.DefaultTable()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ephemeris returns the handle the assembler computes with.
func (a *Assembler) Ephemeris() *ephemeris.Ephemeris {
	return a.eph
}

// Natal assembles the chart for the request's birth instant and place.
func (a *Assembler) Natal(req domain.ChartRequest) (domain.NatalChart, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return domain.NatalChart{}, err
	}
	jd, err := calendar.JulianDay(req.Birth)
	if err != nil {
		return domain.NatalChart{}, err
	}
	return a.cast(req, jd)
}

// normalizeRequest validates the request and fills defaults.
func normalizeRequest(req domain.ChartRequest) (domain.ChartRequest, error) {
	if err := req.Location.Validate(); err != nil {
		return req, err
	}
	if req.NodeMode == "" {
		req.NodeMode = domain.NodeMean
	}
	if !req.NodeMode.IsValid() {
		return req, fmt.Errorf("%w: unknown node mode %q", domain.ErrInvalidInput, req.NodeMode)
	}

	seen := make(map[domain.HouseSystem]bool)
	systems := make([]domain.HouseSystem, 0, len(req.HouseSystems))
	for _, h := range req.HouseSystems {
		if !h.IsValid() {
			return req, fmt.Errorf("%w: unknown house system %q", domain.ErrInvalidInput, h)
		}
		if !seen[h] {
			seen[h] = true
			systems = append(systems, h)
		}
	}
	if len(systems) == 0 {
		systems = []domain.HouseSystem{domain.HouseSystemPlacidus}
	}
	req.HouseSystems = systems
	return req, nil
}

// cast computes a full chart at jd for the request's location.
func (a *Assembler) cast(req domain.ChartRequest, jd float64) (domain.NatalChart, error) {
	if err := a.eph.Init(); err != nil {
		return domain.NatalChart{}, err
	}

	dpsi, deps := frames.Nutation(jd)
	eps := frames.MeanObliquity(jd) + deps
	gmst := calendar.GMST(jd)
	lst := calendar.LST(jd, req.Location.Longitude)
	apparentLST := calendar.ApparentSidereal(lst, dpsi, eps)

	c := domain.NatalChart{
		Request:               req,
		JulianDay:             jd,
		UT:                    calendar.Time(jd),
		GreenwichSiderealTime: gmst,
		LocalSiderealTime:     lst,
		Obliquity:             eps,
		NutationLongitude:     dpsi,
		EquationOfTime:        frames.EquationOfTime(jd),
		Bodies:                a.eph.Positions(domain.Roster(), jd),
		Angles:                houses.Angles(apparentLST, req.Location.Latitude, eps),
	}

	for _, sys := range req.HouseSystems {
		h, err := houses.Calculate(sys, c.Angles, apparentLST, req.Location.Latitude, eps)
		if err != nil {
			return domain.NatalChart{}, err
		}
		c.Houses = append(c.Houses, h)
	}

	north, south := a.eph.Nodes(jd, req.NodeMode)
	c.Points.NorthNode = north
	c.Points.SouthNode = south
	c.Points.Lilith = a.eph.Lilith(jd)

	a.derive(&c)
	return c, nil
}

// derive fills everything that depends on the final angles and cusps: house
// placement, Part of Fortune, lunar phase and aspects.
func (a *Assembler) derive(c *domain.NatalChart) {
	sun, _ := c.Body(domain.BodySun)
	moon, _ := c.Body(domain.BodyMoon)

	c.Points.PartOfFortune = PartOfFortune(c.Angles.Ascendant, moon.Longitude, sun.Longitude)
	c.LunarPhase = domain.NewLunarPhase(moon.Longitude - sun.Longitude)

	if primary, ok := c.PrimaryHouses(); ok {
		for i := range c.Bodies {
			if c.Bodies[i].Available() {
				c.Bodies[i].House = primary.HouseOf(c.Bodies[i].Longitude)
			}
		}
		c.Points.NorthNode.House = primary.HouseOf(c.Points.NorthNode.Longitude)
		c.Points.SouthNode.House = primary.HouseOf(c.Points.SouthNode.Longitude)
		c.Points.Lilith.House = primary.HouseOf(c.Points.Lilith.Longitude)
	}

	c.Aspects = aspects.Detect(aspectPoints(c), a.table)
}

// aspectPoints lists the available bodies, the north node, the Ascendant and
// the Midheaven. The Descendant and IC are left out; their aspects mirror
// those of the Ascendant and Midheaven.
func aspectPoints(c *domain.NatalChart) []aspects.Point {
	pts := make([]aspects.Point, 0, len(c.Bodies)+3)
	for _, b := range c.Bodies {
		if b.Available() {
			pts = append(pts, aspects.Point{ID: b.Body.Point(), Longitude: b.Longitude})
		}
	}
	pts = append(pts,
		aspects.Point{ID: domain.BodyNorthNode.Point(), Longitude: c.Points.NorthNode.Longitude},
		aspects.Point{ID: domain.PointAscendant, Longitude: c.Angles.Ascendant},
		aspects.Point{ID: domain.PointMidheaven, Longitude: c.Angles.Midheaven},
	)
	return pts
}

// PartOfFortune returns normalize(Ascendant + Moon − Sun).
func PartOfFortune(asc, moon, sun float64) float64 {
	return angle.Normalize(asc + moon - sun)
}
