package transit

import (
	"sort"
	"time"

	"github.com/custodia-labs/zenith/internal/astro/aspects"
	"github.com/custodia-labs/zenith/internal/astro/calendar"
	"github.com/custodia-labs/zenith/internal/astro/ephemeris"
	"github.com/custodia-labs/zenith/internal/astro/frames"
	"github.com/custodia-labs/zenith/internal/astro/houses"
	"github.com/custodia-labs/zenith/internal/astro/orbit"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// Engine computes transit snapshots.
type Engine struct {
	eph   *ephemeris.Ephemeris
	clock func() time.Time
	table aspects.Table
}

// New creates an engine. A nil handle uses the built-in elements.
func New(eph *ephemeris.Ephemeris) *Engine {
	if eph == nil {
		eph = &ephemeris.Ephemeris{}
	}
	return &Engine{
		eph:   eph,
		clock: time.Now,
		table: aspects.DefaultTable().Major(),
	}
}

// WithClock returns a copy of the engine reading "now" from clock.
func (e *Engine) WithClock(clock func() time.Time) *Engine {
	cp := *e
	cp.clock = clock
	return &cp
}

// Snapshot compares the positions at opts.Now (or the engine clock) with the
// natal chart. With an observer the Moon is topocentric and the current
// angles are reported and aspected as short-term transits; without one
// everything stays geocentric.
func (e *Engine) Snapshot(natal domain.NatalChart, opts domain.TransitOptions) (domain.TransitSnapshot, error) {
	at := e.clock()
	if opts.Now != nil {
		at = *opts.Now
	}
	at = at.UTC()

	if opts.Observer != nil {
		if err := opts.Observer.Validate(); err != nil {
			return domain.TransitSnapshot{}, err
		}
	}
	if err := e.eph.Init(); err != nil {
		return domain.TransitSnapshot{}, err
	}

	jd := calendar.FromTime(at)
	snap := domain.TransitSnapshot{
		At:        at,
		JulianDay: jd,
		Bodies:    e.eph.Positions(Bodies(), jd),
	}

	if opts.Observer != nil {
		e.observe(&snap, *opts.Observer)
	}

	snap.Aspects = e.aspects(snap, natal, at)
	return snap, nil
}

// observe applies the topocentric Moon and computes the current angles.
func (e *Engine) observe(snap *domain.TransitSnapshot, obs domain.Location) {
	dpsi, deps := frames.Nutation(snap.JulianDay)
	eps := frames.MeanObliquity(snap.JulianDay) + deps
	lst := calendar.ApparentSidereal(calendar.LST(snap.JulianDay, obs.Longitude), dpsi, eps)

	for i, p := range snap.Bodies {
		if p.Body != domain.BodyMoon || !p.Available() {
			continue
		}
		topo := frames.Topocentric(orbit.Geocentric{
			Longitude: p.Longitude,
			Latitude:  p.Latitude,
			Distance:  p.Distance,
		}, lst, obs, eps)
		snap.Bodies[i].Longitude = topo.Longitude
		snap.Bodies[i].Latitude = topo.Latitude
		snap.Bodies[i].Distance = topo.Distance
		snap.Topocentric = true
	}

	angles := houses.Angles(lst, obs.Latitude, eps)
	snap.Angles = &angles
}

// mover is one transiting endpoint with the policy it is matched under.
type mover struct {
	point    aspects.Point
	orb      float64
	class    domain.TransitClass
	halfDays float64
	applying bool
}

func (e *Engine) aspects(snap domain.TransitSnapshot, natal domain.NatalChart, at time.Time) []domain.TransitAspect {
	targets := make([]aspects.Point, 0, len(natal.Bodies)+2)
	for _, b := range natal.Bodies {
		if b.Available() {
			targets = append(targets, aspects.Point{ID: b.Body.Point(), Longitude: b.Longitude})
		}
	}
	targets = append(targets,
		aspects.Point{ID: domain.PointAscendant, Longitude: natal.Angles.Ascendant},
		aspects.Point{ID: domain.PointMidheaven, Longitude: natal.Angles.Midheaven},
	)

	var out []domain.TransitAspect
	for _, m := range movers(snap) {
		table := e.table.WithOrb(m.orb)
		start, end := window(m.halfDays, at)

		for _, target := range targets {
			if target.ID == m.point.ID && m.point.ID != domain.BodySun.Point() {
				continue
			}
			a, ok := aspects.Between(m.point, target, table)
			if !ok {
				continue
			}
			out = append(out, domain.TransitAspect{
				Transiting:  m.point.ID,
				Natal:       target.ID,
				Type:        a.Type,
				Separation:  a.Separation,
				Orb:         a.Orb,
				Applying:    m.applying,
				Class:       m.class,
				WindowStart: start,
				WindowEnd:   end,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orb < out[j].Orb })
	return out
}

// movers lists the available transiting bodies followed by the current
// angles when an observer was given. Angles always advance, so they count
// as applying.
func movers(snap domain.TransitSnapshot) []mover {
	out := make([]mover, 0, len(snap.Bodies)+2)
	for _, tb := range snap.Bodies {
		if !tb.Available() {
			continue
		}
		out = append(out, mover{
			point:    aspects.Point{ID: tb.Body.Point(), Longitude: tb.Longitude},
			orb:      Orb(tb.Body),
			class:    Class(tb.Body),
			halfDays: HalfWindow(tb.Body),
			applying: !tb.Retrograde(),
		})
	}
	if ang := snap.Angles; ang != nil {
		for _, p := range []aspects.Point{
			{ID: domain.PointAscendant, Longitude: ang.Ascendant},
			{ID: domain.PointMidheaven, Longitude: ang.Midheaven},
		} {
			out = append(out, mover{
				point:    p,
				orb:      AngleOrb,
				class:    domain.TransitShortTerm,
				halfDays: AngleHalfWindow,
				applying: true,
			})
		}
	}
	return out
}
