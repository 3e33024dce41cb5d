package ephemeris

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/custodia-labs/zenith/internal/astro/orbit"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

// Source supplies coefficient tables. Either method may return a
// domain.ErrEphemerisDataUnavailable error to signal absent data.
type Source interface {
	// LoadSeries returns periodic series keyed by body.
	LoadSeries() (map[domain.Body]*domain.SeriesTable, error)

	// LoadElements returns element sets that override the built-in catalogue.
	LoadElements() (map[domain.Body]domain.OrbitalElements, error)
}

// Ephemeris is an initialised set of coefficient tables.
// The zero value is usable and falls back to the built-in element catalogue.
type Ephemeris struct {
	source Source

	mu    sync.Mutex
	ready atomic.Bool

	series   map[domain.Body]*domain.SeriesTable
	elements map[domain.Body]orbit.Elements
}

// Open creates a handle over src and initialises it. A nil src uses the
// built-in element catalogue only.
func Open(src Source) (*Ephemeris, error) {
	e := &Ephemeris{source: src}
	if err := e.Init(); err != nil {
		return nil, err
	}
	return e, nil
}

// Init loads the tables. It is safe to call repeatedly and concurrently;
// only the first successful call does any work. Missing data is not an
// error; malformed data is, and leaves the handle uninitialised.
func (e *Ephemeris) Init() error {
	if e.ready.Load() {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ready.Load() {
		return nil
	}

	series := make(map[domain.Body]*domain.SeriesTable)
	catalogue := orbit.DefaultCatalogue()

	if e.source != nil {
		loaded, err := e.source.LoadSeries()
		if err != nil && !errors.Is(err, domain.ErrEphemerisDataUnavailable) {
			return fmt.Errorf("load series: %w", err)
		}
		for body, table := range loaded {
			if !table.Empty() {
				series[body] = table
			}
		}

		overrides, err := e.source.LoadElements()
		if err != nil && !errors.Is(err, domain.ErrEphemerisDataUnavailable) {
			return fmt.Errorf("load elements: %w", err)
		}
		for body, el := range overrides {
			// An entry without a semi-major axis withdraws the body.
			if el.SemiMajorAxis <= 0 {
				delete(catalogue, body)
				continue
			}
			catalogue[body] = el
		}
	}

	elements := make(map[domain.Body]orbit.Elements, len(catalogue))
	for body, el := range catalogue {
		el.Body = body
		elements[body] = orbit.NewElements(el)
	}

	e.series = series
	e.elements = elements
	e.ready.Store(true)
	return nil
}

// HasSeries reports whether a series table is loaded for body.
func (e *Ephemeris) HasSeries(body domain.Body) bool {
	if err := e.Init(); err != nil {
		return false
	}
	_, ok := e.series[body]
	return ok
}

// SeriesBodies returns the bodies with loaded series tables.
func (e *Ephemeris) SeriesBodies() []domain.Body {
	if err := e.Init(); err != nil {
		return nil
	}
	out := make([]domain.Body, 0, len(e.series))
	for _, b := range append([]domain.Body{domain.BodyEarth}, domain.Roster()...) {
		if _, ok := e.series[b]; ok {
			out = append(out, b)
		}
	}
	return out
}
