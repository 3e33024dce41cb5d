// Package tui provides the live transit dashboard for zenith.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/zenith/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chart casts the natal chart and recomputes transits on every tick.
	Chart driving.ChartService
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Chart == nil {
		return ErrMissingChartService
	}
	return nil
}
