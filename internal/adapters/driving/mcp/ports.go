package mcp

import (
	"github.com/custodia-labs/zenith/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chart computes charts, positions, transits and progressions.
	Chart driving.ChartService

	// Profile resolves stored birth profiles. Optional: without it tools
	// accept explicit birth data only.
	Profile driving.ProfileService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Chart == nil {
		return ErrMissingChartService
	}
	return nil
}
