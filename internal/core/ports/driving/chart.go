package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// ChartService computes charts, positions and transits. Nothing it returns
// is cached or stored.
type ChartService interface {
	// Natal assembles a natal chart. Empty house systems and node mode in the
	// request are filled from settings.
	Natal(ctx context.Context, req domain.ChartRequest) (*domain.NatalChart, error)

	// NatalBatch assembles several charts concurrently. Results keep the
	// order of reqs; the first failure cancels the rest.
	NatalBatch(ctx context.Context, reqs []domain.ChartRequest) ([]domain.NatalChart, error)

	// NatalForProfile assembles the chart of a stored birth profile.
	NatalForProfile(ctx context.Context, profileID string) (*domain.NatalChart, error)

	// Position returns one body's apparent geocentric position at an instant.
	// Returns domain.ErrUnknownBody for bodies outside the roster.
	Position(ctx context.Context, body domain.Body, at time.Time) (*domain.BodyPosition, error)

	// Transits compares the positions at opts.Now (or now) with natal.
	// A nil observer in opts falls back to the configured observer.
	Transits(ctx context.Context, natal *domain.NatalChart, opts domain.TransitOptions) (*domain.TransitSnapshot, error)

	// Progressed advances a natal chart to target. An empty method uses the
	// configured default.
	Progressed(
		ctx context.Context,
		req domain.ChartRequest,
		target time.Time,
		method domain.ProgressionMethod,
	) (*domain.ProgressedChart, error)
}
