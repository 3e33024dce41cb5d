package driven

import (
	"context"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// ProfileStore persists birth profiles. Only chart inputs are stored;
// charts are always recomputed.
type ProfileStore interface {
	// Save stores or updates a profile.
	Save(ctx context.Context, profile domain.BirthProfile) error

	// Get retrieves a profile by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.BirthProfile, error)

	// Delete removes a profile.
	Delete(ctx context.Context, id string) error

	// List returns all profiles ordered by name.
	List(ctx context.Context) ([]domain.BirthProfile, error)
}
