package driving

import (
	"context"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// ProfileService manages stored birth profiles.
type ProfileService interface {
	// Add validates and stores a new profile, assigning an ID if empty.
	Add(ctx context.Context, profile domain.BirthProfile) (*domain.BirthProfile, error)

	// Get retrieves a profile by ID.
	Get(ctx context.Context, id string) (*domain.BirthProfile, error)

	// Find resolves a profile by ID, ID prefix or case-insensitive name.
	Find(ctx context.Context, ref string) (*domain.BirthProfile, error)

	// List returns all profiles.
	List(ctx context.Context) ([]domain.BirthProfile, error)

	// Update replaces an existing profile.
	Update(ctx context.Context, profile domain.BirthProfile) error

	// Remove deletes a profile.
	Remove(ctx context.Context, id string) error
}
