package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/zenith/internal/astro/calendar"
	"github.com/custodia-labs/zenith/internal/core/domain"
	"github.com/custodia-labs/zenith/internal/core/ports/driven"
	"github.com/custodia-labs/zenith/internal/core/ports/driving"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService manages stored birth profiles.
type ProfileService struct {
	profileStore driven.ProfileStore
	now          func() time.Time
}

// NewProfileService creates a new profile service.
func NewProfileService(profileStore driven.ProfileStore) *ProfileService {
	return &ProfileService{
		profileStore: profileStore,
		now:          time.Now,
	}
}

// Add validates and stores a new profile.
func (s *ProfileService) Add(ctx context.Context, profile domain.BirthProfile) (*domain.BirthProfile, error) {
	if s.profileStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	} else if existing, err := s.profileStore.Get(ctx, profile.ID); err == nil && existing != nil {
		return nil, domain.ErrAlreadyExists
	}

	now := s.now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if err := s.profileStore.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return &profile, nil
}

// Get retrieves a profile by ID.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.BirthProfile, error) {
	if s.profileStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.profileStore.Get(ctx, id)
}

// Find resolves a profile by exact ID, unique ID prefix or name.
func (s *ProfileService) Find(ctx context.Context, ref string) (*domain.BirthProfile, error) {
	if s.profileStore == nil {
		return nil, domain.ErrNotImplemented
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrInvalidInput
	}

	p, err := s.profileStore.Get(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	profiles, err := s.profileStore.List(ctx)
	if err != nil {
		return nil, err
	}
	var matches []domain.BirthProfile
	for _, p := range profiles {
		if strings.EqualFold(p.Name, ref) || strings.HasPrefix(p.ID, ref) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, domain.ErrNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %q matches %d profiles", domain.ErrInvalidInput, ref, len(matches))
	}
}

// List returns all profiles.
func (s *ProfileService) List(ctx context.Context) ([]domain.BirthProfile, error) {
	if s.profileStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.profileStore.List(ctx)
}

// Update replaces an existing profile, keeping its creation time.
func (s *ProfileService) Update(ctx context.Context, profile domain.BirthProfile) error {
	if s.profileStore == nil {
		return domain.ErrNotImplemented
	}
	if profile.ID == "" {
		return domain.ErrInvalidInput
	}
	if err := validateProfile(profile); err != nil {
		return err
	}
	existing, err := s.profileStore.Get(ctx, profile.ID)
	if err != nil {
		return err
	}
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = s.now().UTC()
	return s.profileStore.Save(ctx, profile)
}

// Remove deletes a profile.
func (s *ProfileService) Remove(ctx context.Context, id string) error {
	if s.profileStore == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.profileStore.Get(ctx, id); err != nil {
		return err
	}
	return s.profileStore.Delete(ctx, id)
}

func validateProfile(p domain.BirthProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: profile name required", domain.ErrInvalidInput)
	}
	if err := calendar.Validate(p.Birth); err != nil {
		return err
	}
	return p.Location.Validate()
}
