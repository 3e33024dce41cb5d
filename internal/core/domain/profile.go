package domain

import (
	"strings"
	"time"
)

// BirthProfile is the persisted input of a chart. Charts themselves are never
// stored; they are recomputed from a profile on demand.
type BirthProfile struct {
	// ID is the unique identifier for the profile.
	ID string

	// Name is the human-readable name for this profile.
	Name string

	// Birth is the civil birth instant.
	Birth CivilTime

	// Location is the birthplace.
	Location Location

	// PlaceName is an optional free-text birthplace label.
	PlaceName string

	// Notes is optional free text.
	Notes string

	// CreatedAt is when the profile was created.
	CreatedAt time.Time

	// UpdatedAt is when the profile was last updated.
	UpdatedAt time.Time
}

// DisplayName returns the profile name with its place if one is set.
// If the place is already part of the name, it is not appended again.
func (p *BirthProfile) DisplayName() string {
	if p.PlaceName != "" && !strings.Contains(p.Name, p.PlaceName) {
		return p.Name + " (" + p.PlaceName + ")"
	}
	return p.Name
}

// Request builds a chart request from the profile.
func (p *BirthProfile) Request(systems []HouseSystem, node NodeMode) ChartRequest {
	return ChartRequest{
		Birth:        p.Birth,
		Location:     p.Location,
		HouseSystems: systems,
		NodeMode:     node,
	}
}
