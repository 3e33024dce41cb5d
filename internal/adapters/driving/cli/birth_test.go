package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

func TestParseHouseSystems(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []domain.HouseSystem
		wantErr bool
	}{
		{"empty keeps settings", "", nil, false},
		{"blank keeps settings", "  ", nil, false},
		{"single", "placidus", []domain.HouseSystem{domain.HouseSystemPlacidus}, false},
		{"list keeps order", "whole_sign,equal", []domain.HouseSystem{domain.HouseSystemWholeSign, domain.HouseSystemEqual}, false},
		{"unknown", "equal,koch", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHouseSystems(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date", "2024-03-20", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{"date and minutes", "2024-03-20T06:30", time.Date(2024, 3, 20, 6, 30, 0, 0, time.UTC)},
		{"space separated", "2024-03-20 06:30", time.Date(2024, 3, 20, 6, 30, 0, 0, time.UTC)},
		{"rfc3339 offset converted to UTC", "2024-03-20T08:30:00+02:00", time.Date(2024, 3, 20, 6, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInstant(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseInstant_EmptyIsNow(t *testing.T) {
	before := time.Now().UTC()
	got, err := parseInstant("")
	require.NoError(t, err)
	assert.False(t, got.Before(before.Add(-time.Second)))
}

func TestParseInstant_Invalid(t *testing.T) {
	_, err := parseInstant("20/03/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBirthFlags_Civil(t *testing.T) {
	f := birthFlags{date: "1815-12-10", clock: "13:00", utcOffset: 0, latitude: 51.5072, longitude: -0.1276}

	birth, loc, err := f.civil()

	require.NoError(t, err)
	assert.Equal(t, domain.CivilTime{Year: 1815, Month: 12, Day: 10, Hour: 13}, birth)
	assert.Equal(t, domain.Location{Latitude: 51.5072, Longitude: -0.1276}, loc)
}

func TestBirthFlags_CivilRejectsLongitude(t *testing.T) {
	f := birthFlags{date: "1815-12-10", longitude: 181}

	_, _, err := f.civil()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
