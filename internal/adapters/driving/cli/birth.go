package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// birthFlags are the explicit birth-data flags shared by chart commands.
type birthFlags struct {
	date      string
	clock     string
	utcOffset float64
	latitude  float64
	longitude float64
	elevation float64
}

func addBirthFlags(cmd *cobra.Command, f *birthFlags) {
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&f.clock, "time", "t", "", "local birth time (HH:MM or HH:MM:SS)")
	cmd.Flags().Float64VarP(&f.utcOffset, "utc-offset", "z", 0, "zone offset in hours east of Greenwich")
	cmd.Flags().Float64Var(&f.latitude, "lat", 0, "latitude in degrees, north positive")
	cmd.Flags().Float64Var(&f.longitude, "lon", 0, "longitude in degrees, east positive")
	cmd.Flags().Float64Var(&f.elevation, "elevation", 0, "elevation in metres")
}

// civil parses the flags into a civil time and location.
func (f *birthFlags) civil() (domain.CivilTime, domain.Location, error) {
	birth, err := domain.ParseCivilTime(f.date, f.clock, f.utcOffset)
	if err != nil {
		return domain.CivilTime{}, domain.Location{}, err
	}
	loc := domain.Location{
		Latitude:  f.latitude,
		Longitude: f.longitude,
		Elevation: f.elevation,
	}
	if err := loc.Validate(); err != nil {
		return domain.CivilTime{}, domain.Location{}, err
	}
	return birth, loc, nil
}

// resolveBirth builds a chart request from a profile reference argument or,
// without one, from the birth flags. The returned title names the subject.
func resolveBirth(cmd *cobra.Command, args []string, f *birthFlags) (domain.ChartRequest, string, error) {
	if len(args) > 0 {
		if profileService == nil {
			return domain.ChartRequest{}, "", errors.New("profile service not configured")
		}
		p, err := profileService.Find(cmd.Context(), args[0])
		if err != nil {
			return domain.ChartRequest{}, "", fmt.Errorf("profile %q: %w", args[0], err)
		}
		return p.Request(nil, ""), p.DisplayName(), nil
	}

	if f.date == "" {
		return domain.ChartRequest{}, "", fmt.Errorf("%w: give a profile or --date", domain.ErrInvalidInput)
	}
	birth, loc, err := f.civil()
	if err != nil {
		return domain.ChartRequest{}, "", err
	}
	title := fmt.Sprintf("%s at %.4f, %.4f", birth, loc.Latitude, loc.Longitude)
	return domain.ChartRequest{Birth: birth, Location: loc}, title, nil
}

// parseHouseSystems parses a comma separated list of house systems.
func parseHouseSystems(s string) ([]domain.HouseSystem, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []domain.HouseSystem
	for _, part := range strings.Split(s, ",") {
		h, err := domain.ParseHouseSystem(part)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// parseInstant accepts RFC 3339, "YYYY-MM-DDTHH:MM" or a bare date, all
// read as UTC unless an offset is given. Empty means now.
func parseInstant(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Now().UTC(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: instant %q must be RFC 3339 or YYYY-MM-DD", domain.ErrInvalidInput, v)
}
