package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

var (
	transitsBirth  birthFlags
	transitsAt     string
	transitsObsLat float64
	transitsObsLon float64
	transitsJSON   bool
)

var transitsCmd = &cobra.Command{
	Use:   "transits [profile]",
	Short: "Compare the current sky with a natal chart",
	Long: `Compare the positions at an instant (default now) with a natal chart.

Aspects are grouped by how long they stay in effect: short term (Moon and
inner planets), regular (Mars to Saturn) and long term (outer planets).
Windows are estimates centred on the snapshot, not computed ingress times.

Pass --observer-lat and --observer-lon (or set observer.* in settings) to
correct the Moon for parallax and show the current angles.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransits,
}

func init() {
	addBirthFlags(transitsCmd, &transitsBirth)
	transitsCmd.Flags().StringVar(&transitsAt, "at", "", "snapshot instant as RFC 3339 or YYYY-MM-DD (default now)")
	transitsCmd.Flags().Float64Var(&transitsObsLat, "observer-lat", 0, "current latitude for topocentric transits")
	transitsCmd.Flags().Float64Var(&transitsObsLon, "observer-lon", 0, "current longitude for topocentric transits")
	transitsCmd.Flags().BoolVar(&transitsJSON, "json", false, "output the snapshot as JSON")
	rootCmd.AddCommand(transitsCmd)
}

func runTransits(cmd *cobra.Command, args []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	req, title, err := resolveBirth(cmd, args, &transitsBirth)
	if err != nil {
		return err
	}
	at, err := parseInstant(transitsAt)
	if err != nil {
		return err
	}

	natal, err := chartService.Natal(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to cast natal chart: %w", err)
	}

	opts := domain.TransitOptions{Now: &at}
	if cmd.Flags().Changed("observer-lat") || cmd.Flags().Changed("observer-lon") {
		obs := domain.Location{Latitude: transitsObsLat, Longitude: transitsObsLon}
		if err := obs.Validate(); err != nil {
			return err
		}
		opts.Observer = &obs
	}

	snap, err := chartService.Transits(cmd.Context(), natal, opts)
	if err != nil {
		return fmt.Errorf("failed to compute transits: %w", err)
	}

	if transitsJSON {
		return outputJSON(cmd, snap)
	}
	printTransits(cmd, title, snap)
	return nil
}

func printTransits(cmd *cobra.Command, title string, snap *domain.TransitSnapshot) {
	header(cmd, fmt.Sprintf("Transits to %s", title))
	frame := "geocentric"
	if snap.Topocentric {
		frame = "topocentric Moon"
	}
	cmd.Printf("%s %s (%s)\n", label(cmd, "At:"), snap.At.Format("2006-01-02 15:04 MST"), frame)
	cmd.Println()

	header(cmd, "Sky")
	printPositions(cmd, snap.Bodies)
	if snap.Angles != nil {
		printAngles(cmd, *snap.Angles)
	}
	cmd.Println()

	if len(snap.Aspects) == 0 {
		cmd.Println("No transits within orb.")
		return
	}

	groups := []struct {
		class domain.TransitClass
		title string
	}{
		{domain.TransitLongTerm, "Long term"},
		{domain.TransitRegular, "Regular"},
		{domain.TransitShortTerm, "Short term"},
	}
	for _, g := range groups {
		aspects := snap.ByClass(g.class)
		if len(aspects) == 0 {
			continue
		}
		header(cmd, g.title)
		for _, a := range aspects {
			state := "separating"
			if a.Applying {
				state = "applying"
			}
			cmd.Printf("  %-9s %-14s natal %-11s orb %.2f° %-10s %s → %s\n",
				a.Transiting.DisplayName(), a.Type, a.Natal.DisplayName(), a.Orb, state,
				a.WindowStart.Format("2006-01-02"), a.WindowEnd.Format("2006-01-02"))
		}
		cmd.Println()
	}
}
