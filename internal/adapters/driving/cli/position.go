package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

var (
	positionAt   string
	positionJSON bool
)

var positionCmd = &cobra.Command{
	Use:   "position [body]",
	Short: "Show one body's position",
	Long: `Show the apparent geocentric ecliptic position of a body.

Bodies: sun, moon, mercury, venus, mars, jupiter, saturn, uranus, neptune,
pluto, chiron, ceres, pallas, juno, vesta, north_node, south_node, lilith.`,
	Args: cobra.ExactArgs(1),
	RunE: runPosition,
}

func init() {
	positionCmd.Flags().StringVar(&positionAt, "at", "", "instant as RFC 3339 or YYYY-MM-DD (default now)")
	positionCmd.Flags().BoolVar(&positionJSON, "json", false, "output the position as JSON")
	rootCmd.AddCommand(positionCmd)
}

func runPosition(cmd *cobra.Command, args []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	body, err := domain.ParseBody(args[0])
	if err != nil {
		return err
	}
	at, err := parseInstant(positionAt)
	if err != nil {
		return err
	}

	pos, err := chartService.Position(cmd.Context(), body, at)
	if err != nil {
		return fmt.Errorf("failed to compute position: %w", err)
	}

	if positionJSON {
		return outputJSON(cmd, pos)
	}

	header(cmd, fmt.Sprintf("%s at %s", body.DisplayName(), at.Format("2006-01-02 15:04 MST")))
	cmd.Printf("  %s %s (%.4f°)\n", label(cmd, "Longitude:"), domain.FormatZodiac(pos.Longitude), pos.Longitude)
	cmd.Printf("  %s %+.4f°\n", label(cmd, "Latitude: "), pos.Latitude)
	if pos.Distance > 0 {
		cmd.Printf("  %s %.6f AU\n", label(cmd, "Distance: "), pos.Distance)
	}
	if m := motion(*pos); m != "" {
		cmd.Printf("  %s %s\n", label(cmd, "Motion:   "), m)
	}
	cmd.Printf("  %s %s\n", label(cmd, "Precision:"), pos.Precision)
	if pos.Note != "" {
		warn(cmd, "  %s", pos.Note)
	}
	return nil
}
