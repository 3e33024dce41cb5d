package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure chart defaults, ephemeris data locations and the
default transit observer.

Use subcommands to view or change individual settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting by key.

Keys:
  chart.house_systems    comma separated: placidus, equal, whole_sign
  chart.progression      solar_arc or naive_date
  chart.node             mean or true
  ephemeris.series_dir   directory of <body>.toml series tables, or "builtin"
  ephemeris.elements_file  TOML file overriding the orbital element catalogue
  observer.latitude      default transit observer latitude
  observer.longitude     default transit observer longitude
  observer.elevation     default transit observer elevation in metres`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Chart]")
	systems := make([]string, len(settings.Chart.HouseSystems))
	for i, h := range settings.Chart.HouseSystems {
		systems[i] = h.String()
	}
	cmd.Printf("  House systems: %s\n", strings.Join(systems, ", "))
	cmd.Printf("  Progression: %s\n", settings.Chart.Progression.Description())
	cmd.Printf("  Lunar node: %s\n", settings.Chart.NodeMode)
	cmd.Println()

	cmd.Println("[Ephemeris]")
	if settings.Ephemeris.SeriesDir != "" {
		cmd.Printf("  Series tables: %s\n", settings.Ephemeris.SeriesDir)
	} else {
		cmd.Printf("  Series tables: (none, orbital elements only)\n")
	}
	if settings.Ephemeris.ElementsFile != "" {
		cmd.Printf("  Elements file: %s\n", settings.Ephemeris.ElementsFile)
	} else {
		cmd.Printf("  Elements file: (built-in catalogue)\n")
	}
	cmd.Println()

	cmd.Println("[Observer]")
	if obs := settings.Observer; obs != nil {
		cmd.Printf("  Location: %.4f, %.4f\n", obs.Latitude, obs.Longitude)
		if obs.Elevation != 0 {
			cmd.Printf("  Elevation: %.0f m\n", obs.Elevation)
		}
	} else {
		cmd.Printf("  Location: (not set, transits are geocentric)\n")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'zenith settings set' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w (known keys: %s)",
			key, err, strings.Join(settingsService.Keys(), ", "))
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}
