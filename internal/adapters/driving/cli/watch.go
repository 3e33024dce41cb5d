package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/zenith/internal/adapters/driving/tui"
	"github.com/custodia-labs/zenith/internal/core/domain"
)

var (
	watchBirth    birthFlags
	watchInterval time.Duration
	watchObsLat   float64
	watchObsLon   float64
)

// runProgram runs a bubbletea model; tests replace it to avoid a terminal.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

var watchCmd = &cobra.Command{
	Use:   "watch [profile]",
	Short: "Live transit dashboard",
	Long: `Launch a terminal dashboard that recomputes transits to a natal chart
every few seconds.

Controls:
  p/space  - Pause or resume refreshing
  r        - Refresh now
  tab      - Cycle transit class filter
  ↑/k, ↓/j - Scroll aspects
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	addBirthFlags(watchCmd, &watchBirth)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", tui.DefaultInterval, "refresh interval")
	watchCmd.Flags().Float64Var(&watchObsLat, "observer-lat", 0, "current latitude for topocentric transits")
	watchCmd.Flags().Float64Var(&watchObsLon, "observer-lon", 0, "current longitude for topocentric transits")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) (err error) {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	req, title, err := resolveBirth(cmd, args, &watchBirth)
	if err != nil {
		return err
	}

	cfg := tui.Config{
		Request:  req,
		Title:    title,
		Interval: watchInterval,
	}
	if cmd.Flags().Changed("observer-lat") || cmd.Flags().Changed("observer-lon") {
		obs := domain.Location{Latitude: watchObsLat, Longitude: watchObsLon}
		if err := obs.Validate(); err != nil {
			return err
		}
		cfg.Observer = &obs
	}

	app, err := tui.NewApp(&tui.Ports{Chart: chartService}, cfg)
	if err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}
	app.WithContext(cmd.Context())

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in dashboard: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("dashboard panicked: %v", r)
		}
	}()

	if err := runProgram(app); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
