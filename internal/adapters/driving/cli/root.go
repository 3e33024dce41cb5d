// Package cli implements the zenith command line with cobra. Commands talk
// only to driving ports; the concrete services are wired by the binary
// through SetBootstrap, or directly with SetServices in tests.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zenith/internal/core/ports/driving"
	"github.com/custodia-labs/zenith/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services consumed by the commands.
var (
	chartService    driving.ChartService
	profileService  driving.ProfileService
	settingsService driving.SettingsService
)

// Global flags.
var (
	verbose   bool
	configDir string
	dataDir   string
)

// Options carries the global flags to the bootstrap hook.
type Options struct {
	Verbose   bool
	ConfigDir string
	DataDir   string
}

// Services bundles the driving ports the commands call.
type Services struct {
	Chart    driving.ChartService
	Profile  driving.ProfileService
	Settings driving.SettingsService
}

// Bootstrap builds services from the global options. The returned closer
// releases whatever the services hold open; it may be nil.
type Bootstrap func(opts Options) (Services, func() error, error)

var (
	bootstrap     Bootstrap
	closeServices func() error
)

var rootCmd = &cobra.Command{
	Use:   "zenith",
	Short: "Ephemeris and natal chart engine",
	Long: `zenith computes planetary positions, natal charts, transits and
progressions from analytical ephemerides. Everything is computed locally;
only birth profiles are stored, never the charts derived from them.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print ephemeris and fallback diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.zenith)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "profile database directory (default ~/.zenith/data)")
}

// SetBootstrap installs the hook that wires services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly, bypassing the bootstrap hook.
func SetServices(s Services) {
	chartService = s.Chart
	profileService = s.Profile
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, closing any services the
// bootstrap opened once the command returns.
func ExecuteContext(ctx context.Context) error {
	defer func() {
		if closeServices != nil {
			if err := closeServices(); err != nil {
				logger.Warn("closing services: %v", err)
			}
			closeServices = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || chartService != nil {
		return nil
	}

	services, closer, err := bootstrap(Options{
		Verbose:   verbose,
		ConfigDir: configDir,
		DataDir:   dataDir,
	})
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(services)
	closeServices = closer
	return nil
}
