// Command zenith is the ephemeris and natal chart engine CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	configfile "github.com/custodia-labs/zenith/internal/adapters/driven/config/file"
	ephemerisfile "github.com/custodia-labs/zenith/internal/adapters/driven/ephemeris/file"
	"github.com/custodia-labs/zenith/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/zenith/internal/adapters/driving/cli"
	"github.com/custodia-labs/zenith/internal/astro/ephemeris"
	"github.com/custodia-labs/zenith/internal/core/services"
	"github.com/custodia-labs/zenith/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetBootstrap(bootstrap)
	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (cli.Services, func() error, error) {
	opts, err := applyEnvironment(opts)
	if err != nil {
		return cli.Services{}, nil, err
	}
	if opts.Verbose {
		logger.SetVerbose(true)
	}

	configStore, err := configfile.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	// Long-running commands (watch, mcp serve) see edits to config.toml.
	// Ephemeris paths are read once below and need a restart.
	watchCtx, stopWatch := context.WithCancel(context.Background())
	go func() {
		err := configStore.Watch(watchCtx, func(err error) {
			if err != nil {
				logger.Warn("reloading %s: %v", configStore.Path(), err)
				return
			}
			logger.Debug("reloaded %s", configStore.Path())
		})
		if err != nil {
			logger.Warn("config changes will not be picked up: %v", err)
		}
	}()
	fail := func(err error) (cli.Services, func() error, error) {
		stopWatch()
		return cli.Services{}, nil, err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fail(fmt.Errorf("reading settings: %w", err))
	}

	source, err := ephemerisfile.NewSource(settings.Ephemeris.SeriesDir, settings.Ephemeris.ElementsFile)
	if err != nil {
		return fail(fmt.Errorf("opening ephemeris data: %w", err))
	}
	eph, err := ephemeris.Open(source)
	if err != nil {
		return fail(fmt.Errorf("initialising ephemeris: %w", err))
	}
	logger.Debug("ephemeris ready (series=%q, elements=%q)",
		settings.Ephemeris.SeriesDir, settings.Ephemeris.ElementsFile)

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return fail(fmt.Errorf("opening profile database: %w", err))
	}
	profileStore := store.ProfileStore()
	logger.Debug("profile database at %s", store.Path())

	closer := func() error {
		stopWatch()
		return store.Close()
	}

	return cli.Services{
		Chart:    services.NewChartService(eph, settingsService, profileStore),
		Profile:  services.NewProfileService(profileStore),
		Settings: settingsService,
	}, closer, nil
}
