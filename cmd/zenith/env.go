package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/custodia-labs/zenith/internal/adapters/driving/cli"
)

// environment holds the variables that stand in for unset global flags.
type environment struct {
	ConfigDir string `env:"ZENITH_CONFIG_DIR"`
	DataDir   string `env:"ZENITH_DATA_DIR"`
	Verbose   bool   `env:"ZENITH_VERBOSE"`
}

// applyEnvironment fills options the command line left empty. Flags win.
func applyEnvironment(opts cli.Options) (cli.Options, error) {
	var e environment
	if err := env.Parse(&e); err != nil {
		return opts, fmt.Errorf("parse env: %w", err)
	}
	if opts.ConfigDir == "" {
		opts.ConfigDir = e.ConfigDir
	}
	if opts.DataDir == "" {
		opts.DataDir = e.DataDir
	}
	opts.Verbose = opts.Verbose || e.Verbose
	return opts, nil
}
