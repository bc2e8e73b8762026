// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThreeBlackShirts/movieshelf/internal/config"
	"github.com/ThreeBlackShirts/movieshelf/internal/database"
	"github.com/ThreeBlackShirts/movieshelf/internal/logging"
)

// storeFlags override the catalog store location from the configuration.
type storeFlags struct {
	driver string
	path   string
}

// newRootCmd creates the root movieshelf command with all subcommands attached.
func newRootCmd() *cobra.Command {
	var (
		store    storeFlags
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "movieshelf",
		Short:         "Genre similarity movie recommendations",
		Long:          "movieshelf ranks catalog movies by genre similarity to a title\nand manages the catalog store used by the server.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg := logging.DefaultConfig()
			cfg.Level = logLevel
			cfg.Format = "console"
			cfg.Output = cmd.ErrOrStderr()
			logging.Init(cfg)
		},
	}
	cmd.SetVersionTemplate("movieshelf {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&store.driver, "db-driver", "", "catalog store driver (duckdb or sqlite); overrides DB_DRIVER")
	cmd.PersistentFlags().StringVar(&store.path, "db-path", "", "catalog store path; overrides DUCKDB_PATH")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		newRecommendCmd(&store),
		newSeedCmd(&store),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig loads the layered configuration and applies the store flags.
func loadConfig(flags *storeFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flags.driver != "" {
		cfg.Database.Driver = flags.driver
	}
	if flags.path != "" {
		cfg.Database.Path = flags.path
	}
	return cfg, nil
}

// openStore opens the configured catalog store.
func openStore(flags *storeFlags) (*database.DB, *config.Config, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog store: %w", err)
	}
	return db, cfg, nil
}
