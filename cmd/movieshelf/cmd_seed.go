// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newSeedCmd creates the "movieshelf seed" subcommand.
func newSeedCmd(store *storeFlags) *cobra.Command {
	var ifEmpty bool

	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Replace the catalog with the movies of a fixture file",
		Long:  "Load a YAML or JSON catalog fixture into the configured store.\nThe existing catalog is replaced in a single transaction.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openStore(store)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			defer db.Close()

			ctx := context.Background()
			if ifEmpty {
				seeded, err := db.SeedIfEmpty(ctx, args[0])
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				if !seeded {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog not empty, nothing seeded")
					return nil
				}
				n, err := db.Count(ctx)
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d movies from %s\n", n, args[0])
				return nil
			}

			n, err := db.SeedFromFile(ctx, args[0])
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d movies from %s\n", n, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&ifEmpty, "if-empty", false, "only seed when the catalog has no movies")
	return cmd
}
