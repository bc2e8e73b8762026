// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
	"github.com/ThreeBlackShirts/movieshelf/internal/logging"
	"github.com/ThreeBlackShirts/movieshelf/internal/recommend"
)

type recommendOptions struct {
	catalogFile string
	k           int
	policy      string
	asJSON      bool
}

// newRecommendCmd creates the "movieshelf recommend" subcommand.
func newRecommendCmd(store *storeFlags) *cobra.Command {
	var opts recommendOptions

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "List the movies most similar to a title",
		Long:  "Rank every catalog movie by genre similarity to <title>.\nThe catalog comes from --catalog when given, otherwise from the configured store.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, closeFn, err := recommendLoader(store, opts.catalogFile)
			if err != nil {
				return fmt.Errorf("recommend: %w", err)
			}
			defer closeFn()

			policy, err := recommend.ParseDuplicatePolicy(opts.policy)
			if err != nil {
				return fmt.Errorf("recommend: %w", err)
			}
			cfg := recommend.DefaultConfig()
			cfg.DuplicatePolicy = policy
			if opts.k > cfg.MaxK {
				cfg.MaxK = opts.k
			}

			engine, err := recommend.NewEngine(cfg, loader, logging.Logger())
			if err != nil {
				return fmt.Errorf("recommend: %w", err)
			}

			matches, err := engine.RecommendN(context.Background(), args[0], opts.k)
			if err != nil {
				return fmt.Errorf("recommend %q: %w", args[0], err)
			}

			if opts.asJSON {
				return writeMatchesJSON(cmd.OutOrStdout(), matches)
			}
			return writeMatchesTable(cmd.OutOrStdout(), matches)
		},
	}

	cmd.Flags().StringVar(&opts.catalogFile, "catalog", "", "read the catalog from a YAML/JSON fixture instead of the store")
	cmd.Flags().IntVar(&opts.k, "k", recommend.DefaultK, "number of results")
	cmd.Flags().StringVar(&opts.policy, "duplicates", string(recommend.DuplicateReject), "duplicate title policy (reject or first)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the poster array the HTTP endpoint returns")
	return cmd
}

// recommendLoader picks the fixture file or the configured store.
func recommendLoader(store *storeFlags, fixture string) (recommend.CatalogLoader, func(), error) {
	if fixture != "" {
		movies, err := catalog.ReadFixtureFile(fixture)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewFixtureLoader(movies), func() {}, nil
	}

	db, _, err := openStore(store)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}

type posterJSON struct {
	PosterRef string `json:"poster_ref"`
}

func writeMatchesJSON(w io.Writer, matches []recommend.Match) error {
	out := make([]posterJSON, len(matches))
	for i, m := range matches {
		out[i] = posterJSON{PosterRef: m.PosterRef}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeMatchesTable(w io.Writer, matches []recommend.Match) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "No similar movies.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tTITLE\tPOSTER")
	for i, m := range matches {
		fmt.Fprintf(tw, "%d\t%.4f\t%s\t%s\n", i+1, m.Score, m.Title, m.PosterRef)
	}
	return tw.Flush()
}
