// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

// Package recommend ranks movies by genre similarity.
//
// # Algorithm
//
// Every movie's genre string is tokenized (see catalog.ParseGenres) and
// encoded as a count vector over a vocabulary of genre 1-grams and adjacent
// 2-grams built from the whole catalog. Rows are L2-normalized and the full
// pairwise cosine matrix S = X̂·X̂ᵀ is computed with gonum, in row blocks on a
// bounded errgroup. For a target row, every other movie is ordered by
// descending similarity with ties broken by ascending catalog index, and the
// first k rows that are not the target are returned.
//
// # Determinism
//
// The vocabulary is sorted, the catalog order is fixed by the loader and the
// sort is stable, so the same catalog and target always produce the same
// output.
//
// # Caching
//
// An Index is immutable once built. The Engine keys built indexes by an
// xxhash fingerprint of the catalog contents and keeps the most recent ones
// in an LRU. Concurrent requests for a snapshot that is not cached yet share
// a single build.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), loader, logger)
//	if err != nil {
//	    return err
//	}
//
//	matches, err := engine.Recommend(ctx, "Alien")
//	switch {
//	case errors.Is(err, recommend.ErrNotFound):
//	    // 404
//	case errors.Is(err, recommend.ErrAmbiguousTarget):
//	    // 409
//	}
//
// For one-off use without an engine, Recommend computes poster references
// directly from a catalog slice.
package recommend
