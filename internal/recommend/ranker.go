// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"context"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
)

// Recommend returns the poster references of the k movies in movies most
// similar to target, most similar first. k <= 0 selects DefaultK and
// duplicated titles are rejected.
//
// It builds a fresh index on every call; long-running callers should use an
// Engine instead.
func Recommend(ctx context.Context, movies []catalog.Movie, target string, k int) ([]string, error) {
	if len(movies) < 2 {
		return []string{}, nil
	}

	ix, err := BuildIndex(ctx, movies, IndexOptions{})
	if err != nil {
		return nil, err
	}

	matches, err := ix.Recommend(target, k, DuplicateReject)
	if err != nil {
		return nil, err
	}
	return PosterRefs(matches), nil
}
