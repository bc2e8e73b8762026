// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
)

// IndexOptions tunes an index build.
type IndexOptions struct {
	// Parallelism caps concurrent matrix blocks. Zero means GOMAXPROCS.
	Parallelism int
}

// Index is the similarity matrix of one catalog snapshot. It is immutable
// after BuildIndex returns and safe for concurrent use.
type Index struct {
	movies      []catalog.Movie
	fingerprint uint64
	vocab       *vocabulary
	sim         *mat.Dense // nil when the catalog or the vocabulary is empty
	nonzero     []bool
	titles      map[string][]int
	stats       BuildStats
}

// BuildIndex vectorizes the catalog and computes its pairwise similarity
// matrix. The catalog slice is copied.
func BuildIndex(ctx context.Context, movies []catalog.Movie, opts IndexOptions) (*Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	owned := make([]catalog.Movie, len(movies))
	copy(owned, movies)

	tokens := tokenize(owned)
	vocab := buildVocabulary(tokens)

	ix := &Index{
		movies:      owned,
		fingerprint: Fingerprint(owned),
		vocab:       vocab,
		nonzero:     make([]bool, len(owned)),
		titles:      make(map[string][]int, len(owned)),
	}
	for i, m := range owned {
		ix.titles[m.Title] = append(ix.titles[m.Title], i)
	}

	if x := vectorize(tokens, vocab); x != nil {
		ix.nonzero = normalizeRows(x)
		sim, err := cosineMatrix(ctx, x, ix.nonzero, opts.Parallelism)
		if err != nil {
			return nil, fmt.Errorf("compute similarity matrix: %w", err)
		}
		ix.sim = sim
	}

	ix.stats = BuildStats{
		Fingerprint: FingerprintString(ix.fingerprint),
		Movies:      len(owned),
		Vocabulary:  vocab.size(),
		Duration:    time.Since(start),
		BuiltAt:     time.Now(),
	}
	return ix, nil
}

// Len returns the number of movies in the index.
func (ix *Index) Len() int { return len(ix.movies) }

// Fingerprint returns the fingerprint of the indexed catalog.
func (ix *Index) Fingerprint() uint64 { return ix.fingerprint }

// VocabularySize returns the number of genre features.
func (ix *Index) VocabularySize() int { return ix.vocab.size() }

// Features returns the feature names in column order.
func (ix *Index) Features() []string {
	out := make([]string, len(ix.vocab.features))
	for i, f := range ix.vocab.features {
		out[i] = f.String()
	}
	return out
}

// Stats returns the build statistics.
func (ix *Index) Stats() BuildStats { return ix.stats }

// Movie returns the catalog row.
func (ix *Index) Movie(row int) catalog.Movie { return ix.movies[row] }

// Similarity returns S[i][j].
func (ix *Index) Similarity(i, j int) float64 {
	if ix.sim == nil {
		return 0
	}
	return ix.sim.At(i, j)
}

// Lookup resolves a title (exact, case-sensitive) to catalog rows.
func (ix *Index) Lookup(title string) Lookup {
	rows := ix.titles[title]
	switch len(rows) {
	case 0:
		return Lookup{Status: LookupNotFound}
	case 1:
		return Lookup{Status: LookupFound, Rows: rows}
	default:
		out := make([]int, len(rows))
		copy(out, rows)
		return Lookup{Status: LookupAmbiguous, Rows: out}
	}
}

// Rank orders every row except row itself and the excluded rows by
// descending similarity to row, ties broken by ascending row index, and
// returns the first k. A non-positive k returns every candidate.
func (ix *Index) Rank(row, k int, exclude ...int) []Match {
	skip := make(map[int]struct{}, len(exclude)+1)
	skip[row] = struct{}{}
	for _, r := range exclude {
		skip[r] = struct{}{}
	}

	candidates := make([]Match, 0, len(ix.movies))
	for j, m := range ix.movies {
		if _, ok := skip[j]; ok {
			continue
		}
		candidates = append(candidates, Match{
			Row:       j,
			Title:     m.Title,
			PosterRef: m.PosterRef,
			Score:     ix.Similarity(row, j),
		})
	}

	// candidates are in ascending row order; a stable sort keeps it for ties.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})

	if k > 0 && len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

// Recommend returns the k movies most similar to target. k <= 0 selects
// DefaultK.
//
// A catalog with fewer than two movies, or a target with no genre features,
// yields an empty result without error. Otherwise a missing title returns
// ErrNotFound and a duplicated title is resolved by policy.
func (ix *Index) Recommend(target string, k int, policy DuplicatePolicy) ([]Match, error) {
	if ix.Len() < 2 {
		return []Match{}, nil
	}
	if k <= 0 {
		k = DefaultK
	}

	lookup := ix.Lookup(target)
	switch lookup.Status {
	case LookupNotFound:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, target)
	case LookupAmbiguous:
		if policy != DuplicateFirst {
			return nil, &AmbiguousTargetError{Title: target, Rows: lookup.Rows}
		}
	}

	row := lookup.Rows[0]
	if !ix.nonzero[row] {
		return []Match{}, nil
	}
	return ix.Rank(row, k, lookup.Rows...), nil
}
