// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
)

// feature is a genre 1-gram (second == "") or an adjacent 2-gram.
// Tokens are never empty, so the two kinds cannot collide.
type feature struct {
	first  string
	second string
}

func (f feature) String() string {
	if f.second == "" {
		return f.first
	}
	return f.first + " " + f.second
}

// movieFeatures returns the 1-grams and 2-grams of one tokenized genre list,
// with repetitions.
func movieFeatures(tokens []string) []feature {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]feature, 0, 2*len(tokens)-1)
	for _, t := range tokens {
		out = append(out, feature{first: t})
	}
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, feature{first: tokens[i], second: tokens[i+1]})
	}
	return out
}

// vocabulary maps every feature seen in the catalog to a column.
type vocabulary struct {
	features []feature
	columns  map[feature]int
}

func (v *vocabulary) size() int { return len(v.features) }

// buildVocabulary collects the features of all movies, sorted so column
// assignment does not depend on map iteration order.
func buildVocabulary(tokens [][]string) *vocabulary {
	seen := make(map[feature]struct{})
	for _, ts := range tokens {
		for _, f := range movieFeatures(ts) {
			seen[f] = struct{}{}
		}
	}

	features := make([]feature, 0, len(seen))
	for f := range seen {
		features = append(features, f)
	}
	sort.Slice(features, func(i, j int) bool {
		if features[i].first != features[j].first {
			return features[i].first < features[j].first
		}
		return features[i].second < features[j].second
	})

	columns := make(map[feature]int, len(features))
	for i, f := range features {
		columns[f] = i
	}
	return &vocabulary{features: features, columns: columns}
}

// vectorize encodes every movie as a row of feature counts. It returns nil
// when there are no rows or no features, since gonum rejects empty matrices.
func vectorize(tokens [][]string, vocab *vocabulary) *mat.Dense {
	if len(tokens) == 0 || vocab.size() == 0 {
		return nil
	}

	x := mat.NewDense(len(tokens), vocab.size(), nil)
	for i, ts := range tokens {
		for _, f := range movieFeatures(ts) {
			col := vocab.columns[f]
			x.Set(i, col, x.At(i, col)+1)
		}
	}
	return x
}

// tokenize parses the genre string of every movie.
func tokenize(movies []catalog.Movie) [][]string {
	tokens := make([][]string, len(movies))
	for i, m := range movies {
		tokens[i] = m.GenreTags()
	}
	return tokens
}
