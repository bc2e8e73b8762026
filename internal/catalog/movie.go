// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package catalog

import (
	"context"
	"errors"
	"strings"
)

// GenreSeparator separates genre tags in the stored genre string.
const GenreSeparator = ","

// ErrUnavailable indicates the catalog source could not be read.
var ErrUnavailable = errors.New("catalog unavailable")

// Movie is a single catalog row.
type Movie struct {
	// Title is the lookup key. Not guaranteed unique by the store.
	Title string `json:"title" yaml:"title"`

	// PosterRef is an opaque poster URI returned to callers.
	PosterRef string `json:"poster_ref" yaml:"poster"`

	// Genres is the raw comma-separated genre string, e.g. "Horror,Sci-Fi".
	Genres string `json:"genres" yaml:"genres"`

	// Rating orders the catalog at load time.
	Rating float64 `json:"rating" yaml:"rating"`
}

// GenreTags returns the parsed genre tokens of the movie.
func (m Movie) GenreTags() []string {
	return ParseGenres(m.Genres)
}

// Loader fetches the full catalog ordered ascending by rating.
type Loader interface {
	LoadCatalog(ctx context.Context) ([]Movie, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]Movie, error)

// LoadCatalog calls f(ctx).
func (f LoaderFunc) LoadCatalog(ctx context.Context) ([]Movie, error) {
	return f(ctx)
}

// ParseGenres splits a stored genre string into normalized tokens.
// Tokens are trimmed and lower-cased; empty tokens are dropped. Duplicates
// and source order are preserved since both affect the feature counts.
//
//	ParseGenres("Horror, Sci-Fi")  // ["horror", "sci-fi"]
//	ParseGenres(" ,,Drama")        // ["drama"]
func ParseGenres(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, GenreSeparator)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
