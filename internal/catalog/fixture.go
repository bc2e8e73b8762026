// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Fixture is the on-disk catalog format. JSON documents are accepted too
// since YAML is a superset of JSON.
//
//	movies:
//	  - title: Alien
//	    poster: https://img.example/alien.jpg
//	    genres: Horror,Sci-Fi
//	    rating: 8.5
type Fixture struct {
	Movies []Movie `yaml:"movies"`
}

// ReadFixture decodes a catalog fixture and validates its rows.
func ReadFixture(r io.Reader) ([]Movie, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return []Movie{}, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	for i, m := range f.Movies {
		if m.Title == "" {
			return nil, fmt.Errorf("fixture row %d: title is required", i)
		}
		if m.PosterRef == "" {
			return nil, fmt.Errorf("fixture row %d (%q): poster is required", i, m.Title)
		}
	}
	if f.Movies == nil {
		return []Movie{}, nil
	}
	return f.Movies, nil
}

// ReadFixtureFile reads a catalog fixture from path.
func ReadFixtureFile(path string) ([]Movie, error) {
	file, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer file.Close()

	movies, err := ReadFixture(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return movies, nil
}

// SortByRating orders movies ascending by rating, the order the store
// returns. Ties keep their relative order.
func SortByRating(movies []Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Rating < movies[j].Rating
	})
}

// FixtureLoader serves an in-memory catalog as a Loader.
type FixtureLoader struct {
	movies []Movie
}

// NewFixtureLoader returns a Loader over a copy of movies in rating order.
func NewFixtureLoader(movies []Movie) *FixtureLoader {
	sorted := make([]Movie, len(movies))
	copy(sorted, movies)
	SortByRating(sorted)
	return &FixtureLoader{movies: sorted}
}

// LoadCatalog returns a copy of the fixture catalog.
func (l *FixtureLoader) LoadCatalog(ctx context.Context) ([]Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Movie, len(l.movies))
	copy(out, l.movies)
	return out, nil
}
