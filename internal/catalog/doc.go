// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

// Package catalog defines the movie catalog consumed by the similarity ranker.
//
// The catalog is a read-only, ordered snapshot of every movie known to the
// service. Row order is the load order (ascending rating) and is the row
// index used by the similarity matrix, so a Loader must return the same
// order for the same underlying data.
//
// # Components
//
//   - Movie and Loader: the record type and the source abstraction
//   - ParseGenres: splits the stored comma-separated genre string
//   - BreakerLoader: wraps any Loader with a circuit breaker (sony/gobreaker)
//     and reports failures as ErrUnavailable
//   - ReadFixture / FixtureLoader: YAML or JSON catalog files used for
//     seeding the store, for the CLI and in tests
//
// # Error Handling
//
// Loader failures (store unreachable, query errors, open circuit) surface as
// errors wrapping ErrUnavailable. An empty catalog is not an error.
package catalog
