// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

// Package database is the relational catalog store.
//
// The store holds a single table:
//
//	movies(movie_title, movie_poster, movie_genres, movie_rate)
//
// DuckDB (github.com/duckdb/duckdb-go/v2) is the default driver. SQLite
// (modernc.org/sqlite, pure Go) is available for deployments and tests that
// cannot use cgo.
//
// # Connections
//
// DB keeps a pooled *sql.DB. Each call to LoadCatalog, Count or
// ReplaceCatalog checks out its own *sql.Conn, bounds it by the configured
// query timeout, and returns it to the pool on every exit path. Nothing is
// shared between requests except the pool itself.
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	movies, err := db.LoadCatalog(ctx) // ascending by movie_rate
//
// DB satisfies catalog.Loader and is normally wrapped in a
// catalog.BreakerLoader before reaching the recommendation engine.
//
// # Seeding
//
// ReplaceCatalog and SeedFromFile exist for development and the
// "movieshelf seed" command; the service itself only reads.
package database
