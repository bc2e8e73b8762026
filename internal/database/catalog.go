// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
	"github.com/ThreeBlackShirts/movieshelf/internal/logging"
	"github.com/ThreeBlackShirts/movieshelf/internal/metrics"
)

const moviesTable = "movies"

// Secondary keys make the order total, so equal ratings load identically
// every time and the similarity index fingerprint stays stable.
const selectCatalogSQL = `SELECT movie_title, movie_poster, movie_genres, movie_rate
FROM movies
ORDER BY movie_rate, movie_title, movie_poster`

const insertMovieSQL = `INSERT INTO movies (movie_title, movie_poster, movie_genres, movie_rate) VALUES (?, ?, ?, ?)`

// acquire checks out a dedicated connection from the pool. The caller must
// call release exactly once.
func (db *DB) acquire(ctx context.Context) (*sql.Conn, func(), error) {
	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquire connection: %w", err)
	}
	metrics.DBConnectionsInUse.Inc()
	release := func() {
		metrics.DBConnectionsInUse.Dec()
		closeWithLog(conn, "connection")
	}
	return conn, release, nil
}

// queryContext bounds ctx by the configured query timeout.
func (db *DB) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.cfg.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.cfg.QueryTimeout)
}

// LoadCatalog returns every movie ordered ascending by rating.
// NULL genres load as an empty string and NULL ratings as zero.
func (db *DB) LoadCatalog(ctx context.Context) (movies []catalog.Movie, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("select", moviesTable, time.Since(start), err)
	}()

	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	conn, release, err := db.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := conn.QueryContext(ctx, selectCatalogSQL)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer closeQuietly(rows)

	movies = make([]catalog.Movie, 0, 64)
	for rows.Next() {
		var (
			m      catalog.Movie
			genres sql.NullString
			rate   sql.NullFloat64
		)
		if err := rows.Scan(&m.Title, &m.PosterRef, &genres, &rate); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		m.Genres = genres.String
		m.Rating = rate.Float64
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}

	return movies, nil
}

// Count returns the number of stored movies.
func (db *DB) Count(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("count", moviesTable, time.Since(start), err)
	}()

	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	conn, release, err := db.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

// ReplaceCatalog swaps the stored catalog for movies in one transaction.
// Readers see either the old or the new catalog, never a mix.
func (db *DB) ReplaceCatalog(ctx context.Context, movies []catalog.Movie) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("replace", moviesTable, time.Since(start), err)
	}()

	conn, release, err := db.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // Explicitly ignore error - the original error is returned
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM movies"); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertMovieSQL)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	for i := range movies {
		m := &movies[i]
		if _, err = stmt.ExecContext(ctx, m.Title, m.PosterRef, m.Genres, m.Rating); err != nil {
			return fmt.Errorf("insert movie %q: %w", m.Title, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}

	logging.Info().Int("movies", len(movies)).Msg("Catalog replaced")
	return nil
}

// SeedFromFile replaces the catalog with the contents of a YAML or JSON
// fixture and returns the number of movies written.
func (db *DB) SeedFromFile(ctx context.Context, path string) (int, error) {
	movies, err := catalog.ReadFixtureFile(path)
	if err != nil {
		return 0, err
	}
	if err := db.ReplaceCatalog(ctx, movies); err != nil {
		return 0, err
	}
	return len(movies), nil
}

// SeedIfEmpty seeds from path only when the store holds no movies.
// It reports whether seeding happened.
func (db *DB) SeedIfEmpty(ctx context.Context, path string) (bool, error) {
	n, err := db.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		logging.Debug().Int("movies", n).Msg("Catalog already populated, skipping seed")
		return false, nil
	}
	if _, err := db.SeedFromFile(ctx, path); err != nil {
		return false, err
	}
	return true, nil
}
