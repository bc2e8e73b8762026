// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package database

import (
	"context"
	"fmt"
)

// Column types are spelled so that DuckDB and SQLite both accept them.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		movie_title  VARCHAR NOT NULL,
		movie_poster VARCHAR NOT NULL,
		movie_genres VARCHAR NOT NULL DEFAULT '',
		movie_rate   DOUBLE NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_rate ON movies (movie_rate)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_title ON movies (movie_title)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
