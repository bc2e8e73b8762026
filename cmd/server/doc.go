// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

/*
Package main is the entry point for the MovieShelf server.

MovieShelf answers one question: given a movie title, which catalog movies
have the most similar genres? The answer is a JSON array of poster
references, most similar first.

# Application Architecture

	RootSupervisor ("movieshelf")
	├── DataSupervisor ("data-layer")
	│   └── Index warmer (recommend.warm_interval > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with config file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Catalog store: DuckDB (default) or SQLite, optionally seeded from a fixture
 4. Circuit breaker: gobreaker in front of the catalog store
 5. Recommendation engine: similarity index cache keyed by catalog fingerprint
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
  - Environment variables (HTTP_PORT, DUCKDB_PATH, RECOMMEND_K, ...)
  - Config file (CONFIG_PATH, ./config.yaml, /etc/movieshelf/config.yaml)
  - Built-in defaults

Frequently used variables:

	DB_DRIVER                          duckdb | sqlite
	DUCKDB_PATH                        catalog database file
	CATALOG_SEED_FILE                  YAML fixture loaded into an empty store
	RECOMMEND_K                        results per request (default 15)
	RECOMMEND_DUPLICATE_POLICY         reject | first
	RECOMMEND_LEGACY_EMPTY_ON_MISSING  answer 200 [] for unknown titles
	RECOMMEND_WARM_INTERVAL            background index warm-up period (0 disables)

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to server.shutdown_timeout before the store is closed.

# Example Usage

	export DB_DRIVER=sqlite
	export DUCKDB_PATH=./data/catalog.db
	export CATALOG_SEED_FILE=./testdata/catalog.yaml
	./movieshelf-server

	curl -X POST http://localhost:5000/movie/recommend/Alien
*/
package main
