// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

/*
Package config provides centralized configuration management for MovieShelf.

# Configuration Sources

Configuration is layered with Koanf v2, later sources overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - An optional YAML file: $CONFIG_PATH, ./config.yaml or /etc/movieshelf/config.yaml
  - Mapped environment variables

# Environment Variables

Catalog store (DatabaseConfig):
  - DB_DRIVER: duckdb or sqlite (default: duckdb)
  - DUCKDB_PATH / DB_PATH: Database file (default: /data/movieshelf.duckdb)
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS: DuckDB tuning
  - DB_MAX_OPEN_CONNS: Pool size (default: CPU count)
  - DB_QUERY_TIMEOUT: Catalog query timeout (default: 10s)
  - CATALOG_SEED_FILE: Fixture loaded into an empty store at startup

HTTP server (ServerConfig):
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:5000)
  - HTTP_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Recommendations (RecommendConfig):
  - RECOMMEND_K: Results per request (default: 15)
  - RECOMMEND_MAX_K: Upper bound for caller-supplied k (default: 100)
  - RECOMMEND_DUPLICATE_POLICY: reject or first (default: reject)
  - RECOMMEND_CACHE_SIZE: Cached catalog snapshots (default: 4)
  - RECOMMEND_PARALLELISM: Matrix workers (default: GOMAXPROCS)
  - RECOMMEND_BUILD_TIMEOUT_BASE, RECOMMEND_BUILD_TIMEOUT_PER_MOVIE
  - RECOMMEND_REQUEST_TIMEOUT, RECOMMEND_MAX_TITLE_LENGTH
  - RECOMMEND_LEGACY_EMPTY_ON_MISSING: Answer 200 [] for unknown titles
  - RECOMMEND_WARM_INTERVAL: Background index warm-up period (0 disables)

Circuit breaker (BreakerConfig):
  - BREAKER_MAX_REQUESTS, BREAKER_INTERVAL, BREAKER_TIMEOUT, BREAKER_FAILURE_THRESHOLD

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line

Supervisor (SupervisorConfig):
  - SUPERVISOR_FAILURE_THRESHOLD, SUPERVISOR_FAILURE_DECAY,
    SUPERVISOR_FAILURE_BACKOFF, SUPERVISOR_SHUTDOWN_TIMEOUT
*/
package config
