// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database)
type Config struct {
	Database   DatabaseConfig   `koanf:"database"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Breaker    BreakerConfig    `koanf:"breaker"`
	Logging    LoggingConfig    `koanf:"logging"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// DatabaseConfig holds catalog store settings
type DatabaseConfig struct {
	Driver       string        `koanf:"driver"`         // "duckdb" or "sqlite"
	Path         string        `koanf:"path"`           // Database file path
	MaxMemory    string        `koanf:"max_memory"`     // DuckDB memory limit
	Threads      int           `koanf:"threads"`        // DuckDB threads (0 = use NumCPU)
	MaxOpenConns int           `koanf:"max_open_conns"` // Pool size (0 = use NumCPU)
	QueryTimeout time.Duration `koanf:"query_timeout"`  // Per-query timeout for catalog loads
	SeedFile     string        `koanf:"seed_file"`      // Optional fixture loaded into an empty store at startup
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendConfig holds similarity engine and endpoint settings
type RecommendConfig struct {
	K                    int           `koanf:"k"`
	MaxK                 int           `koanf:"max_k"`
	DuplicatePolicy      string        `koanf:"duplicate_policy"` // "reject" or "first"
	CacheSize            int           `koanf:"cache_size"`       // Catalog snapshots whose index is kept
	Parallelism          int           `koanf:"parallelism"`      // 0 = GOMAXPROCS
	BuildTimeoutBase     time.Duration `koanf:"build_timeout_base"`
	BuildTimeoutPerMovie time.Duration `koanf:"build_timeout_per_movie"`
	RequestTimeout       time.Duration `koanf:"request_timeout"`
	MaxTitleLength       int           `koanf:"max_title_length"`
	LegacyEmptyOnMissing bool          `koanf:"legacy_empty_on_missing"` // Answer 200 [] instead of 404 for unknown titles
	WarmInterval         time.Duration `koanf:"warm_interval"`           // 0 disables background warm-up
}

// BreakerConfig holds the catalog store circuit breaker settings
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SupervisorConfig holds suture supervisor tree settings
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// Load reads configuration from defaults, an optional config file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
