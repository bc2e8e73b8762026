// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// K is the number of recommendations returned per request.
	// Default: 15.
	K int `json:"k"`

	// MaxK caps caller-supplied k values.
	// Default: 100.
	MaxK int `json:"max_k"`

	// DuplicatePolicy decides how a title shared by several movies is handled.
	// Default: reject.
	DuplicatePolicy DuplicatePolicy `json:"duplicate_policy"`

	// CacheSize is the number of catalog snapshots whose index is kept.
	// Default: 4.
	CacheSize int `json:"cache_size"`

	// Parallelism caps concurrent similarity blocks. Zero means GOMAXPROCS.
	Parallelism int `json:"parallelism"`

	// BuildTimeoutBase is the fixed part of the index build budget.
	// Default: 5s.
	BuildTimeoutBase time.Duration `json:"build_timeout_base"`

	// BuildTimeoutPerMovie is added to the budget for every catalog row.
	// Default: 1ms.
	BuildTimeoutPerMovie time.Duration `json:"build_timeout_per_movie"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		K:                    DefaultK,
		MaxK:                 100,
		DuplicatePolicy:      DuplicateReject,
		CacheSize:            4,
		Parallelism:          0,
		BuildTimeoutBase:     5 * time.Second,
		BuildTimeoutPerMovie: time.Millisecond,
	}
}

// BuildTimeout returns the build budget for a catalog of n movies.
func (c *Config) BuildTimeout(n int) time.Duration {
	return c.BuildTimeoutBase + time.Duration(n)*c.BuildTimeoutPerMovie
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("k must be positive, got %d", c.K)
	}
	if c.MaxK < c.K {
		return fmt.Errorf("max_k (%d) must be >= k (%d)", c.MaxK, c.K)
	}
	if _, err := ParseDuplicatePolicy(string(c.DuplicatePolicy)); err != nil {
		return err
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must be non-negative, got %d", c.Parallelism)
	}
	if c.BuildTimeoutBase <= 0 {
		return fmt.Errorf("build_timeout_base must be positive, got %v", c.BuildTimeoutBase)
	}
	if c.BuildTimeoutPerMovie < 0 {
		return fmt.Errorf("build_timeout_per_movie must be non-negative, got %v", c.BuildTimeoutPerMovie)
	}
	return nil
}
