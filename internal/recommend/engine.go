// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
	"github.com/ThreeBlackShirts/movieshelf/internal/logging"
	"github.com/ThreeBlackShirts/movieshelf/internal/metrics"
)

// CatalogLoader supplies the current catalog snapshot.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]catalog.Movie, error)
}

// Engine serves recommendations against the live catalog, reusing the
// similarity index for as long as the catalog contents stay the same.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	loader CatalogLoader
	logger zerolog.Logger
	cache  *indexCache

	requestCount atomic.Int64
	errorCount   atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	buildCount   atomic.Int64
	lastBuild    atomic.Pointer[BuildStats]
}

// NewEngine creates a recommendation engine reading from loader.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, loader CatalogLoader, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if loader == nil {
		return nil, errors.New("catalog loader is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cache, err := newIndexCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Engine{
		config: cfg,
		loader: loader,
		logger: logger.With().Str("component", "recommend").Logger(),
		cache:  cache,
	}, nil
}

// Recommend returns the configured number of movies most similar to target.
func (e *Engine) Recommend(ctx context.Context, target string) ([]Match, error) {
	return e.RecommendN(ctx, target, e.config.K)
}

// RecommendN returns up to k movies most similar to target. k <= 0 selects
// the configured K and values above MaxK are capped.
func (e *Engine) RecommendN(ctx context.Context, target string, k int) ([]Match, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if k <= 0 {
		k = e.config.K
	}
	if k > e.config.MaxK {
		k = e.config.MaxK
	}

	logger := e.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("target", target).
		Int("k", k).
		Logger()

	matches, err := e.recommend(ctx, target, k)
	outcome := outcomeOf(matches, err)
	metrics.RecordRecommendation(outcome, time.Since(start))

	if err != nil {
		if outcome == "error" || outcome == "unavailable" || outcome == "timeout" {
			e.errorCount.Add(1)
			logger.Warn().Err(err).Str("outcome", outcome).Msg("recommendation failed")
		} else {
			logger.Debug().Err(err).Str("outcome", outcome).Msg("recommendation rejected")
		}
		return nil, err
	}

	logger.Debug().
		Int("returned", len(matches)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")
	return matches, nil
}

func (e *Engine) recommend(ctx context.Context, target string, k int) ([]Match, error) {
	ix, err := e.currentIndex(ctx)
	if err != nil {
		return nil, err
	}
	return ix.Recommend(target, k, e.config.DuplicatePolicy)
}

// Warm loads the catalog and makes sure its index is cached.
func (e *Engine) Warm(ctx context.Context) error {
	ix, err := e.currentIndex(ctx)
	if err != nil {
		return err
	}
	e.logger.Debug().
		Str("fingerprint", FingerprintString(ix.Fingerprint())).
		Int("movies", ix.Len()).
		Msg("similarity index warm")
	return nil
}

// Index returns the index for the current catalog snapshot.
func (e *Engine) Index(ctx context.Context) (*Index, error) {
	return e.currentIndex(ctx)
}

func (e *Engine) currentIndex(ctx context.Context) (*Index, error) {
	loadStart := time.Now()
	movies, err := e.loader.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	metrics.RecordCatalogLoad(time.Since(loadStart), len(movies))

	fp := Fingerprint(movies)
	ix, hit, err := e.cache.getOrBuild(ctx, fp, func(bctx context.Context) (*Index, error) {
		return e.build(bctx, movies, fp)
	})
	if hit {
		e.cacheHits.Add(1)
	} else {
		e.cacheMisses.Add(1)
	}
	if err != nil {
		return nil, err
	}
	return ix, nil
}

// build runs one index build under the size-proportional budget.
func (e *Engine) build(ctx context.Context, movies []catalog.Movie, fp uint64) (*Index, error) {
	timeout := e.config.BuildTimeout(len(movies))
	bctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	ix, err := BuildIndex(bctx, movies, IndexOptions{Parallelism: e.config.Parallelism})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			metrics.RecordIndexBuild(time.Since(start), 0, "timeout")
			return nil, fmt.Errorf("%w after %v (%d movies)", ErrBuildTimeout, timeout, len(movies))
		}
		metrics.RecordIndexBuild(time.Since(start), 0, "error")
		return nil, fmt.Errorf("build similarity index: %w", err)
	}

	stats := ix.Stats()
	metrics.RecordIndexBuild(stats.Duration, stats.Vocabulary, "success")
	e.buildCount.Add(1)
	e.lastBuild.Store(&stats)

	e.logger.Info().
		Str("fingerprint", FingerprintString(fp)).
		Int("movies", stats.Movies).
		Int("vocabulary", stats.Vocabulary).
		Dur("duration", stats.Duration).
		Msg("built similarity index")
	return ix, nil
}

// Invalidate drops every cached index.
func (e *Engine) Invalidate() {
	e.cache.purge()
	e.logger.Info().Msg("similarity index cache cleared")
}

// Status returns engine counters and the most recent build.
func (e *Engine) Status() Status {
	return Status{
		Requests:      e.requestCount.Load(),
		Errors:        e.errorCount.Load(),
		CacheHits:     e.cacheHits.Load(),
		CacheMisses:   e.cacheMisses.Load(),
		Builds:        e.buildCount.Load(),
		CachedIndexes: e.cache.len(),
		CacheCapacity: e.cache.size,
		LastBuild:     e.lastBuild.Load(),
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// outcomeOf classifies a result for metrics.
func outcomeOf(matches []Match, err error) string {
	switch {
	case err == nil && len(matches) == 0:
		return "empty"
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAmbiguousTarget):
		return "ambiguous"
	case errors.Is(err, catalog.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrBuildTimeout):
		return "timeout"
	default:
		return "error"
	}
}
