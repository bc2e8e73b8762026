// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ThreeBlackShirts/movieshelf/internal/logging"
	"github.com/ThreeBlackShirts/movieshelf/internal/metrics"
)

// IndexWarmer prebuilds the similarity index for the current catalog.
// *recommend.Engine satisfies it.
type IndexWarmer interface {
	Warm(ctx context.Context) error
}

// IndexWarmerConfig holds configuration for the index warmer service.
type IndexWarmerConfig struct {
	// WarmOnStartup builds the index as soon as the service starts.
	WarmOnStartup bool

	// Interval is how often the catalog is re-checked. Default: 1m
	Interval time.Duration

	// Timeout bounds one warm run. Zero means no bound beyond the engine's
	// own build timeout.
	Timeout time.Duration
}

// IndexWarmerService keeps the similarity index of the live catalog cached so
// requests after a catalog change do not pay for the rebuild.
//
// A failed run is logged and counted but does not stop the service; the next
// tick retries.
type IndexWarmerService struct {
	warmer IndexWarmer
	config IndexWarmerConfig
	logger zerolog.Logger
	name   string
}

// NewIndexWarmerService creates a warmer service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIndexWarmerService(warmer IndexWarmer, cfg IndexWarmerConfig, logger zerolog.Logger) *IndexWarmerService {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	return &IndexWarmerService{
		warmer: warmer,
		config: cfg,
		logger: logger.With().Str("service", "index-warmer").Logger(),
		name:   "index-warmer",
	}
}

// Serve implements suture.Service.
func (s *IndexWarmerService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("warm_on_startup", s.config.WarmOnStartup).
		Dur("interval", s.config.Interval).
		Msg("index warmer starting")

	if s.config.WarmOnStartup {
		s.warm(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("index warmer shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

// warm runs one pass under its own correlation ID.
func (s *IndexWarmerService) warm(parent context.Context) {
	ctx := logging.ContextWithCorrelationID(parent, logging.GenerateCorrelationID())
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.warmer.Warm(ctx)
	if err != nil && parent.Err() != nil {
		// Shutdown in progress, not a warm failure.
		return
	}
	metrics.RecordIndexWarm(err)

	logger := s.logger.With().Str("correlation_id", logging.CorrelationIDFromContext(ctx)).Logger()
	if err != nil {
		logger.Warn().Err(err).Msg("index warm failed (will retry on schedule)")
		return
	}
	logger.Debug().Dur("duration", time.Since(start)).Msg("index warm complete")
}

// String returns the service name for logging.
func (s *IndexWarmerService) String() string {
	return s.name
}
