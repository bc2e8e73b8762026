// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package main

import (
	"github.com/ThreeBlackShirts/movieshelf/internal/api"
	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
	"github.com/ThreeBlackShirts/movieshelf/internal/config"
	"github.com/ThreeBlackShirts/movieshelf/internal/recommend"
	"github.com/ThreeBlackShirts/movieshelf/internal/supervisor/services"
)

// buildEngineConfig converts the recommend section into engine settings.
// The policy string was checked by config.Validate; an unknown value falls
// back to reject.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	policy, err := recommend.ParseDuplicatePolicy(cfg.Recommend.DuplicatePolicy)
	if err != nil {
		policy = recommend.DuplicateReject
	}
	return &recommend.Config{
		K:                    cfg.Recommend.K,
		MaxK:                 cfg.Recommend.MaxK,
		DuplicatePolicy:      policy,
		CacheSize:            cfg.Recommend.CacheSize,
		Parallelism:          cfg.Recommend.Parallelism,
		BuildTimeoutBase:     cfg.Recommend.BuildTimeoutBase,
		BuildTimeoutPerMovie: cfg.Recommend.BuildTimeoutPerMovie,
	}
}

func buildBreakerConfig(cfg *config.Config) catalog.BreakerConfig {
	bc := catalog.DefaultBreakerConfig()
	bc.MaxRequests = cfg.Breaker.MaxRequests
	bc.Interval = cfg.Breaker.Interval
	bc.Timeout = cfg.Breaker.Timeout
	bc.FailureThreshold = cfg.Breaker.FailureThreshold
	return bc
}

func buildHandlerConfig(cfg *config.Config, version string) api.HandlerConfig {
	return api.HandlerConfig{
		MaxTitleLength:       cfg.Recommend.MaxTitleLength,
		LegacyEmptyOnMissing: cfg.Recommend.LegacyEmptyOnMissing,
		RequestTimeout:       cfg.Recommend.RequestTimeout,
		Version:              version,
	}
}

func buildMiddlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mw
}

// buildWarmerConfig bounds each warm run by the request timeout so a stuck
// store cannot pin the warmer.
func buildWarmerConfig(cfg *config.Config) services.IndexWarmerConfig {
	return services.IndexWarmerConfig{
		WarmOnStartup: true,
		Interval:      cfg.Recommend.WarmInterval,
		Timeout:       cfg.Recommend.RequestTimeout,
	}
}
