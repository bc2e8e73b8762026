// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package api

import (
	"context"
	"time"

	"github.com/ThreeBlackShirts/movieshelf/internal/recommend"
)

// Recommender ranks catalog movies against a target title.
// *recommend.Engine satisfies it.
type Recommender interface {
	RecommendN(ctx context.Context, target string, k int) ([]recommend.Match, error)
	Status() recommend.Status
}

// Pinger reports whether the catalog store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerStater exposes the catalog circuit breaker state.
type BreakerStater interface {
	State() string
}

// HandlerConfig holds the request-level settings of the handlers.
type HandlerConfig struct {
	// MaxTitleLength bounds the target title in characters.
	MaxTitleLength int

	// LegacyEmptyOnMissing answers an unknown title with 200 [] instead of 404.
	LegacyEmptyOnMissing bool

	// RequestTimeout bounds one recommendation call. Zero disables the bound.
	RequestTimeout time.Duration

	// Version is reported by the liveness probe.
	Version string
}

// Handler serves the HTTP API.
type Handler struct {
	recommender Recommender
	store       Pinger
	breaker     BreakerStater
	config      HandlerConfig
	startTime   time.Time
}

// NewHandler creates a handler.
//
// Dependencies:
//   - recommender: similarity engine (required)
//   - store: catalog store probed by the readiness check (optional)
//   - breaker: catalog circuit breaker probed by the readiness check (optional)
func NewHandler(recommender Recommender, store Pinger, breaker BreakerStater, cfg HandlerConfig) *Handler {
	return &Handler{
		recommender: recommender,
		store:       store,
		breaker:     breaker,
		config:      cfg,
		startTime:   time.Now(),
	}
}
