// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

// Package middleware provides the HTTP middleware of the MovieShelf API.
//
//   - RequestID: assigns X-Request-ID and stores it in the logging context
//   - PrometheusMetrics: request count, latency and in-flight gauge, labelled
//     by chi route pattern
//
// Both are written as func(http.HandlerFunc) http.HandlerFunc and adapted to
// chi's func(http.Handler) http.Handler by the api package:
//
//	r.Use(chiMiddleware(middleware.RequestID))
//	r.Use(chiMiddleware(middleware.PrometheusMetrics))
//
// CORS, rate limiting, real-IP extraction and panic recovery come from the
// chi ecosystem (go-chi/cors, go-chi/httprate, chi/middleware) and are
// configured in the api package.
package middleware
