// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package api

import (
	"context"
	"net/http"
	"time"
)

// readyProbeTimeout bounds the store ping of the readiness probe.
const readyProbeTimeout = 2 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive, regardless of the catalog store.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":   true,
		"version": h.config.Version,
		"uptime":  time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the catalog can be served
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK when the catalog store answers a ping and the catalog circuit breaker is not open. Returns 503 otherwise.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyProbeTimeout)
	defer cancel()

	dbConnected := h.store == nil || h.store.Ping(ctx) == nil

	breakerState := "closed"
	if h.breaker != nil {
		breakerState = h.breaker.State()
	}

	ready := dbConnected && breakerState != "open"
	data := map[string]interface{}{
		"database_connected": dbConnected,
		"breaker_state":      breakerState,
		"ready_to_serve":     ready,
	}

	rw := NewResponseWriter(w, r)
	if !ready {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service not ready", data)
		return
	}
	rw.Success(data)
}
