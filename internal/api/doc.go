// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

/*
Package api implements the HTTP surface of the recommendation service.

# Routes

	POST /movie/recommend/{target}   similar movie posters, as a bare JSON array
	GET  /api/v1/health/live         liveness probe
	GET  /api/v1/health/ready        readiness probe (store ping, breaker state)
	GET  /api/v1/recommend/status    engine counters and cache usage
	GET  /metrics                    Prometheus exposition
	GET  /swagger/*                  Swagger UI
	GET  /api-docs                   redirect to the Swagger UI

# Responses

Everything except a successful recommendation uses the APIResponse envelope:

	{"success": false, "error": {"code": "NOT_FOUND", "message": "...", "request_id": "..."}, "meta": {...}}

Recommendation errors map to status codes as follows:

	recommend.ErrNotFound             404 NOT_FOUND (200 [] in legacy mode)
	*recommend.AmbiguousTargetError   409 CONFLICT with the matching rows
	catalog.ErrUnavailable            503 SERVICE_UNAVAILABLE
	recommend.ErrBuildTimeout         504 TIMEOUT
	invalid title or k                400 VALIDATION_FAILED
	anything else                     500 INTERNAL_ERROR

# Middleware

Global: request ID, real IP, panic recovery, request logging and CORS.
The recommendation and status routes add httprate limiting, security
headers and Prometheus request metrics labelled by route pattern.
*/
package api
