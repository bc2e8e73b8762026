// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed by the API router at /metrics:

	curl http://localhost:5000/metrics

# Available Metrics

Catalog Store Metrics:
  - catalog_db_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - catalog_db_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type
  - catalog_db_connections_in_use: Connections checked out of the pool (gauge)

Catalog and Index Metrics:
  - catalog_load_duration_seconds, catalog_movies
  - similarity_index_build_duration_seconds (histogram)
  - similarity_index_builds_total (counter) Labels: result
  - similarity_index_vocabulary_size (gauge)
  - cache_hits_total, cache_misses_total, cache_entries, cache_evictions_total
    Labels: cache_type

Recommendation Metrics:
  - recommendations_total (counter) Labels: outcome
  - recommendation_duration_seconds (histogram)

HTTP Metrics:
  - api_requests_total Labels: method, endpoint, status_code
  - api_request_duration_seconds Labels: method, endpoint
  - api_active_requests (gauge)
  - api_rate_limit_hits_total Labels: endpoint

Circuit Breaker Metrics:
  - circuit_breaker_state Labels: name. Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total Labels: name, result
  - circuit_breaker_state_transitions_total Labels: name, from_state, to_state

Background Metrics:
  - index_warm_runs_total Labels: result
  - index_warm_last_success_timestamp (gauge)

# Example Alert

	groups:
	  - name: movieshelf
	    rules:
	      - alert: CircuitBreakerOpen
	        expr: circuit_breaker_state{name="catalog-store"} == 2
	        for: 1m
	        labels:
	          severity: critical
*/
package metrics
