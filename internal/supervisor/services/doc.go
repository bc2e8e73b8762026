// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

/*
Package services provides suture.Service wrappers for the server's
long-running components.

Each wrapper implements suture.Service and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService runs an *http.Server and shuts it down gracefully when the
supervisor cancels its context.

IndexWarmerService calls Warm on the recommendation engine at a fixed
interval so the similarity index for a changed catalog is rebuilt in the
background instead of on the first request after the change. Failed runs are
logged and counted in index_warm_runs_total; the service keeps
running and retries on the next tick.
*/
package services
