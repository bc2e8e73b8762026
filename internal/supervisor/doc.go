// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

/*
Package supervisor provides process supervision for the server using suture v4.

The tree isolates the background index warmer from the HTTP server:

	RootSupervisor ("movieshelf")
	├── DataSupervisor ("data-layer")
	│   └── IndexWarmerService (if recommend.warm_interval > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's failure decay and backoff.
Supervisor events are logged through sutureslog, fed by the zerolog-backed
slog handler from internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(cfg.Supervisor))
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewIndexWarmerService(engine, warmCfg, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
