// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/ThreeBlackShirts/movieshelf/docs" // Import generated swagger docs
	"github.com/ThreeBlackShirts/movieshelf/internal/api"
	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
	"github.com/ThreeBlackShirts/movieshelf/internal/config"
	"github.com/ThreeBlackShirts/movieshelf/internal/database"
	"github.com/ThreeBlackShirts/movieshelf/internal/logging"
	"github.com/ThreeBlackShirts/movieshelf/internal/recommend"
	"github.com/ThreeBlackShirts/movieshelf/internal/supervisor"
	"github.com/ThreeBlackShirts/movieshelf/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_driver", cfg.Database.Driver).
		Str("db_path", cfg.Database.Path).
		Msg("Starting MovieShelf with supervisor tree")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize catalog store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog store")
		}
	}()

	if cfg.Database.SeedFile != "" {
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		seeded, err := db.SeedIfEmpty(seedCtx, cfg.Database.SeedFile)
		cancel()
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		if seeded {
			logging.Info().Str("file", cfg.Database.SeedFile).Msg("Seeded empty catalog from fixture")
		}
	}

	breaker := catalog.NewBreakerLoader(db, buildBreakerConfig(cfg))

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), breaker, logging.Logger())
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(cfg.Supervisor))
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if cfg.Recommend.WarmInterval > 0 {
		tree.AddDataService(services.NewIndexWarmerService(engine, buildWarmerConfig(cfg), logging.Logger()))
	} else {
		logging.Info().Msg("Background index warm-up disabled (RECOMMEND_WARM_INTERVAL=0)")
	}

	handler := api.NewHandler(engine, db, breaker, buildHandlerConfig(cfg, version))
	router := api.NewRouter(handler, buildMiddlewareConfig(cfg))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	return nil
}
