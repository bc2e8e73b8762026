// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

// Package logging provides the process-wide zerolog logger for MovieShelf.
//
// JSON output is the default; console output is meant for local development.
// Request and correlation IDs travel in the context and are attached by Ctx:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("movies", n).Msg("Catalog seeded")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("recommendation failed")
//
// # Configuration
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # slog
//
// SlogHandler adapts zerolog to log/slog so that the suture supervisor tree
// (through sutureslog) writes to the same stream.
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging
