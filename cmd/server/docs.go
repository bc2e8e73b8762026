// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

// Package main provides the MovieShelf HTTP server
//
// @title MovieShelf API
// @version 1.0
// @description Genre similarity movie recommendations.
// @description
// @description Given a movie title, the service returns the posters of the catalog movies
// @description whose genre tags are most similar, ranked by cosine similarity over genre
// @description unigrams and adjacent bigrams.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Movie not found in catalog",
// @description     "request_id": "4f5b..."
// @description   },
// @description   "meta": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/ThreeBlackShirts/movieshelf/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @tag.name Recommend
// @tag.description Similar-movie recommendations and engine status
//
// @tag.name Core
// @tag.description Liveness and readiness probes
package main
