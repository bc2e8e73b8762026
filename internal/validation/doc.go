// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

// Package validation provides request validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide (it caches struct
// metadata). Fields are reported by their JSON names and failures convert to
// the API error shape with code VALIDATION_FAILED:
//
//	req := validation.RecommendRequest{Target: chi.URLParam(r, "target")}
//	if verr := validation.ValidateRecommendRequest(&req, 500); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Custom tags
//
//	movietitle - non-blank after trimming, no control characters
package validation
