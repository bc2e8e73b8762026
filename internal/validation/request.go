// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package validation

import "fmt"

// RecommendRequest is the decoded input of a recommendation call.
// Target is the URL-decoded title; K is the optional ?k= override (0 = default).
type RecommendRequest struct {
	Target string `json:"target" validate:"required,movietitle"`
	K      int    `json:"k" validate:"gte=0"`
}

// ValidateRecommendRequest checks req, limiting the title to maxTitleLength
// characters. A non-positive maxTitleLength disables the length check.
func ValidateRecommendRequest(req *RecommendRequest, maxTitleLength int) *RequestValidationError {
	if err := ValidateStruct(req); err != nil {
		return err
	}
	if maxTitleLength > 0 {
		return ValidateVar("target", req.Target, fmt.Sprintf("max=%d", maxTitleLength))
	}
	return nil
}
