// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
	"github.com/ThreeBlackShirts/movieshelf/internal/logging"
	"github.com/ThreeBlackShirts/movieshelf/internal/recommend"
	"github.com/ThreeBlackShirts/movieshelf/internal/validation"
)

// PosterResponse is one element of the recommendation response array.
type PosterResponse struct {
	PosterRef string `json:"poster_ref" example:"https://img.example.com/alien.jpg"`
}

// AmbiguousDetails lists the catalog rows sharing an ambiguous title.
type AmbiguousDetails struct {
	Title string `json:"title"`
	Rows  []int  `json:"rows"`
}

// RecommendMovies handles recommendation requests
//
// @Summary Recommend movies similar to a title
// @Description Returns the posters of the movies whose genres are most similar to the target title, most similar first. The request body is ignored.
// @Tags Recommend
// @Produce json
// @Param target path string true "URL-encoded movie title"
// @Param k query int false "Number of results (default from configuration, capped by recommend.max_k)"
// @Success 200 {array} PosterResponse "Similar movies, most similar first"
// @Failure 400 {object} APIResponse "Invalid title or k"
// @Failure 404 {object} APIResponse "Title not in catalog"
// @Failure 409 {object} APIResponse{error=APIError{details=AmbiguousDetails}} "Title matches several movies"
// @Failure 503 {object} APIResponse "Catalog unavailable"
// @Failure 504 {object} APIResponse "Index build timed out"
// @Router /movie/recommend/{target} [post]
func (h *Handler) RecommendMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseRecommendRequest(r)
	if err != nil {
		rw.ValidationError("Invalid request", map[string]interface{}{"error": err.Error()})
		return
	}
	if verr := validation.ValidateRecommendRequest(req, h.config.MaxTitleLength); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	ctx := r.Context()
	if h.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.RequestTimeout)
		defer cancel()
	}

	matches, err := h.recommender.RecommendN(ctx, req.Target, req.K)
	if err != nil {
		h.writeRecommendError(rw, r, req.Target, err)
		return
	}

	rw.JSON(http.StatusOK, toPosterResponses(matches))
}

// parseRecommendRequest extracts the target title and the optional k.
// Chi matches against RawPath when the URL carried escapes, in which case
// the parameter is still encoded.
func parseRecommendRequest(r *http.Request) (*validation.RecommendRequest, error) {
	target := chi.URLParam(r, "target")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(target)
		if err != nil {
			return nil, err
		}
		target = decoded
	}

	req := &validation.RecommendRequest{Target: target}
	if raw := r.URL.Query().Get("k"); raw != "" {
		k, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("k must be an integer")
		}
		req.K = k
	}
	return req, nil
}

func (h *Handler) writeRecommendError(rw *ResponseWriter, r *http.Request, target string, err error) {
	var ambiguous *recommend.AmbiguousTargetError

	switch {
	case errors.Is(err, recommend.ErrNotFound):
		if h.config.LegacyEmptyOnMissing {
			rw.JSON(http.StatusOK, []PosterResponse{})
			return
		}
		rw.NotFound("Movie not found in catalog")
	case errors.As(err, &ambiguous):
		rw.Conflict("Title matches several movies", AmbiguousDetails{
			Title: ambiguous.Title,
			Rows:  ambiguous.Rows,
		})
	case errors.Is(err, catalog.ErrUnavailable):
		rw.ServiceUnavailable("Catalog temporarily unavailable")
	case errors.Is(err, recommend.ErrBuildTimeout), errors.Is(err, context.DeadlineExceeded):
		rw.Timeout("Recommendation timed out")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("target", target).Msg("Recommendation failed")
		rw.InternalError("Failed to compute recommendations")
	}
}

// toPosterResponses never returns nil so the body is [] rather than null.
func toPosterResponses(matches []recommend.Match) []PosterResponse {
	out := make([]PosterResponse, len(matches))
	for i, m := range matches {
		out[i] = PosterResponse{PosterRef: m.PosterRef}
	}
	return out
}

// RecommendStatus handles engine status requests
//
// @Summary Get recommendation engine status
// @Description Returns request counters, index cache usage and the most recent index build.
// @Tags Recommend
// @Produce json
// @Success 200 {object} APIResponse{data=recommend.Status}
// @Router /api/v1/recommend/status [get]
func (h *Handler) RecommendStatus(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, h.recommender.Status())
}
