// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/ThreeBlackShirts/movieshelf/internal/recommend"
)

// fakeRecommender records the last call and answers with fixed results.
type fakeRecommender struct {
	mu      sync.Mutex
	matches []recommend.Match
	err     error
	target  string
	k       int
	calls   int
	status  recommend.Status
}

func (f *fakeRecommender) RecommendN(_ context.Context, target string, k int) ([]recommend.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.target = target
	f.k = k
	f.calls++
	return f.matches, f.err
}

func (f *fakeRecommender) Status() recommend.Status {
	return f.status
}

func (f *fakeRecommender) lastCall() (string, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target, f.k, f.calls
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakeBreaker string

func (b fakeBreaker) State() string { return string(b) }

// newTestServer routes requests through the full chi stack with rate
// limiting disabled.
func newTestServer(t *testing.T, rec Recommender, cfg HandlerConfig) http.Handler {
	t.Helper()
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitDisabled = true
	return NewRouter(NewHandler(rec, nil, nil, cfg), mw).SetupChi()
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, w.Body.String())
	}
	return resp
}

func decodePosters(t *testing.T, w *httptest.ResponseRecorder) []PosterResponse {
	t.Helper()
	var posters []PosterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &posters); err != nil {
		t.Fatalf("decode posters: %v (body %q)", err, w.Body.String())
	}
	return posters
}
