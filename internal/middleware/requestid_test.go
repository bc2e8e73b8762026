// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ThreeBlackShirts/movieshelf/internal/logging"
)

func TestRequestID_Generates(t *testing.T) {
	t.Parallel()

	var seen string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	header := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("generated request ID %q is not a UUID: %v", header, err)
	}
	if seen != header {
		t.Errorf("context request ID = %q, header = %q", seen, header)
	}
}

func TestRequestID_Upstream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "proxy id", incoming: "edge-abc-123", keep: true},
		{name: "uuid", incoming: "3f0c1c1e-1111-4b2a-9c39-000000000000", keep: true},
		{name: "contains space", incoming: "bad id", keep: false},
		{name: "control character", incoming: "bad\x01id", keep: false},
		{name: "too long", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
				seen = logging.RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tt.incoming)
			rec := httptest.NewRecorder()
			handler(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if tt.keep && got != tt.incoming {
				t.Errorf("request ID = %q, want upstream %q", got, tt.incoming)
			}
			if !tt.keep && got == tt.incoming {
				t.Errorf("invalid upstream ID %q was kept", tt.incoming)
			}
			if seen != got {
				t.Errorf("context ID %q differs from header %q", seen, got)
			}
		})
	}
}

func TestRequestID_Unique(t *testing.T) {
	t.Parallel()

	handler := RequestID(func(http.ResponseWriter, *http.Request) {})
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(RequestIDHeader)
		if ids[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		ids[id] = true
	}
}
