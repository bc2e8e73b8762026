// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
)

func TestRecommend_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		movies  []catalog.Movie
		target  string
		k       int
		want    []string
		wantErr error
	}{
		{
			name:   "shared genre ranks first",
			movies: scenarioCatalog(),
			target: "Alien",
			k:      15,
			want:   []string{"p2", "p3"},
		},
		{
			name:   "default k",
			movies: scenarioCatalog(),
			target: "Up",
			k:      0,
			want:   []string{"p1", "p2"},
		},
		{
			name:    "target missing",
			movies:  scenarioCatalog(),
			target:  "Jaws",
			k:       15,
			wantErr: ErrNotFound,
		},
		{
			name:   "single movie catalog",
			movies: []catalog.Movie{{Title: "Alien", PosterRef: "p1", Genres: "Horror"}},
			target: "Alien",
			k:      15,
			want:   []string{},
		},
		{
			name:   "empty catalog",
			movies: nil,
			target: "Alien",
			k:      15,
			want:   []string{},
		},
		{
			name: "duplicate title",
			movies: append(scenarioCatalog(),
				catalog.Movie{Title: "Saw", PosterRef: "p5", Genres: "Horror,Thriller"}),
			target:  "Saw",
			k:       15,
			wantErr: ErrAmbiguousTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Recommend(context.Background(), tt.movies, tt.target, tt.k)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Recommend() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recommend() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestRecommend_Properties(t *testing.T) {
	t.Parallel()

	movies := generatedCatalog(120)
	ix := mustBuild(t, movies)

	for _, k := range []int{1, 5, 15, 200} {
		for row := 0; row < len(movies); row += 7 {
			target := movies[row].Title
			matches, err := ix.Recommend(target, k, DuplicateReject)
			if err != nil {
				t.Fatalf("Recommend(%q, %d) error = %v", target, k, err)
			}

			// Bounded size.
			limit := min(k, len(movies)-1)
			if movies[row].Genres == "" {
				limit = 0
			}
			if len(matches) != limit {
				t.Errorf("Recommend(%q, %d) returned %d, want %d", target, k, len(matches), limit)
			}

			for i, m := range matches {
				// Self-exclusion.
				if m.Title == target {
					t.Errorf("Recommend(%q) contains the target", target)
				}
				// Monotonicity with ascending-row tie-break.
				if i > 0 {
					prev := matches[i-1]
					if m.Score > prev.Score {
						t.Errorf("Recommend(%q): score rises at %d (%v > %v)", target, i, m.Score, prev.Score)
					}
					if m.Score == prev.Score && m.Row < prev.Row {
						t.Errorf("Recommend(%q): tie at %d not in row order", target, i)
					}
				}
				if m.Score != ix.Similarity(row, m.Row) {
					t.Errorf("Match score %v != S[%d][%d]", m.Score, row, m.Row)
				}
			}
		}
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	t.Parallel()

	movies := generatedCatalog(90)
	first, err := Recommend(context.Background(), movies, "Movie 010", 15)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Recommend(context.Background(), movies, "Movie 010", 15)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}

func TestPosterRefs(t *testing.T) {
	t.Parallel()

	got := PosterRefs([]Match{{PosterRef: "a"}, {PosterRef: "b"}})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("PosterRefs() = %v", got)
	}
	if got := PosterRefs(nil); got == nil || len(got) != 0 {
		t.Errorf("PosterRefs(nil) = %#v, want empty slice", got)
	}
}

func TestParseDuplicatePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    DuplicatePolicy
		wantErr bool
	}{
		{in: "", want: DuplicateReject},
		{in: "reject", want: DuplicateReject},
		{in: "first", want: DuplicateFirst},
		{in: "last", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDuplicatePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDuplicatePolicy(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuplicatePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	base := scenarioCatalog()
	fp := Fingerprint(base)

	if Fingerprint(scenarioCatalog()) != fp {
		t.Error("identical catalogs have different fingerprints")
	}

	changed := scenarioCatalog()
	changed[1].Genres = "Horror,Thriller"
	if Fingerprint(changed) == fp {
		t.Error("genre change kept fingerprint")
	}

	reordered := []catalog.Movie{base[1], base[0], base[2]}
	if Fingerprint(reordered) == fp {
		t.Error("row order change kept fingerprint")
	}

	// Field boundaries are part of the hash.
	a := []catalog.Movie{{Title: "ab", PosterRef: "c"}}
	b := []catalog.Movie{{Title: "a", PosterRef: "bc"}}
	if Fingerprint(a) == Fingerprint(b) {
		t.Error("field boundary not hashed")
	}

	tests := []struct {
		name string
		a, b []catalog.Movie
	}{
		{
			name: "separator byte in title vs poster",
			a:    []catalog.Movie{{Title: "Alien\x00", PosterRef: "p1"}, {Title: "Saw", PosterRef: "p2"}},
			b:    []catalog.Movie{{Title: "Alien", PosterRef: "\x00p1"}, {Title: "Saw", PosterRef: "p2"}},
		},
		{
			name: "row separator inside genres",
			a:    []catalog.Movie{{Title: "Up", Genres: "Family\x1eSaw"}},
			b:    []catalog.Movie{{Title: "Up", Genres: "Family"}, {Title: "Saw"}},
		},
		{
			name: "empty row vs no row",
			a:    []catalog.Movie{{Title: "Up"}},
			b:    []catalog.Movie{{Title: "Up"}, {}},
		},
	}
	for _, tt := range tests {
		if Fingerprint(tt.a) == Fingerprint(tt.b) {
			t.Errorf("%s: distinct catalogs share fingerprint %s", tt.name, FingerprintString(Fingerprint(tt.a)))
		}
	}

	rated := scenarioCatalog()
	rated[0].Rating = 9.9
	if Fingerprint(rated) != fp {
		t.Error("rating alone changed fingerprint")
	}
}
