// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
)

func scenarioCatalog() []catalog.Movie {
	return []catalog.Movie{
		{Title: "Alien", PosterRef: "p1", Genres: "Horror,Sci-Fi"},
		{Title: "Saw", PosterRef: "p2", Genres: "Horror"},
		{Title: "Up", PosterRef: "p3", Genres: "Animation,Family"},
	}
}

// generatedCatalog builds n movies cycling through a small genre pool so
// that scores repeat and ties are common.
func generatedCatalog(n int) []catalog.Movie {
	pool := []string{
		"Action,Adventure",
		"Action",
		"Drama,Romance",
		"Comedy,Drama",
		"Horror,Thriller",
		"Action,Adventure,Sci-Fi",
		"Animation,Family,Comedy",
		"Thriller",
		"",
	}
	movies := make([]catalog.Movie, n)
	for i := range movies {
		movies[i] = catalog.Movie{
			Title:     fmt.Sprintf("Movie %03d", i),
			PosterRef: fmt.Sprintf("poster-%03d", i),
			Genres:    pool[i%len(pool)],
			Rating:    float64(i),
		}
	}
	return movies
}

func mustBuild(t *testing.T, movies []catalog.Movie) *Index {
	t.Helper()
	ix, err := BuildIndex(context.Background(), movies, IndexOptions{})
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	return ix
}

func TestBuildIndex_SimilarityValues(t *testing.T) {
	t.Parallel()

	ix := mustBuild(t, scenarioCatalog())

	// Alien has 3 features (horror, sci-fi, horror sci-fi), Saw has 1 shared.
	want := 1 / math.Sqrt(3)
	if got := ix.Similarity(0, 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("S[Alien][Saw] = %v, want %v", got, want)
	}
	if got := ix.Similarity(0, 2); got != 0 {
		t.Errorf("S[Alien][Up] = %v, want 0", got)
	}
	for i := 0; i < ix.Len(); i++ {
		if got := ix.Similarity(i, i); got != 1 {
			t.Errorf("S[%d][%d] = %v, want 1", i, i, got)
		}
	}
}

func TestBuildIndex_MatrixProperties(t *testing.T) {
	t.Parallel()

	movies := generatedCatalog(150)
	ix := mustBuild(t, movies)

	for i := 0; i < ix.Len(); i++ {
		for j := 0; j < ix.Len(); j++ {
			s := ix.Similarity(i, j)
			if s < 0 || s > 1 {
				t.Fatalf("S[%d][%d] = %v out of [0,1]", i, j, s)
			}
			if math.Abs(s-ix.Similarity(j, i)) > 1e-12 {
				t.Fatalf("S not symmetric at (%d,%d)", i, j)
			}
		}
		if movies[i].Genres == "" {
			if ix.Similarity(i, i) != 0 {
				t.Errorf("zero-vector row %d has self similarity %v", i, ix.Similarity(i, i))
			}
		} else if ix.Similarity(i, i) != 1 {
			t.Errorf("S[%d][%d] = %v, want 1", i, i, ix.Similarity(i, i))
		}
	}
}

func TestBuildIndex_ParallelismDoesNotChangeResult(t *testing.T) {
	t.Parallel()

	movies := generatedCatalog(200)
	serial, err := BuildIndex(context.Background(), movies, IndexOptions{Parallelism: 1})
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := BuildIndex(context.Background(), movies, IndexOptions{Parallelism: 4})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < serial.Len(); i++ {
		for j := 0; j < serial.Len(); j++ {
			if serial.Similarity(i, j) != parallel.Similarity(i, j) {
				t.Fatalf("S[%d][%d] differs: %v vs %v", i, j, serial.Similarity(i, j), parallel.Similarity(i, j))
			}
		}
	}
}

func TestBuildIndex_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildIndex(ctx, generatedCatalog(300), IndexOptions{Parallelism: 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("BuildIndex() error = %v, want context.Canceled", err)
	}
}

func TestBuildIndex_CopiesCatalog(t *testing.T) {
	t.Parallel()

	movies := scenarioCatalog()
	ix := mustBuild(t, movies)
	movies[0].Title = "changed"

	if ix.Movie(0).Title != "Alien" {
		t.Error("index shares the caller's catalog slice")
	}
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	movies := append(scenarioCatalog(), catalog.Movie{Title: "Alien", PosterRef: "p4", Genres: "Horror"})
	ix := mustBuild(t, movies)

	tests := []struct {
		title string
		want  Lookup
	}{
		{title: "Saw", want: Lookup{Status: LookupFound, Rows: []int{1}}},
		{title: "Alien", want: Lookup{Status: LookupAmbiguous, Rows: []int{0, 3}}},
		{title: "alien", want: Lookup{Status: LookupNotFound}},
		{title: "Jaws", want: Lookup{Status: LookupNotFound}},
	}

	for _, tt := range tests {
		if got := ix.Lookup(tt.title); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lookup(%q) = %+v, want %+v", tt.title, got, tt.want)
		}
	}
}

func TestIndex_Rank_TieBreakByRow(t *testing.T) {
	t.Parallel()

	movies := []catalog.Movie{
		{Title: "A", PosterRef: "a", Genres: "Drama"},
		{Title: "B", PosterRef: "b", Genres: "Comedy"},
		{Title: "C", PosterRef: "c", Genres: "Drama"},
		{Title: "T", PosterRef: "t", Genres: "Drama"},
		{Title: "D", PosterRef: "d", Genres: "Drama"},
		{Title: "E", PosterRef: "e", Genres: "Western"},
	}
	ix := mustBuild(t, movies)

	got := PosterRefs(ix.Rank(3, 0))
	// Equal scores keep ascending catalog order, zero scores included.
	want := []string{"a", "c", "d", "b", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestIndex_Recommend_Scenario(t *testing.T) {
	t.Parallel()

	ix := mustBuild(t, scenarioCatalog())
	matches, err := ix.Recommend("Alien", DefaultK, DuplicateReject)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got, want := PosterRefs(matches), []string{"p2", "p3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(Alien) = %v, want %v", got, want)
	}
	if matches[0].Score <= matches[1].Score {
		t.Errorf("scores not descending: %v", matches)
	}
}

func TestIndex_Recommend_Ambiguous(t *testing.T) {
	t.Parallel()

	movies := []catalog.Movie{
		{Title: "Alien", PosterRef: "p1", Genres: "Horror,Sci-Fi"},
		{Title: "Saw", PosterRef: "p2", Genres: "Horror"},
		{Title: "Alien", PosterRef: "p4", Genres: "Sci-Fi"},
		{Title: "Up", PosterRef: "p3", Genres: "Animation,Family"},
	}
	ix := mustBuild(t, movies)

	_, err := ix.Recommend("Alien", 10, DuplicateReject)
	if !errors.Is(err, ErrAmbiguousTarget) {
		t.Fatalf("Recommend() error = %v, want ErrAmbiguousTarget", err)
	}
	var ambiguous *AmbiguousTargetError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("error %T is not *AmbiguousTargetError", err)
	}
	if !reflect.DeepEqual(ambiguous.Rows, []int{0, 2}) {
		t.Errorf("Rows = %v, want [0 2]", ambiguous.Rows)
	}

	matches, err := ix.Recommend("Alien", 10, DuplicateFirst)
	if err != nil {
		t.Fatalf("Recommend(first) error = %v", err)
	}
	if got, want := PosterRefs(matches), []string{"p2", "p3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(first) = %v, want %v", got, want)
	}
}

func TestIndex_Recommend_ZeroVectorTarget(t *testing.T) {
	t.Parallel()

	movies := append(scenarioCatalog(), catalog.Movie{Title: "Blank", PosterRef: "p0", Genres: " , "})
	ix := mustBuild(t, movies)

	matches, err := ix.Recommend("Blank", 5, DuplicateReject)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Recommend() = %v, want empty", matches)
	}
}

func TestIndex_Recommend_DegenerateBeforeLookup(t *testing.T) {
	t.Parallel()

	ix := mustBuild(t, []catalog.Movie{{Title: "Alien", PosterRef: "p1", Genres: "Horror"}})
	matches, err := ix.Recommend("Not There", 5, DuplicateReject)
	if err != nil {
		t.Fatalf("Recommend() error = %v, want nil for a one-movie catalog", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Errorf("Recommend() = %#v, want empty slice", matches)
	}
}

func TestIndex_Features(t *testing.T) {
	t.Parallel()

	ix := mustBuild(t, scenarioCatalog())
	if ix.VocabularySize() != 6 {
		t.Errorf("VocabularySize() = %d, want 6", ix.VocabularySize())
	}
	if got := ix.Features()[0]; got != "animation" {
		t.Errorf("Features()[0] = %q, want animation", got)
	}
	stats := ix.Stats()
	if stats.Movies != 3 || stats.Vocabulary != 6 || stats.Fingerprint == "" {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestIndex_Empty(t *testing.T) {
	t.Parallel()

	ix := mustBuild(t, nil)
	if ix.Len() != 0 {
		t.Errorf("Len() = %d", ix.Len())
	}
	matches, err := ix.Recommend("anything", 5, DuplicateReject)
	if err != nil || len(matches) != 0 {
		t.Errorf("Recommend() = %v, %v; want empty, nil", matches, err)
	}
}
