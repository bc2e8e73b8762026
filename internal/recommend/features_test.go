// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"reflect"
	"testing"
)

func TestMovieFeatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		want   []feature
	}{
		{name: "empty", tokens: nil, want: nil},
		{name: "single", tokens: []string{"horror"}, want: []feature{{first: "horror"}}},
		{
			name:   "three tokens",
			tokens: []string{"action", "comedy", "drama"},
			want: []feature{
				{first: "action"}, {first: "comedy"}, {first: "drama"},
				{first: "action", second: "comedy"}, {first: "comedy", second: "drama"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := movieFeatures(tt.tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("movieFeatures(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestBuildVocabulary_SortedAndDistinct(t *testing.T) {
	t.Parallel()

	vocab := buildVocabulary([][]string{
		{"sci-fi", "horror"},
		{"horror"},
		{"science fiction"},
		{"science", "fiction"},
	})

	want := []string{
		"fiction",
		"horror",
		"sci-fi",
		"sci-fi horror",
		"science",
		"science fiction", // 2-gram
		"science fiction", // 1-gram containing a space
	}
	got := make([]string, vocab.size())
	for i, f := range vocab.features {
		got[i] = f.String()
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("vocabulary = %q, want %q", got, want)
	}

	uni := vocab.columns[feature{first: "science fiction"}]
	bi := vocab.columns[feature{first: "science", second: "fiction"}]
	if uni == bi {
		t.Errorf("1-gram %q and 2-gram share column %d", "science fiction", uni)
	}
}

func TestVectorize_Counts(t *testing.T) {
	t.Parallel()

	tokens := [][]string{
		{"drama", "drama"},
		{},
	}
	vocab := buildVocabulary(tokens)
	x := vectorize(tokens, vocab)

	drama := vocab.columns[feature{first: "drama"}]
	pair := vocab.columns[feature{first: "drama", second: "drama"}]
	if got := x.At(0, drama); got != 2 {
		t.Errorf("count(drama) = %v, want 2", got)
	}
	if got := x.At(0, pair); got != 1 {
		t.Errorf("count(drama drama) = %v, want 1", got)
	}
	for j := 0; j < vocab.size(); j++ {
		if x.At(1, j) != 0 {
			t.Errorf("empty movie has non-zero column %d", j)
		}
	}
}

func TestVectorize_Empty(t *testing.T) {
	t.Parallel()

	if x := vectorize(nil, buildVocabulary(nil)); x != nil {
		t.Error("expected nil matrix for empty catalog")
	}
	tokens := [][]string{{}, {}}
	if x := vectorize(tokens, buildVocabulary(tokens)); x != nil {
		t.Error("expected nil matrix for empty vocabulary")
	}
}
