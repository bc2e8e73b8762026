// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/ThreeBlackShirts/movieshelf/internal/recommend"
)

const scenarioFixture = `movies:
  - title: Alien
    poster: p1
    genres: Horror,Sci-Fi
    rating: 8.5
  - title: Saw
    poster: p2
    genres: Horror
    rating: 7.6
  - title: Up
    poster: p3
    genres: Animation,Family
    rating: 8.3
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecommendCmd_Fixture(t *testing.T) {
	fixture := writeFixture(t, scenarioFixture)

	out, err := execute(t, "recommend", "Alien", "--catalog", fixture)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Saw") || !strings.Contains(lines[2], "Up") {
		t.Errorf("rows out of order:\n%s", out)
	}
}

func TestRecommendCmd_JSON(t *testing.T) {
	fixture := writeFixture(t, scenarioFixture)

	out, err := execute(t, "recommend", "Alien", "--catalog", fixture, "--json", "--k", "1")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	var posters []posterJSON
	if err := json.Unmarshal([]byte(out), &posters); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(posters) != 1 || posters[0].PosterRef != "p2" {
		t.Errorf("posters = %v, want [p2]", posters)
	}
}

func TestRecommendCmd_Errors(t *testing.T) {
	fixture := writeFixture(t, scenarioFixture)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "unknown title", args: []string{"recommend", "Jaws", "--catalog", fixture}, want: recommend.ErrNotFound},
		{name: "missing title", args: []string{"recommend", "--catalog", fixture}},
		{name: "bad policy", args: []string{"recommend", "Alien", "--catalog", fixture, "--duplicates", "newest"}},
		{name: "missing fixture", args: []string{"recommend", "Alien", "--catalog", filepath.Join(t.TempDir(), "none.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRecommendCmd_EmptyResult(t *testing.T) {
	fixture := writeFixture(t, `movies:
  - title: Alien
    poster: p1
    genres: Horror
`)

	out, err := execute(t, "recommend", "Alien", "--catalog", fixture)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if strings.TrimSpace(out) != "No similar movies." {
		t.Errorf("out = %q", out)
	}
}

func TestSeedThenRecommendFromStore(t *testing.T) {
	fixture := writeFixture(t, scenarioFixture)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	storeArgs := []string{"--db-driver", "sqlite", "--db-path", dbPath}

	out, err := execute(t, append([]string{"seed", fixture}, storeArgs...)...)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !strings.Contains(out, "Seeded 3 movies") {
		t.Errorf("seed output = %q", out)
	}

	out, err = execute(t, append([]string{"seed", fixture, "--if-empty"}, storeArgs...)...)
	if err != nil {
		t.Fatalf("seed --if-empty: %v", err)
	}
	if !strings.Contains(out, "nothing seeded") {
		t.Errorf("seed --if-empty output = %q", out)
	}

	out, err = execute(t, append([]string{"recommend", "Saw", "--json"}, storeArgs...)...)
	if err != nil {
		t.Fatalf("recommend from store: %v", err)
	}
	var posters []posterJSON
	if err := json.Unmarshal([]byte(out), &posters); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(posters) != 2 || posters[0].PosterRef != "p1" {
		t.Errorf("posters = %v, want p1 first", posters)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "movieshelf "+version) {
		t.Errorf("out = %q", out)
	}

	out, err = execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if strings.TrimSpace(out) != "movieshelf "+version {
		t.Errorf("--version = %q", out)
	}
}
