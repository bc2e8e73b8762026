// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"context"
	"errors"
	"testing"
)

func newTestCache(t *testing.T) (*indexCache, *Index, uint64) {
	t.Helper()

	c, err := newIndexCache(2)
	if err != nil {
		t.Fatal(err)
	}
	movies := scenarioCatalog()
	ix, err := BuildIndex(context.Background(), movies, IndexOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return c, ix, Fingerprint(movies)
}

func TestIndexCache_GetOrBuild(t *testing.T) {
	t.Parallel()

	c, ix, fp := newTestCache(t)
	ctx := context.Background()
	builds := 0
	build := func(context.Context) (*Index, error) {
		builds++
		return ix, nil
	}

	got, hit, err := c.getOrBuild(ctx, fp, build)
	if err != nil || got != ix || hit {
		t.Fatalf("first getOrBuild() = %p, %v, %v; want built index, miss", got, hit, err)
	}
	got, hit, err = c.getOrBuild(ctx, fp, build)
	if err != nil || got != ix || !hit {
		t.Fatalf("second getOrBuild() = %p, %v, %v; want cached index, hit", got, hit, err)
	}
	if builds != 1 {
		t.Errorf("builds = %d, want 1", builds)
	}
}

// A flight that starts after another one already stored the index must
// report a hit without building.
func TestIndexCache_FillFindsStoredIndex(t *testing.T) {
	t.Parallel()

	c, ix, fp := newTestCache(t)
	c.entries.Add(fp, ix)

	br, err := c.fill(context.Background(), fp, func(context.Context) (*Index, error) {
		t.Error("build called for a stored fingerprint")
		return nil, errors.New("unexpected build")
	})
	if err != nil {
		t.Fatalf("fill() error = %v", err)
	}
	if !br.cached || br.ix != ix {
		t.Errorf("fill() = %+v, want cached stored index", br)
	}
}

func TestIndexCache_BuildErrorNotStored(t *testing.T) {
	t.Parallel()

	c, _, fp := newTestCache(t)
	boom := errors.New("boom")

	_, hit, err := c.getOrBuild(context.Background(), fp, func(context.Context) (*Index, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) || hit {
		t.Fatalf("getOrBuild() = %v, %v; want boom, miss", hit, err)
	}
	if c.len() != 0 {
		t.Errorf("len() = %d after failed build, want 0", c.len())
	}
}
