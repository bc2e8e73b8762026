// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/ThreeBlackShirts/movieshelf/internal/metrics"
)

const cacheType = "similarity_index"

// indexCache holds recently built indexes keyed by catalog fingerprint.
type indexCache struct {
	entries *lru.Cache[uint64, *Index]
	builds  singleflight.Group
	size    int
}

func newIndexCache(size int) (*indexCache, error) {
	entries, err := lru.NewWithEvict(size, func(uint64, *Index) {
		metrics.CacheEvictions.WithLabelValues(cacheType).Inc()
	})
	if err != nil {
		return nil, fmt.Errorf("create index cache: %w", err)
	}
	return &indexCache{entries: entries, size: size}, nil
}

// buildResult is what a singleflight call hands to every waiter. cached is
// set when the index was already present by the time the call ran.
type buildResult struct {
	ix     *Index
	cached bool
}

// getOrBuild returns the cached index for fp, or runs build once for all
// concurrent callers asking for the same fingerprint. build gets a context
// that is not cancelled with the caller's, so one caller going away does not
// fail the others; the caller itself still stops waiting when ctx is done.
// The returned bool reports whether the index came from the cache.
func (c *indexCache) getOrBuild(ctx context.Context, fp uint64, build func(context.Context) (*Index, error)) (*Index, bool, error) {
	if ix, ok := c.entries.Get(fp); ok {
		metrics.CacheHits.WithLabelValues(cacheType).Inc()
		return ix, true, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := c.builds.DoChan(FingerprintString(fp), func() (any, error) {
		return c.fill(detached, fp, build)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			metrics.CacheMisses.WithLabelValues(cacheType).Inc()
			return nil, false, res.Err
		}
		br := res.Val.(buildResult)
		if br.cached {
			metrics.CacheHits.WithLabelValues(cacheType).Inc()
		} else {
			metrics.CacheMisses.WithLabelValues(cacheType).Inc()
		}
		return br.ix, br.cached, nil
	case <-ctx.Done():
		metrics.CacheMisses.WithLabelValues(cacheType).Inc()
		return nil, false, ctx.Err()
	}
}

// fill runs inside the singleflight call. Another flight for fp may have
// finished between the caller's lookup and this one, so check again first.
func (c *indexCache) fill(ctx context.Context, fp uint64, build func(context.Context) (*Index, error)) (buildResult, error) {
	if ix, ok := c.entries.Get(fp); ok {
		return buildResult{ix: ix, cached: true}, nil
	}
	ix, err := build(ctx)
	if err != nil {
		return buildResult{}, err
	}
	c.entries.Add(fp, ix)
	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(c.entries.Len()))
	return buildResult{ix: ix}, nil
}

func (c *indexCache) len() int { return c.entries.Len() }

func (c *indexCache) purge() {
	c.entries.Purge()
	metrics.CacheSize.WithLabelValues(cacheType).Set(0)
}
