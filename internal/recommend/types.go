// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"fmt"
	"time"
)

// DefaultK is the number of recommendations returned when none is requested.
const DefaultK = 15

// Match is one recommended movie.
type Match struct {
	// Row is the movie's index in the catalog the index was built from.
	Row int `json:"row"`

	// Title is the movie title.
	Title string `json:"title"`

	// PosterRef is the poster reference returned to clients.
	PosterRef string `json:"poster_ref"`

	// Score is the cosine similarity to the target, in [0, 1].
	Score float64 `json:"score"`
}

// PosterRefs returns the poster references of matches in order.
func PosterRefs(matches []Match) []string {
	refs := make([]string, len(matches))
	for i, m := range matches {
		refs[i] = m.PosterRef
	}
	return refs
}

// LookupStatus is the outcome of resolving a title to catalog rows.
type LookupStatus int

const (
	// LookupNotFound means no row has the title.
	LookupNotFound LookupStatus = iota
	// LookupFound means exactly one row has the title.
	LookupFound
	// LookupAmbiguous means several rows share the title.
	LookupAmbiguous
)

// String returns a human-readable name for the status.
func (s LookupStatus) String() string {
	switch s {
	case LookupNotFound:
		return "not_found"
	case LookupFound:
		return "found"
	case LookupAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Lookup is the result of resolving a target title.
type Lookup struct {
	Status LookupStatus

	// Rows holds every matching catalog row in ascending order.
	Rows []int
}

// DuplicatePolicy decides what happens when several rows share the target title.
type DuplicatePolicy string

const (
	// DuplicateReject fails with ErrAmbiguousTarget.
	DuplicateReject DuplicatePolicy = "reject"
	// DuplicateFirst ranks against the first matching row and excludes all
	// matching rows from the output.
	DuplicateFirst DuplicatePolicy = "first"
)

// ParseDuplicatePolicy parses a policy name. The empty string selects DuplicateReject.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case "", DuplicateReject:
		return DuplicateReject, nil
	case DuplicateFirst:
		return DuplicateFirst, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q (want %q or %q)", s, DuplicateReject, DuplicateFirst)
	}
}

// BuildStats describes a finished index build.
type BuildStats struct {
	Fingerprint string        `json:"fingerprint"`
	Movies      int           `json:"movies"`
	Vocabulary  int           `json:"vocabulary"`
	Duration    time.Duration `json:"duration_ns"`
	BuiltAt     time.Time     `json:"built_at"`
}

// Status reports engine counters and the most recent index build.
type Status struct {
	Requests      int64       `json:"requests"`
	Errors        int64       `json:"errors"`
	CacheHits     int64       `json:"cache_hits"`
	CacheMisses   int64       `json:"cache_misses"`
	Builds        int64       `json:"builds"`
	CachedIndexes int         `json:"cached_indexes"`
	CacheCapacity int         `json:"cache_capacity"`
	LastBuild     *BuildStats `json:"last_build,omitempty"`
}
