// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no catalog row has the target title.
	ErrNotFound = errors.New("target movie not found")

	// ErrAmbiguousTarget is returned when several rows share the target
	// title and the duplicate policy is DuplicateReject.
	ErrAmbiguousTarget = errors.New("target title is ambiguous")

	// ErrBuildTimeout is returned when a similarity index build exceeds its budget.
	ErrBuildTimeout = errors.New("similarity index build timed out")
)

// AmbiguousTargetError carries the rows that share an ambiguous title.
type AmbiguousTargetError struct {
	Title string
	Rows  []int
}

func (e *AmbiguousTargetError) Error() string {
	return fmt.Sprintf("%s: %q matches %d movies", ErrAmbiguousTarget, e.Title, len(e.Rows))
}

// Is reports whether target is ErrAmbiguousTarget.
func (e *AmbiguousTargetError) Is(target error) bool {
	return target == ErrAmbiguousTarget
}
