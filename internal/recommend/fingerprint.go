// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/ThreeBlackShirts/movieshelf/internal/catalog"
)

// Fingerprint hashes the catalog contents in row order. Any change to a
// title, poster, genre string, the row count or the row order yields a
// different value. Ratings only matter through the order they produce.
func Fingerprint(movies []catalog.Movie) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(movies)))
	_, _ = d.Write(buf[:])
	for i := range movies {
		m := &movies[i]
		writeField(d, m.Title)
		writeField(d, m.PosterRef)
		writeField(d, m.Genres)
	}
	return d.Sum64()
}

// writeField writes s prefixed by its length so field boundaries cannot
// shift into each other.
func writeField(d *xxhash.Digest, s string) {
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(s)))
	_, _ = d.Write(n[:])
	_, _ = d.WriteString(s)
}

// FingerprintString formats a fingerprint for logs and status output.
func FingerprintString(fp uint64) string {
	return strconv.FormatUint(fp, 16)
}
