// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

// Command movieshelf queries and seeds the movie catalog from the shell.
//
//	movieshelf recommend Alien --catalog testdata/catalog.yaml
//	movieshelf seed testdata/catalog.yaml --db-driver sqlite --db-path ./catalog.db
//	movieshelf version
package main

import (
	"fmt"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "movieshelf:", err)
		os.Exit(1)
	}
}
