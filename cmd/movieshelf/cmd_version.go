// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the movieshelf version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "movieshelf %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
