// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package recommend

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// blockRows is the number of similarity rows computed per task.
const blockRows = 64

// normalizeRows scales every row of x to unit L2 norm in place and reports
// which rows were non-zero.
func normalizeRows(x *mat.Dense) []bool {
	rows, _ := x.Dims()
	nonzero := make([]bool, rows)
	for i := 0; i < rows; i++ {
		row := x.RawRowView(i)
		norm := floats.Norm(row, 2)
		if norm == 0 {
			continue
		}
		floats.Scale(1/norm, row)
		nonzero[i] = true
	}
	return nonzero
}

// cosineMatrix computes S = X̂·X̂ᵀ for the row-normalized matrix xn.
//
// Row blocks of S are disjoint views of one backing array, so blocks are
// computed concurrently without locking. ctx is checked before each block.
// Values are clamped to [0, 1] and the diagonal is pinned to exactly 1 for
// non-zero rows to remove floating point drift.
func cosineMatrix(ctx context.Context, xn *mat.Dense, nonzero []bool, parallelism int) (*mat.Dense, error) {
	n, _ := xn.Dims()
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	s := mat.NewDense(n, n, nil)
	xt := xn.T()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for lo := 0; lo < n; lo += blockRows {
		if err := gctx.Err(); err != nil {
			break
		}
		hi := min(lo+blockRows, n)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, cols := xn.Dims()
			block := s.Slice(lo, hi, 0, n).(*mat.Dense)
			block.Mul(xn.Slice(lo, hi, 0, cols), xt)

			for i := lo; i < hi; i++ {
				row := s.RawRowView(i)
				for j, v := range row {
					switch {
					case v < 0:
						row[j] = 0
					case v > 1:
						row[j] = 1
					}
				}
				if nonzero[i] {
					row[i] = 1
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped early on cancellation without any task failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
