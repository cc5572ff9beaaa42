// SPDX-License-Identifier: MIT
// Package matrix: concurrent cofactor expansion.
//
// Purpose:
//   - Evaluate the independent first-row cofactors of Det, and the independent
//     adjugate rows of Inverse, on a bounded errgroup.
//
// Determinism:
//   - Partial terms land in a slice indexed by column and are summed in
//     ascending order, matching the sequential kernel term-for-term.
//
// Cancellation:
//   - ctx is checked before each task; a cancelled ctx surfaces as an error
//     matching context.Canceled / context.DeadlineExceeded via errors.Is.

package matrix

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DetConcurrent is Det with the first expansion level spread across at most
// WithParallelism(n) goroutines (default DefaultParallelism).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ctx errors.
func (m *Dense) DetConcurrent(ctx context.Context, opts ...Option) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opDet, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := ctx.Err(); err != nil {
		return 0, matrixErrorf(opConcurrency, err)
	}
	if m.r <= 2 {
		return m.det(), nil
	}

	o := gatherOptions(opts...)
	terms := make([]float64, m.c)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for x := 0; x < m.c; x++ {
		a := m.data[x]
		if a == 0 {
			continue
		}
		x := x // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			terms[x] = a * sign(x) * m.minor(0, x).det()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, matrixErrorf(opConcurrency, err)
	}

	sum := ZeroSum
	for x, t := range terms {
		if m.data[x] == 0 {
			continue
		}
		sum += t
	}
	return sum, nil
}

// InverseConcurrent is Inverse with the determinant and the adjugate rows
// computed on a bounded errgroup.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ctx errors.
func (m *Dense) InverseConcurrent(ctx context.Context, opts ...Option) (*Dense, error) {
	d, err := m.DetConcurrent(ctx, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if d == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.r
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	if n == 1 {
		inv.data[0] = 1 / d
		return inv, nil
	}

	o := gatherOptions(opts...)
	t := m.Transpose()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for x := 0; x < n; x++ {
		x := x // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			for y := 0; y < n; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				inv.data[x*n+y] = sign(x+y) * t.minor(x, y).det() / d
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, matrixErrorf(opConcurrency, err)
	}
	return inv, nil
}
