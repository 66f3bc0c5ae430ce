// SPDX-License-Identifier: MIT
// Package matrix provides linear-algebra kernels on any Matrix implementation:
// matrix-vector product and a direct solver for square systems. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - All kernels use the central validators and return sentinels wrapped via matrixErrorf.
//   - Kernels take a fast path on *Dense and fall back to At/Set otherwise.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// SingularTolerance is the hard pivot cutoff of Solve: a pivot whose
// magnitude is below it makes the system singular. It is not condition-aware.
const SingularTolerance = 1e-12

// Operation name constants for unified error wrapping.
const (
	opMatVec = "MatVec"
	opSolve  = "Solve"
	opCond   = "Cond"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Solve returns x such that a·x = b, by Gaussian elimination with partial
// pivoting followed by back-substitution.
//
// Implementation:
//   - Stage 1 (Validate): a non-nil and square (n ≥ 1); len(b) == n. Nothing
//     is eliminated before these checks pass.
//   - Stage 2 (Prepare): copy a into row slices and b into a work vector, so
//     the caller's operands are never mutated.
//   - Stage 3 (Eliminate): for k = 0..n−1 pick the row in k..n−1 with the
//     largest |a[i][k]| (first one wins on ties), swap it into place together
//     with its right-hand side, fail with ErrSingular if that magnitude is
//     below SingularTolerance (or NaN), then subtract multiples of row k from
//     every row below.
//   - Stage 4 (Back-substitute): rows n−1..0.
//
// Errors:
//   - ErrNilMatrix          (a nil, or b nil).
//   - ErrDimensionMismatch  (non-square a, 0×0 a, len(b) != n).
//   - ErrSingular           (pivot below the cutoff).
//
// Determinism:
//   - Fixed pivot scan order and fixed update order.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Solve(a Matrix, b []float64) ([]float64, error) {
	// Stage 1: validate shape before touching any data.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Stage 2: working copies.
	w, err := rowsOf(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	// Stage 3: forward elimination with partial pivoting.
	var (
		i, j, k, p     int
		best, v, f     float64
		pivotRow, curr []float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(w[k][k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(w[i][k]); v > best {
				p, best = i, v
			}
		}
		if p != k {
			w[k], w[p] = w[p], w[k]
			rhs[k], rhs[p] = rhs[p], rhs[k]
		}
		if best < SingularTolerance || math.IsNaN(best) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("pivot %d (|%g| < %g): %w", k, best, SingularTolerance, ErrSingular))
		}

		pivotRow = w[k]
		for i = k + 1; i < n; i++ {
			curr = w[i]
			f = curr[k] / pivotRow[k]
			if f == 0 {
				continue
			}
			for j = k; j < n; j++ {
				curr[j] -= f * pivotRow[j]
			}
			rhs[i] -= f * rhs[k]
		}
	}

	// Stage 4: back-substitution.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = rhs[i]
		for j = i + 1; j < n; j++ {
			sum -= w[i][j] * x[j]
		}
		x[i] = sum / w[i][i]
	}

	return x, nil
}

// rowsOf copies m into freshly allocated row slices.
// Fast path on *Dense; At fallback otherwise.
func rowsOf(m Matrix) ([][]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = make([]float64, cols)
			copy(out[i], d.data[i*cols:(i+1)*cols])
		}

		return out, nil
	}

	var err error
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}
