// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// Cond returns the 2-norm condition number σ_max/σ_min of a square matrix,
// computed by gonum's SVD. A numerically singular matrix yields +Inf.
//
// Cond is diagnostic only: Solve does not consult it and keeps its fixed
// pivot cutoff.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n³).
func Cond(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}

	return mat.Cond(g, 2), nil
}

// toGonum copies m into a gonum *mat.Dense (row-major, same layout).
func toGonum(m Matrix) (*mat.Dense, error) {
	rows, err := rowsOf(m)
	if err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat), nil
}
