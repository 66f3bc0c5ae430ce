package lsq

import (
	"math"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/basis"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/matrix"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/quadrature"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/samples"
)

// Gram builds the n×n matrix G[i][j] = ∫ₐᵇ φᵢ·φⱼ dx.
//
// Implementation:
//   - Stage 1: allocate n×n (ErrInvalidDimensions from matrix if fs is empty).
//   - Stage 2: integrate the upper triangle j ≥ i and mirror it; the
//     product φᵢ·φⱼ is evaluated in the same order for both halves, so the
//     result is exactly symmetric.
//
// Complexity: O(n²·quadrature.Subintervals).
func Gram(fs []basis.Function, a, b float64) (*matrix.Dense, error) {
	n := len(fs)
	g, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, lsqErrorf("Gram", err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v = quadrature.Inner(fs[i].Evaluate, fs[j].Evaluate, a, b)
			if err = g.Set(i, j, v); err != nil {
				return nil, lsqErrorf("Gram", err)
			}
			if err = g.Set(j, i, v); err != nil {
				return nil, lsqErrorf("Gram", err)
			}
		}
	}

	return g, nil
}

// Projection builds r[i] = ∫ₐᵇ f̂·φᵢ dx where f̂ = pts.At, the piecewise-linear
// reconstruction. pts must be sorted by X.
// Complexity: O(n·quadrature.Subintervals·log m).
func Projection(fs []basis.Function, pts samples.Set, a, b float64) []float64 {
	r := make([]float64, len(fs))
	for i, f := range fs {
		r[i] = quadrature.Inner(pts.At, f.Evaluate, a, b)
	}

	return r
}

// condition returns matrix.Cond(g), or +Inf when g holds a non-finite entry
// or the decomposition fails.
func condition(g *matrix.Dense) float64 {
	rows, cols := g.Shape()
	for i := 0; i < rows; i++ {
		row, err := g.Row(i)
		if err != nil {
			return math.Inf(1)
		}
		for j := 0; j < cols; j++ {
			if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
				return math.Inf(1)
			}
		}
	}
	c, err := matrix.Cond(g)
	if err != nil {
		return math.Inf(1)
	}

	return c
}
