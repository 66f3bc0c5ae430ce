// Package lsq implements continuous least-squares approximation over a
// closed interval [a, b].
//
// 🚀 What it does
//
//	Given basis functions φ₀..φₙ₋₁ and scattered samples (x, y) of an unknown
//	function, a Session finds coefficients c minimising
//	  ∫ₐᵇ ( f̂(x) − Σ cᵢ·φᵢ(x) )² dx
//	where f̂ is the piecewise-linear reconstruction of the samples. It does so
//	by solving the normal equations G·c = r with
//	  G[i][j] = ∫ φᵢ·φⱼ,   r[i] = ∫ f̂·φᵢ
//	both integrated by the fixed composite trapezoid rule of package
//	quadrature, and solved by matrix.Solve.
//
// ✨ Lifecycle
//   - New(a, b) validates a < b.
//   - AddBasisFunction(s) appends basis terms; their order is the coefficient order.
//   - AddDataPoint(s) / AddFunction accumulate samples.
//   - Fit (or Approximate) recomputes everything from scratch.
//   - Evaluate and ComputeError use the stored coefficients.
//   - Clear drops basis, samples and coefficients; the interval stays.
//
// ⚙️ Usage
//
//	s, _ := lsq.New(0, 1, lsq.WithLogger(logger))
//	fs, _ := basis.Polynomial(1)
//	s.AddBasisFunctions(fs...)
//	_ = s.AddFunction(func(x float64) float64 { return 2*x + 1 }, 50)
//	if s.Approximate() {
//	  y, _ := s.Evaluate(0.5) // ≈ 2
//	}
//
// ⚠️ A Session is not safe for concurrent mutation. Distinct sessions share
// nothing and may be used from different goroutines.
package lsq
