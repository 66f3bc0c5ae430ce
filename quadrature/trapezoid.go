package quadrature

// Subintervals is the number of equal panels used by every integral.
const Subintervals = 1000

// endpointWeight is the trapezoid weight of the first and last node.
const endpointWeight = 0.5

// Integrand is a real function of one real variable.
type Integrand func(x float64) float64

// Trapezoid returns the composite trapezoid estimate of ∫ₐᵇ g(x) dx using
// Subintervals panels.
//
// Implementation:
//   - Stage 1: h = (b−a)/Subintervals.
//   - Stage 2: sum endpoints with weight 1/2, interior nodes a+k·h with weight 1.
//   - Stage 3: scale by h.
//
// The sign follows the orientation: Trapezoid(g, b, a) = −Trapezoid(g, a, b).
// Interval validity is the caller's concern.
//
// Complexity: O(Subintervals) evaluations of g.
func Trapezoid(g Integrand, a, b float64) float64 {
	h := (b - a) / Subintervals
	sum := endpointWeight*g(a) + endpointWeight*g(b)
	for k := 1; k < Subintervals; k++ {
		sum += g(a + float64(k)*h)
	}

	return h * sum
}

// Inner returns ⟨f, g⟩ = ∫ₐᵇ f(x)·g(x) dx under the Trapezoid rule.
func Inner(f, g Integrand, a, b float64) float64 {
	return Trapezoid(func(x float64) float64 { return f(x) * g(x) }, a, b)
}
