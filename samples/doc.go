// Package samples turns an unordered bag of (x, y) observations into a
// continuous function by piecewise-linear reconstruction.
//
// A Set is a plain slice of Point. After Sort (ascending x), At(x) answers:
//
//	len == 0         → 0
//	len == 1         → the single y, for every x
//	x ≤ first.X      → first.Y          (flat extrapolation, left)
//	x ≥ last.X       → last.Y           (flat extrapolation, right)
//	otherwise        → y₀ + t·(y₁ − y₀), t = (x − x₀)/(x₁ − x₀)
//
// where (x₀,y₀),(x₁,y₁) bracket x and x₁ is the first sample with X ≥ x,
// found by binary search. The reconstruction is queried, never materialised,
// so it can be evaluated at arbitrary quadrature nodes.
//
// Linspace samples a function at evenly spaced points of [a, b], inclusive.
package samples
