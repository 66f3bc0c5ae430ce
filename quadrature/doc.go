// Package quadrature integrates scalar functions over a closed interval with
// a fixed-resolution composite trapezoid rule.
//
// The rule always uses Subintervals equal panels:
//
//	h = (b−a)/N
//	∫ₐᵇ g ≈ h·( g(a)/2 + g(a+h) + … + g(b−h) + g(b)/2 )
//
// Resolution is a package constant, so every Gram and projection entry in
// package lsq is computed on the same node set. There is no adaptive
// refinement.
//
// Inner(f, g, a, b) is the continuous inner product ⟨f, g⟩ built on the same
// rule.
package quadrature
