// Package basis defines the scalar basis functions φ(x) used to build
// least-squares approximations, plus factories for the standard families.
//
// 🚀 What is a basis?
//
//	A least-squares fit looks for coefficients c₀..cₙ₋₁ such that
//	  f(x) ≈ Σ cᵢ·φᵢ(x)
//	over an interval. The φᵢ are the basis functions. This package offers a
//	closed set of them:
//	  • Polynomial(d)  : x^d
//	  • Sin(k)         : sin(k·π·x)
//	  • Cos(k)         : cos(k·π·x)
//	  • Exponential(α) : exp(α·x)
//
// ✨ Key features:
//   - Function is a small immutable value: copying it is cloning it.
//   - Evaluate is pure and allocation-free.
//   - Standard families: Polynomial(degree), Trigonometric(maxFrequency),
//     Exponential(alphas...).
//   - Parse/String round-trip a compact "kind:param" notation ("sin:2",
//     "poly:3", "exp:-0.5") used by job files and the CLI.
//
// ⚙️ Usage:
//
//	import "github.com/sadkowskimaciek/BibliotekaNumeryczna/basis"
//
//	fs, err := basis.Trigonometric(2) // cos0, cos1, sin1, cos2, sin2
//	if err != nil {
//	  // handle ErrInvalidParameter
//	}
//	y := fs[2].Evaluate(0.25) // sin(π/4)
//
// Exponential may overflow to ±Inf for large α·x; that is not an error.
package basis
