// Package basis defines the basis function value type and its kinds.
package basis

// Kind tags which closed-form family a Function belongs to.
//
//   - KindPolynomial : x^degree, degree ≥ 0.
//   - KindSin        : sin(frequency·π·x).
//   - KindCos        : cos(frequency·π·x).
//   - KindExponential: exp(alpha·x).
type Kind uint8

const (
	// KindPolynomial evaluates x raised to a non-negative integer power.
	KindPolynomial Kind = iota

	// KindSin evaluates sin(frequency·π·x).
	KindSin

	// KindCos evaluates cos(frequency·π·x).
	KindCos

	// KindExponential evaluates exp(alpha·x).
	KindExponential
)

// Short tags used by Parse and Function.String.
const (
	tagPolynomial  = "poly"
	tagSin         = "sin"
	tagCos         = "cos"
	tagExponential = "exp"
)

// String returns the short tag of the kind ("poly", "sin", "cos", "exp").
func (k Kind) String() string {
	switch k {
	case KindPolynomial:
		return tagPolynomial
	case KindSin:
		return tagSin
	case KindCos:
		return tagCos
	case KindExponential:
		return tagExponential
	default:
		return "unknown"
	}
}

// Function is one term φ(x) of a linear combination Σ cᵢ·φᵢ(x).
//
// Function is immutable after construction; all fields are unexported and
// set only by the New* constructors. Its zero value is the constant
// polynomial x^0 = 1.
//
// Fields:
//   - kind : family tag, dispatches Evaluate.
//   - order: degree (KindPolynomial) or frequency (KindSin/KindCos).
//   - alpha: growth rate (KindExponential only).
type Function struct {
	kind  Kind
	order int
	alpha float64
}
