package basis

import "fmt"

// Polynomial returns the monomials x^0, x^1, …, x^degree (degree+1 functions,
// ascending power).
// Returns ErrInvalidParameter if degree < 0.
// Complexity: O(degree).
func Polynomial(degree int) ([]Function, error) {
	if degree < 0 {
		return nil, fmt.Errorf("Polynomial(%d): %w", degree, ErrInvalidParameter)
	}
	out := make([]Function, 0, degree+1)
	for d := 0; d <= degree; d++ {
		out = append(out, Function{kind: KindPolynomial, order: d})
	}

	return out, nil
}

// Trigonometric returns the Fourier-style family
//
//	cos(0·πx), cos(1·πx), sin(1·πx), …, cos(m·πx), sin(m·πx)
//
// for m = maxFrequency: one constant followed by (cos, sin) pairs, in that
// interleaving, 1+2m functions in total.
// Returns ErrInvalidParameter if maxFrequency < 0.
func Trigonometric(maxFrequency int) ([]Function, error) {
	if maxFrequency < 0 {
		return nil, fmt.Errorf("Trigonometric(%d): %w", maxFrequency, ErrInvalidParameter)
	}
	out := make([]Function, 0, 1+2*maxFrequency)
	out = append(out, NewCos(0))
	for k := 1; k <= maxFrequency; k++ {
		out = append(out, NewCos(k), NewSin(k))
	}

	return out, nil
}

// Exponential returns one exp(α·x) function per alpha, in input order.
// Returns ErrInvalidParameter on the first non-finite alpha.
func Exponential(alphas ...float64) ([]Function, error) {
	out := make([]Function, 0, len(alphas))
	for _, a := range alphas {
		f, err := NewExponential(a)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}
