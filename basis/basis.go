package basis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// termSep separates the kind tag from its parameter in the term notation.
const termSep = ":"

// NewPolynomial returns φ(x) = x^degree.
// Returns ErrInvalidParameter if degree < 0.
func NewPolynomial(degree int) (Function, error) {
	if degree < 0 {
		return Function{}, fmt.Errorf("NewPolynomial(%d): %w", degree, ErrInvalidParameter)
	}

	return Function{kind: KindPolynomial, order: degree}, nil
}

// NewSin returns φ(x) = sin(frequency·π·x). Any integer frequency is valid.
func NewSin(frequency int) Function {
	return Function{kind: KindSin, order: frequency}
}

// NewCos returns φ(x) = cos(frequency·π·x). Any integer frequency is valid;
// NewCos(0) is the constant 1.
func NewCos(frequency int) Function {
	return Function{kind: KindCos, order: frequency}
}

// NewExponential returns φ(x) = exp(alpha·x).
// Returns ErrInvalidParameter if alpha is NaN or ±Inf.
func NewExponential(alpha float64) (Function, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return Function{}, fmt.Errorf("NewExponential(%v): %w", alpha, ErrInvalidParameter)
	}

	return Function{kind: KindExponential, alpha: alpha}, nil
}

// Kind reports the family of f.
func (f Function) Kind() Kind { return f.kind }

// Order reports the polynomial degree or the trigonometric frequency.
// It is 0 for exponential functions.
func (f Function) Order() int { return f.order }

// Alpha reports the exponential rate. It is 0 for non-exponential functions.
func (f Function) Alpha() float64 { return f.alpha }

// Evaluate returns φ(x). It is pure and defined for every finite x;
// exponential terms may overflow to +Inf.
// Complexity: O(1).
func (f Function) Evaluate(x float64) float64 {
	switch f.kind {
	case KindSin:
		return math.Sin(float64(f.order) * math.Pi * x)
	case KindCos:
		return math.Cos(float64(f.order) * math.Pi * x)
	case KindExponential:
		return math.Exp(f.alpha * x)
	default:
		return math.Pow(x, float64(f.order))
	}
}

// Clone returns an independent copy of f. Function holds no references,
// so the copy is the value itself.
func (f Function) Clone() Function { return f }

// String renders f in the "kind:param" notation accepted by Parse.
func (f Function) String() string {
	if f.kind == KindExponential {
		return tagExponential + termSep + strconv.FormatFloat(f.alpha, 'g', -1, 64)
	}

	return f.kind.String() + termSep + strconv.Itoa(f.order)
}

// Parse decodes a term such as "poly:3", "sin:2", "cos:0" or "exp:-0.5".
// Long tags "polynomial" and "exponential" are accepted as well; tags are
// case-insensitive and surrounding spaces are ignored.
//
// Errors:
//   - ErrBadTerm          : missing separator or unparsable parameter.
//   - ErrUnknownKind      : unrecognised tag.
//   - ErrInvalidParameter : negative degree or non-finite alpha.
func Parse(term string) (Function, error) {
	tag, param, ok := strings.Cut(strings.TrimSpace(term), termSep)
	if !ok {
		return Function{}, fmt.Errorf("Parse(%q): %w", term, ErrBadTerm)
	}
	tag = strings.ToLower(strings.TrimSpace(tag))
	param = strings.TrimSpace(param)

	switch tag {
	case tagPolynomial, "polynomial":
		n, err := strconv.Atoi(param)
		if err != nil {
			return Function{}, fmt.Errorf("Parse(%q): %w", term, ErrBadTerm)
		}
		return NewPolynomial(n)
	case tagSin, tagCos:
		n, err := strconv.Atoi(param)
		if err != nil {
			return Function{}, fmt.Errorf("Parse(%q): %w", term, ErrBadTerm)
		}
		if tag == tagSin {
			return NewSin(n), nil
		}
		return NewCos(n), nil
	case tagExponential, "exponential":
		alpha, err := strconv.ParseFloat(param, 64)
		if err != nil {
			return Function{}, fmt.Errorf("Parse(%q): %w", term, ErrBadTerm)
		}
		return NewExponential(alpha)
	default:
		return Function{}, fmt.Errorf("Parse(%q): %w", term, ErrUnknownKind)
	}
}

// ParseAll decodes every term in order, stopping at the first error.
func ParseAll(terms []string) ([]Function, error) {
	out := make([]Function, 0, len(terms))
	for _, t := range terms {
		f, err := Parse(t)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}
