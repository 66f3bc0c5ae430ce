package samples

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// Point is one observation (X, Y). It has no identity beyond its coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Set is an unordered collection of points. Duplicates are kept.
// At requires the set to be sorted by X (see Sort).
type Set []Point

// byX orders points by ascending X.
func byX(p, q Point) int { return cmp.Compare(p.X, q.X) }

// Sort orders s by ascending X in place. Points with equal X keep their
// insertion order.
// Complexity: O(n log n).
func (s Set) Sort() {
	slices.SortStableFunc(s, byX)
}

// Sorted reports whether s is ordered by ascending X.
func (s Set) Sorted() bool {
	return slices.IsSortedFunc(s, byX)
}

// Clone returns an independent copy of s (nil for an empty set).
func (s Set) Clone() Set {
	if len(s) == 0 {
		return nil
	}

	return slices.Clone(s)
}

// At evaluates the piecewise-linear reconstruction of s at x.
// s must be sorted by X; At does not check it.
//
// Implementation:
//   - Stage 1: handle the 0- and 1-point cases.
//   - Stage 2: binary search for the first point with X ≥ x.
//   - Stage 3: clamp to the end values outside the sample range,
//     otherwise interpolate between the bracketing pair.
//
// Complexity: O(log n).
func (s Set) At(x float64) float64 {
	switch len(s) {
	case 0:
		return 0
	case 1:
		return s[0].Y
	}

	i := sort.Search(len(s), func(k int) bool { return s[k].X >= x })
	if i == 0 {
		return s[0].Y
	}
	if i == len(s) {
		return s[len(s)-1].Y
	}
	prev, next := s[i-1], s[i]
	t := (x - prev.X) / (next.X - prev.X)

	return prev.Y + t*(next.Y-prev.Y)
}

// Linspace samples f at n evenly spaced x in [a, b], both ends included.
// n == 1 samples only at a.
//
// Errors:
//   - ErrInvalidCount if n ≤ 0.
//   - ErrNilFunction if f is nil.
//
// Complexity: O(n) evaluations of f.
func Linspace(f func(float64) float64, a, b float64, n int) (Set, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Linspace(n=%d): %w", n, ErrInvalidCount)
	}
	if f == nil {
		return nil, fmt.Errorf("Linspace: %w", ErrNilFunction)
	}
	if n == 1 {
		return Set{{X: a, Y: f(a)}}, nil
	}

	out := make(Set, n)
	step := (b - a) / float64(n-1)
	for i := 0; i < n; i++ {
		x := a + float64(i)*step
		out[i] = Point{X: x, Y: f(x)}
	}

	return out, nil
}
