package basis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/basis"
)

const tol = 1e-12

// TestEvaluate_Kinds checks each family against its closed form.
func TestEvaluate_Kinds(t *testing.T) {
	p3, err := basis.NewPolynomial(3)
	require.NoError(t, err)
	p0, err := basis.NewPolynomial(0)
	require.NoError(t, err)
	e, err := basis.NewExponential(0.5)
	require.NoError(t, err)

	cases := []struct {
		name string
		f    basis.Function
		x    float64
		want float64
	}{
		{"poly3", p3, 2, 8},
		{"poly3_negative", p3, -1.5, -3.375},
		{"poly0_at_zero", p0, 0, 1},
		{"sin1_quarter", basis.NewSin(1), 0.5, 1},
		{"sin2_half", basis.NewSin(2), 0.25, 1},
		{"cos0_is_constant", basis.NewCos(0), 123.4, 1},
		{"cos1_one", basis.NewCos(1), 1, -1},
		{"exp_half", e, 2, math.E},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.f.Evaluate(tc.x), tol)
		})
	}
}

// TestEvaluate_ExponentialOverflow ensures overflow propagates as +Inf.
func TestEvaluate_ExponentialOverflow(t *testing.T) {
	e, err := basis.NewExponential(1000)
	require.NoError(t, err)
	assert.True(t, math.IsInf(e.Evaluate(10), 1), "exp overflow must yield +Inf, not an error")
}

// TestZeroValue_IsConstantOne documents the zero value of Function.
func TestZeroValue_IsConstantOne(t *testing.T) {
	var f basis.Function
	assert.Equal(t, basis.KindPolynomial, f.Kind())
	assert.Equal(t, 1.0, f.Evaluate(42))
}

// TestClone_Independent verifies clones behave identically.
func TestClone_Independent(t *testing.T) {
	orig := basis.NewSin(3)
	c := orig.Clone()
	assert.Equal(t, orig, c)
	for _, x := range []float64{-1, 0, 0.1, 0.7} {
		assert.Equal(t, orig.Evaluate(x), c.Evaluate(x))
	}
}

// TestConstructors_InvalidParameter covers rejected parameters.
func TestConstructors_InvalidParameter(t *testing.T) {
	_, err := basis.NewPolynomial(-1)
	assert.ErrorIs(t, err, basis.ErrInvalidParameter)

	_, err = basis.NewExponential(math.NaN())
	assert.ErrorIs(t, err, basis.ErrInvalidParameter)

	_, err = basis.NewExponential(math.Inf(-1))
	assert.ErrorIs(t, err, basis.ErrInvalidParameter)
}

// TestParse_RoundTrip parses terms and renders them back.
func TestParse_RoundTrip(t *testing.T) {
	for _, term := range []string{"poly:0", "poly:4", "sin:2", "cos:0", "cos:-3", "exp:-0.5", "exp:1"} {
		t.Run(term, func(t *testing.T) {
			f, err := basis.Parse(term)
			require.NoError(t, err)
			assert.Equal(t, term, f.String())
		})
	}
}

// TestParse_Aliases accepts long tags, case and whitespace variations.
func TestParse_Aliases(t *testing.T) {
	f, err := basis.Parse("  Polynomial : 2 ")
	require.NoError(t, err)
	assert.Equal(t, basis.KindPolynomial, f.Kind())
	assert.Equal(t, 2, f.Order())

	f, err = basis.Parse("EXPONENTIAL:2.5")
	require.NoError(t, err)
	assert.Equal(t, basis.KindExponential, f.Kind())
	assert.Equal(t, 2.5, f.Alpha())
}

// TestParse_Errors maps malformed input to the right sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		term string
		want error
	}{
		{"sin2", basis.ErrBadTerm},
		{"sin:two", basis.ErrBadTerm},
		{"exp:x", basis.ErrBadTerm},
		{"poly:1.5", basis.ErrBadTerm},
		{"tan:1", basis.ErrUnknownKind},
		{"poly:-2", basis.ErrInvalidParameter},
		{"exp:NaN", basis.ErrInvalidParameter},
	}
	for _, tc := range cases {
		t.Run(tc.term, func(t *testing.T) {
			_, err := basis.Parse(tc.term)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParseAll_StopsAtFirstError returns no partial result.
func TestParseAll_StopsAtFirstError(t *testing.T) {
	fs, err := basis.ParseAll([]string{"poly:1", "sin:1"})
	require.NoError(t, err)
	assert.Len(t, fs, 2)

	fs, err = basis.ParseAll([]string{"poly:1", "bogus", "sin:1"})
	assert.ErrorIs(t, err, basis.ErrBadTerm)
	assert.Nil(t, fs)
}
