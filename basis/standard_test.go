package basis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/basis"
)

func TestPolynomial_AscendingPowers(t *testing.T) {
	fs, err := basis.Polynomial(3)
	require.NoError(t, err)
	require.Len(t, fs, 4)
	for d, f := range fs {
		assert.Equal(t, basis.KindPolynomial, f.Kind())
		assert.Equal(t, d, f.Order(), "power must ascend from 0")
	}

	fs, err = basis.Polynomial(0)
	require.NoError(t, err)
	assert.Len(t, fs, 1)

	_, err = basis.Polynomial(-1)
	assert.ErrorIs(t, err, basis.ErrInvalidParameter)
}

// TestTrigonometric_Interleaving checks the constant-then-(cos,sin) order.
func TestTrigonometric_Interleaving(t *testing.T) {
	fs, err := basis.Trigonometric(2)
	require.NoError(t, err)

	got := make([]string, len(fs))
	for i, f := range fs {
		got[i] = f.String()
	}
	assert.Equal(t, []string{"cos:0", "cos:1", "sin:1", "cos:2", "sin:2"}, got)

	fs, err = basis.Trigonometric(0)
	require.NoError(t, err)
	assert.Len(t, fs, 1, "max frequency 0 yields only the constant")

	_, err = basis.Trigonometric(-1)
	assert.ErrorIs(t, err, basis.ErrInvalidParameter)
}

func TestTrigonometric_Count(t *testing.T) {
	for m := 0; m <= 5; m++ {
		fs, err := basis.Trigonometric(m)
		require.NoError(t, err)
		assert.Len(t, fs, 1+2*m)
	}
}

func TestExponential_InputOrder(t *testing.T) {
	fs, err := basis.Exponential(-1, 0, 2.5)
	require.NoError(t, err)
	require.Len(t, fs, 3)
	assert.Equal(t, -1.0, fs[0].Alpha())
	assert.Equal(t, 0.0, fs[1].Alpha())
	assert.Equal(t, 2.5, fs[2].Alpha())

	fs, err = basis.Exponential()
	require.NoError(t, err)
	assert.Empty(t, fs)
}
