// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/qinfo/matrix"
	"github.com/stretchr/testify/require"
)

// naiveInner is the textbook Re tr(a† b) used as the reference for the vek path.
func naiveInner(t *testing.T, a, b *matrix.Dense[complex128]) float64 {
	t.Helper()
	adj, err := matrix.Adjoint(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(adj, b)
	require.NoError(t, err)
	tr, err := matrix.Trace(prod)
	require.NoError(t, err)

	return real(tr)
}

// TestInnerHS_MatchesTrace compares the interleaved dot product with Re tr(A†B).
func TestInnerHS_MatchesTrace(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		a := RandomDense(t, 4, 4, seed)
		b := RandomDense(t, 4, 4, seed+100)

		got, err := matrix.InnerHS(a, b)
		require.NoError(t, err)
		require.InDelta(t, naiveInner(t, a, b), got, 1e-12)
	}
}

// TestInnerHS_Complex64 runs the vek32 backend.
func TestInnerHS_Complex64(t *testing.T) {
	a := MustFrom(t, [][]complex64{{1, 1i}, {-1i, 2}})
	b := MustFrom(t, [][]complex64{{3, 2i}, {-2i, 1}})

	// Re Σ conj(a)·b = 3 + 2 + 2 + 2
	got, err := matrix.InnerHS(a, b)
	require.NoError(t, err)
	require.InDelta(t, 9.0, got, 1e-6)

	_, err = matrix.InnerHS(a, MustFrom(t, [][]complex64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFrobeniusNorm checks sqrt(Σ|m_ij|²) for both precisions.
func TestFrobeniusNorm(t *testing.T) {
	n, err := matrix.FrobeniusNorm(MustFrom(t, [][]complex128{{3, 4i}}))
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, 1e-12)

	n, err = matrix.FrobeniusNorm(MustFrom(t, [][]complex64{{1, 1i}, {1, 1}}))
	require.NoError(t, err)
	require.InDelta(t, 2.0, n, 1e-6)

	_, err = matrix.FrobeniusNorm[complex64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddScaledReal checks dst += α·x in place and the shape guard.
func TestAddScaledReal(t *testing.T) {
	dst := MustFrom(t, [][]complex128{{1, 1i}})
	x := MustFrom(t, [][]complex128{{2, 2 - 2i}})

	require.NoError(t, matrix.AddScaledReal(dst, 0.5, x))
	require.Equal(t, complex128(2), MustAt(t, dst, 0, 0))
	require.InDelta(t, 0.0, cmplx.Abs(MustAt(t, dst, 0, 1)-(1+0i)), 1e-15)

	d32 := MustFrom(t, [][]complex64{{0, 0}})
	require.NoError(t, matrix.AddScaledReal(d32, math.Sqrt2, MustFrom(t, [][]complex64{{1i, 1}})))
	require.InDelta(t, math.Sqrt2, float64(imag(MustAt(t, d32, 0, 0))), 1e-6)

	require.ErrorIs(t, matrix.AddScaledReal(dst, 1, MustFrom(t, [][]complex128{{1}})), matrix.ErrDimensionMismatch)
}

// TestInterleavedViews checks that the float views alias the complex buffer
// as [re0, im0, re1, im1, ...].
func TestInterleavedViews(t *testing.T) {
	z := []complex128{1 + 2i, 3 - 4i}
	f := matrix.Floats64TestOnly(z)
	require.Equal(t, []float64{1, 2, 3, -4}, f)
	f[3] = 5
	require.Equal(t, complex128(3+5i), z[1])

	z32 := []complex64{-1 + 0.5i}
	require.Equal(t, []float32{-1, 0.5}, matrix.Floats32TestOnly(z32))

	require.Nil(t, matrix.Floats64TestOnly(nil))
}
