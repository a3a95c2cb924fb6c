package tensor_test

import (
	"testing"

	"github.com/katalvlaran/qinfo/dims"
	"github.com/katalvlaran/qinfo/matrix"
	"github.com/katalvlaran/qinfo/tensor"
	"github.com/stretchr/testify/require"
)

// TestReshuffle_TwoQubitFixture checks R(M)[(m,μ),(n,ν)] = M[(m,n),(μ,ν)] on 1..16.
func TestReshuffle_TwoQubitFixture(t *testing.T) {
	got, err := tensor.Reshuffle(counting(t, 4), []int{2, 2})
	require.NoError(t, err)
	requireClose(t, mustFrom(t, [][]complex128{
		{1, 2, 5, 6},
		{3, 4, 7, 8},
		{9, 10, 13, 14},
		{11, 12, 15, 16},
	}), got, 0)
}

// TestReshuffle_Involution applies Reshuffle twice with the same dims.
func TestReshuffle_Involution(t *testing.T) {
	for _, n := range []int{2, 3} {
		d := []int{n, n}
		m := random(t, n*n, n*n, uint64(n))

		once, err := tensor.Reshuffle(m, d)
		require.NoError(t, err)
		twice, err := tensor.Reshuffle(once, d)
		require.NoError(t, err)
		requireClose(t, m, twice, 0)
	}
}

// TestReshuffle_ProductIsRankOne checks R(A⊗B) = vec(A)·vec(B)ᵀ with row-stacking vec.
func TestReshuffle_ProductIsRankOne(t *testing.T) {
	a := random(t, 2, 2, 10)
	b := random(t, 3, 3, 11)
	ab, err := matrix.Kron(a, b)
	require.NoError(t, err)

	got, err := tensor.Reshuffle(ab, []int{2, 3})
	require.NoError(t, err)
	require.Equal(t, 4, got.Rows())
	require.Equal(t, 9, got.Cols())

	va, err := matrix.NewDenseData(4, 1, append([]complex128(nil), a.Raw()...))
	require.NoError(t, err)
	vb, err := matrix.NewDenseData(1, 9, append([]complex128(nil), b.Raw()...))
	require.NoError(t, err)
	want, err := matrix.Mul(va, vb)
	require.NoError(t, err)
	requireClose(t, want, got, 1e-12)
}

// TestReshuffleRect handles an operator between spaces of different size.
func TestReshuffleRect(t *testing.T) {
	// rows over [2,1], columns over [1,3]: a 2x3 operator
	m := mustFrom(t, [][]complex128{{1, 2, 3}, {4, 5, 6}})
	got, err := tensor.ReshuffleRect(m, []int{2, 1}, []int{1, 3})
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 3, got.Cols())
	requireClose(t, m, got, 0)

	_, err = tensor.ReshuffleRect(m, []int{2}, []int{1, 3})
	require.ErrorIs(t, err, dims.ErrLengthMismatch)
	_, err = tensor.ReshuffleRect(m, []int{3, 1}, []int{1, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = tensor.ReshuffleRect[complex128](nil, []int{1}, []int{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestReshuffle_Errors mirrors the PartialTranspose shape checks.
func TestReshuffle_Errors(t *testing.T) {
	_, err := tensor.Reshuffle(random(t, 2, 4, 1), []int{2, 2})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = tensor.Reshuffle(counting(t, 4), []int{4, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
