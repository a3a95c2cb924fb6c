package basis_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/qinfo/matrix"
	"github.com/stretchr/testify/require"
)

// randomHermitian returns (A + A†)/2 for a seeded Gaussian n×n A.
func randomHermitian[C matrix.Complex](t testing.TB, n int, seed uint64) *matrix.Dense[C] {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 3*seed+7))
	data := make([]C, n*n)
	for i := range data {
		data[i] = C(complex(rng.NormFloat64(), rng.NormFloat64()))
	}
	a, err := matrix.NewDenseData(n, n, data)
	require.NoError(t, err)
	adj, err := matrix.Adjoint(a)
	require.NoError(t, err)
	sum, err := matrix.Add(a, adj)
	require.NoError(t, err)
	h, err := matrix.Scale(sum, C(0.5))
	require.NoError(t, err)

	return h
}

// requireClose ASSERTS element-wise closeness under eps.
func requireClose[C matrix.Complex](t *testing.T, want, got *matrix.Dense[C], eps float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, matrix.WithEpsilon(eps))
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%s\ngot\n%s", want, got)
}

// requireOrthonormal checks that the Gram matrix of elems is the identity
// and that every element is Hermitian.
func requireOrthonormal[C matrix.Complex](t *testing.T, elems []*matrix.Dense[C], eps float64) {
	t.Helper()
	for i, a := range elems {
		require.NoErrorf(t, matrix.ValidateHermitian(a, eps), "element %d", i)
		for j, b := range elems {
			g, err := matrix.InnerHS(a, b)
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDeltaf(t, want, g, eps, "gram[%d][%d]", i, j)
		}
	}
}

// mustFrom BUILDS a *Dense from rows or fails the test.
func mustFrom[C matrix.Complex](t *testing.T, rows [][]C) *matrix.Dense[C] {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}
