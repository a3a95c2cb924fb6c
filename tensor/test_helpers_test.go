package tensor_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/qinfo/matrix"
	"github.com/stretchr/testify/require"
)

// mustFrom BUILDS a *Dense from rows or fails the test.
func mustFrom[C matrix.Complex](t *testing.T, rows [][]C) *matrix.Dense[C] {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// counting returns the n×n matrix with entries 1..n² in row-major order.
func counting(t *testing.T, n int) *matrix.Dense[complex128] {
	t.Helper()
	data := make([]complex128, n*n)
	for i := range data {
		data[i] = complex(float64(i+1), 0)
	}
	m, err := matrix.NewDenseData(n, n, data)
	require.NoError(t, err)

	return m
}

// random returns a deterministic r×c complex matrix.
func random(t *testing.T, r, c int, seed uint64) *matrix.Dense[complex128] {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 2*seed+1))
	data := make([]complex128, r*c)
	for i := range data {
		data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	m, err := matrix.NewDenseData(r, c, data)
	require.NoError(t, err)

	return m
}

// requireClose ASSERTS element-wise closeness.
func requireClose[C matrix.Complex](t *testing.T, want, got *matrix.Dense[C], eps float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, matrix.WithEpsilon(eps))
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%s\ngot\n%s", want, got)
}
