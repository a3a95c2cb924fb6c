// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/qinfo/matrix"
	"github.com/stretchr/testify/require"
)

// MustFrom BUILDS a *Dense from a row-slice literal or fails the test.
func MustFrom[C matrix.Complex](t *testing.T, rows [][]C) *matrix.Dense[C] {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[C matrix.Complex](t *testing.T, m *matrix.Dense[C], i, j int) C {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDense FILLS an r×c complex128 matrix with U(-1,1)+iU(-1,1) by seed.
// Deterministic for a fixed seed.
func RandomDense(t *testing.T, r, c int, seed uint64) *matrix.Dense[complex128] {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m, err := matrix.NewDense[complex128](r, c)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, complex(rng.Float64()*2-1, rng.Float64()*2-1)))
		}
	}

	return m
}

// RequireClose ASSERTS element-wise closeness under eps.
func RequireClose[C matrix.Complex](t *testing.T, want, got *matrix.Dense[C], eps float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, matrix.WithEpsilon(eps))
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%s\ngot\n%s", want, got)
}
