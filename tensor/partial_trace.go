// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/qinfo/dims"
	"github.com/katalvlaran/qinfo/matrix"
)

const (
	opPartialTrace   = "PartialTrace"
	opPermuteSystems = "PermuteSystems"
)

// PartialTrace traces out the selected subsystems of a composite matrix.
// The result is square over the remaining subsystems, in their declared
// order; tracing every subsystem yields the 1×1 matrix [tr m]. An empty
// selection returns a copy of m. Duplicates in sel collapse.
//
// Implementation:
//   - Stage 1: permute the rank-2k tensor to [rows kept, rows traced,
//     cols kept, cols traced], i.e. a (K·T)×(K·T) matrix with the traced
//     block fastest.
//   - Stage 2: out[a,b] = Σ_t P[a·T+t, b·T+t].
//
// Errors: as PartialTranspose.
// Complexity: Time O(n²), Space O(n²) scratch + O(K²) result.
func PartialTrace[C matrix.Complex](m *matrix.Dense[C], d []int, sel ...int) (*matrix.Dense[C], error) {
	k, err := composite(opPartialTrace, m, d)
	if err != nil {
		return nil, err
	}
	traced, err := dims.Subsystems(k, sel...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPartialTrace, err)
	}
	kept := dims.Complement(k, traced)

	order := append(append(make([]int, 0, k), kept...), traced...)
	perm := make([]int, 2*k)
	for i, s := range order {
		perm[i] = s
		perm[k+i] = k + s
	}
	data, _ := permute(m.Raw(), doubled(d), perm)

	kd, td := 1, 1
	for _, s := range kept {
		kd *= d[s]
	}
	for _, s := range traced {
		td *= d[s]
	}
	n := kd * td
	out := make([]C, kd*kd)
	var a, b, t int
	for a = 0; a < kd; a++ {
		for b = 0; b < kd; b++ {
			var s C
			for t = 0; t < td; t++ {
				s += data[(a*td+t)*n+b*td+t]
			}
			out[a*kd+b] = s
		}
	}

	return matrix.NewDenseData(kd, kd, out)
}

// PermuteSystems reorders the subsystems of a composite matrix. order is a
// 1-based permutation: subsystem i of the result is subsystem order[i] of m.
// For d = [dA, dB], PermuteSystems(A⊗B, d, []int{2, 1}) == B⊗A.
//
// Errors: as PartialTranspose, plus dims.ErrLengthMismatch,
// dims.ErrSubsystemOutOfRange and dims.ErrNotPermutation for a bad order.
func PermuteSystems[C matrix.Complex](m *matrix.Dense[C], d []int, order []int) (*matrix.Dense[C], error) {
	k, err := composite(opPermuteSystems, m, d)
	if err != nil {
		return nil, err
	}
	p, err := dims.Permutation(k, order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPermuteSystems, err)
	}
	perm := make([]int, 2*k)
	for i, s := range p {
		perm[i] = s
		perm[k+i] = k + s
	}
	data, _ := permute(m.Raw(), doubled(d), perm)

	return matrix.NewDenseData(m.Rows(), m.Cols(), data)
}
