// SPDX-License-Identifier: MIT

// Package tensor - axis permutation engine.
//
// Purpose:
//   - One runtime routine that every composite-system transform reduces to:
//     view a flat row-major buffer as a rank-r tensor, reorder its axes,
//     flatten again.
//
// Implementation:
//   - Stage 1: validate shape/perm and compute the source stride of each
//     output axis (srcStride[perm[i]]).
//   - Stage 2: walk the output in row-major order with an odometer over the
//     output shape, keeping the source offset incrementally updated, so the
//     only allocation is the result buffer plus O(r) counters.
//
// Complexity:
//   - Time O(N + r) amortized per element, Space O(N) result + O(r) scratch.

package tensor

import (
	"fmt"

	"github.com/katalvlaran/qinfo/dims"
	"github.com/katalvlaran/qinfo/matrix"
)

const opPermute = "Permute"

// Permute reorders the axes of a row-major tensor.
// Output axis i is source axis perm[i], so the output shape is
// shape[perm[0]], shape[perm[1]], ...
//
// Errors:
//   - dims.ErrEmptyDims / dims.ErrNonPositiveDim for an invalid shape.
//   - ErrBadPermutation when perm is not a permutation of [0, len(shape)).
//   - matrix.ErrDimensionMismatch when len(data) != Π shape.
func Permute[T any](data []T, shape, perm []int) ([]T, []int, error) {
	if err := dims.Validate(shape); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opPermute, err)
	}
	if err := checkPerm(perm, len(shape)); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opPermute, err)
	}
	if len(data) != dims.Product(shape) {
		return nil, nil, fmt.Errorf("%s: %d elements for shape %v: %w", opPermute, len(data), shape, matrix.ErrDimensionMismatch)
	}
	out, outShape := permute(data, shape, perm)

	return out, outShape, nil
}

// checkPerm verifies perm is a bijection of [0, rank).
func checkPerm(perm []int, rank int) error {
	if len(perm) != rank {
		return fmt.Errorf("rank %d, perm %v: %w", rank, perm, ErrBadPermutation)
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return fmt.Errorf("perm %v: %w", perm, ErrBadPermutation)
		}
		seen[p] = true
	}

	return nil
}

// permute is the unchecked kernel; callers guarantee a valid shape/perm pair.
func permute[T any](data []T, shape, perm []int) ([]T, []int) {
	rank := len(shape)
	srcStrides := dims.Strides(shape)

	outShape := make([]int, rank)
	step := make([]int, rank) // source stride of each output axis
	for i, p := range perm {
		outShape[i] = shape[p]
		step[i] = srcStrides[p]
	}

	out := make([]T, len(data))
	counter := make([]int, rank)
	var src, o, ax int
	for o = 0; o < len(out); o++ {
		out[o] = data[src]
		// Advance the odometer, fastest (last) output axis first.
		for ax = rank - 1; ax >= 0; ax-- {
			counter[ax]++
			src += step[ax]
			if counter[ax] < outShape[ax] {
				break
			}
			src -= step[ax] * outShape[ax]
			counter[ax] = 0
		}
	}

	return out, outShape
}

// composite validates a square matrix against its composite dimension vector
// and returns the number of subsystems.
func composite[C matrix.Complex](op string, m *matrix.Dense[C], d []int) (int, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := dims.Validate(d); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if p := dims.Product(d); p != m.Rows() {
		return 0, fmt.Errorf("%s: dims %v describe size %d, matrix is %dx%d: %w",
			op, d, p, m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}

	return len(d), nil
}

// doubled returns [d..., d...], the rank-2k tensor shape of a square
// composite matrix (row axes first, then column axes).
func doubled(d []int) []int {
	s := make([]int, 0, 2*len(d))
	s = append(s, d...)

	return append(s, d...)
}

// identityPerm returns [0, 1, ..., n-1].
func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
