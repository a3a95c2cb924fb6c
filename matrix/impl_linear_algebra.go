// SPDX-License-Identifier: MIT
// Package matrix provides the dense complex kernels used by tensor, basis
// and channel: element-wise addition, scaling, matrix multiplication,
// adjoint/transpose, Kronecker product and trace. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates exactly one result; inputs are never mutated.
//   - All kernels use the central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opAdjoint   = "Adjoint"
	opTranspose = "Transpose"
	opKron      = "Kron"
	opTrace     = "Trace"
	opAllClose  = "AllClose"
	opHermitian = "IsHermitian"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub is the shared kernel of Add and Sub: res = a + sign*b.
func addSub[C Complex](a, b *Dense[C], sign C, opTag string) (*Dense[C], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDense[C](a.r, a.c)
	for k := range a.data {
		res.data[k] = a.data[k] + sign*b.data[k]
	}

	return res, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add[C Complex](a, b *Dense[C]) (*Dense[C], error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[C Complex](a, b *Dense[C]) (*Dense[C], error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m as a new matrix; m is untouched.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[C Complex](m *Dense[C], alpha C) (*Dense[C], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDense[C](m.r, m.c)
	for k, v := range m.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// Mul returns the matrix product a·b.
// MAIN DESCRIPTION:
//   - Classic i-k-j loop over flat buffers; the k loop is hoisted so the
//     inner j loop streams contiguous rows of b and res.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[C Complex](a, b *Dense[C]) (*Dense[C], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.r, a.c, b.c
	res := newDense[C](rows, cols)

	var i, k, j int
	var aik C
	var rowRes, rowB []C
	for i = 0; i < rows; i++ {
		rowRes = res.data[i*cols : (i+1)*cols]
		for k = 0; k < inner; k++ {
			aik = a.data[i*inner+k]
			if aik == 0 {
				continue // sparse operators (ket-bras, projectors) skip whole rows
			}
			rowB = b.data[k*cols : (k+1)*cols]
			for j = 0; j < cols; j++ {
				rowRes[j] += aik * rowB[j]
			}
		}
	}

	return res, nil
}

// Adjoint returns the conjugate transpose m†.
// Complexity: Time O(r*c), Space O(r*c).
func Adjoint[C Complex](m *Dense[C]) (*Dense[C], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return transposeInto(m, true), nil
}

// Transpose returns the plain transpose mᵀ (no conjugation).
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[C Complex](m *Dense[C]) (*Dense[C], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeInto(m, false), nil
}

// transposeInto materializes mᵀ (or m† when conj) with flipped dimensions:
// data[i*cols + j] → res.data[j*rows + i].
func transposeInto[C Complex](m *Dense[C], conj bool) *Dense[C] {
	rows, cols := m.r, m.c
	res := newDense[C](cols, rows)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			if conj {
				res.data[j*rows+i] = C(cmplx.Conj(widen(m.data[baseSrc+j])))
			} else {
				res.data[j*rows+i] = m.data[baseSrc+j]
			}
		}
	}

	return res
}

// Kron returns the Kronecker product a⊗b.
// MAIN DESCRIPTION:
//   - (a⊗b)[(i1,i2),(j1,j2)] = a[i1,j1]·b[i2,j2]; a is the slow (left) factor.
//   - This is the composite-system convention used across the module:
//     subsystem 1 is the leftmost factor.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space same.
func Kron[C Complex](a, b *Dense[C]) (*Dense[C], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	rows, cols := a.r*b.r, a.c*b.c
	res := newDense[C](rows, cols)

	var i1, j1, i2, j2, base int
	var av C
	for i1 = 0; i1 < a.r; i1++ {
		for j1 = 0; j1 < a.c; j1++ {
			av = a.data[i1*a.c+j1]
			if av == 0 {
				continue
			}
			for i2 = 0; i2 < b.r; i2++ {
				base = (i1*b.r+i2)*cols + j1*b.c
				for j2 = 0; j2 < b.c; j2++ {
					res.data[base+j2] = av * b.data[i2*b.c+j2]
				}
			}
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] for a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace[C Complex](m *Dense[C]) (C, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var s C
	for i := 0; i < m.r; i++ {
		s += m.data[i*m.c+i]
	}

	return s, nil
}

// IsHermitian reports m == m† within the configured epsilon.
// Structural problems (nil, non-square) are returned as errors; a plain
// violation yields (false, nil).
func IsHermitian[C Complex](m *Dense[C], opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opHermitian, err)
	}

	return ValidateHermitian(m, o.eps) == nil, nil
}

// AllClose reports |a[i,j] - b[i,j]| ≤ eps + rtol*|b[i,j]| for every element.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose[C Complex](a, b *Dense[C], opts ...Option) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := gatherOptions(opts...)
	var x, y complex128
	for k := range a.data {
		x, y = widen(a.data[k]), widen(b.data[k])
		if cmplx.Abs(x-y) > o.eps+o.relTol*cmplx.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
