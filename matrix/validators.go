// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/Hermitian checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - The Hermitian check runs O(n²) on the upper triangle (diagonal included).

package matrix

import (
	"fmt"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[C Complex](m *Dense[C]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[C Complex](m *Dense[C]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal shapes.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape[C Complex](a, b *Dense[C]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[C Complex](a, b *Dense[C]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateHermitian checks |A[i,j] - conj(A[j,i])| ≤ eps for all i ≤ j.
//
// Errors: ErrNilMatrix, ErrNonSquare on structure; ErrNotHermitian on violation.
// Complexity: O(n²), Space O(1).
func ValidateHermitian[C Complex](m *Dense[C], eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateHermitian", err)
	}
	n := m.r
	var i, j int
	var aij, aji complex128
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ { // diagonal included: it must be real
			aij = widen(m.data[i*n+j])
			aji = widen(m.data[j*n+i])
			if cmplx.Abs(aij-cmplx.Conj(aji)) > eps {
				return validatorErrorf("ValidateHermitian", ErrNotHermitian)
			}
		}
	}

	return nil
}
