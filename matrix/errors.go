// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and re-used by tensor, basis and channel. All kernels MUST return
// these sentinels and tests MUST check them via errors.Is. No kernel should
// panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// returned wrapped with an operation tag (fmt.Errorf("%s: %w", op, ErrX));
// callers match with errors.Is.
//
// ERROR CLASSES:
//   - shape : ErrBadShape, ErrInvalidDimensions, ErrNonSquare, ErrDimensionMismatch
//   - index : ErrOutOfRange
//   - domain: ErrNotHermitian, ErrNaNInf
//   - usage : ErrNilMatrix

var (
	// ErrBadShape is returned when a row-slice literal is ragged or empty.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// or a composite dimension vector whose product differs from the matrix size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotHermitian signals that a matrix expected to be Hermitian violated
	// A == A† within the configured epsilon.
	ErrNotHermitian = errors.New("matrix: matrix is not Hermitian within eps")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
