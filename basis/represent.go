// SPDX-License-Identifier: MIT

// Package basis - coordinates in an orthonormal basis.
//
// Purpose:
//   - Represent: x_i = Re tr(B_i† M), one coordinate per element, in
//     iterator order.
//   - Combine: Σ x_i·B_i, the inverse of Represent on the span of the basis.
//
// Implementation:
//   - Both walk a fresh iterator once; no element is retained.
//   - The inner product and the accumulation run on matrix.InnerHS and
//     matrix.AddScaledReal, which hand the interleaved float view of the
//     element buffers to the vek kernels.
//
// The real coordinate type R is a separate type parameter; Represent64 /
// Combine64 and Represent32 / Combine32 pin the usual precision pairs.

package basis

import (
	"fmt"

	"github.com/katalvlaran/qinfo/channel"
	"github.com/katalvlaran/qinfo/matrix"
)

const (
	opRepresent        = "Represent"
	opCombine          = "Combine"
	opRepresentChannel = "RepresentChannel"
)

// Represent returns the coordinates of m in b.
// The projection keeps the real part only, so the result is exact for m in
// the real span of b (Hermitian m for a Hermitian basis). With
// WithHermitianCheck a non-Hermitian m is rejected instead.
//
// Errors:
//   - ErrNilBasis.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrDimensionMismatch when m is not b.Side()×b.Side().
//   - matrix.ErrNotHermitian under WithHermitianCheck.
//
// Complexity: Time O(Len·Side²), Space O(Len) + one element at a time.
func Represent[R matrix.Real, C matrix.Complex](b Basis[C], m *matrix.Dense[C], opts ...Option) ([]R, error) {
	if b == nil {
		return nil, fmt.Errorf("%s: %w", opRepresent, ErrNilBasis)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opRepresent, err)
	}
	if m.Rows() != b.Side() {
		return nil, fmt.Errorf("%s: %dx%d matrix, basis side %d: %w",
			opRepresent, m.Rows(), m.Cols(), b.Side(), matrix.ErrDimensionMismatch)
	}
	if o := gatherOptions(opts...); o.checkHermitian {
		if err := matrix.ValidateHermitian(m, o.eps); err != nil {
			return nil, fmt.Errorf("%s: %w", opRepresent, err)
		}
	}

	coords := make([]R, 0, b.Len())
	for _, e := range All(b) {
		x, err := matrix.InnerHS(e, m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opRepresent, err)
		}
		coords = append(coords, R(x))
	}

	return coords, nil
}

// Combine returns Σ coords[i]·B_i.
// Errors: ErrNilBasis, ErrCoordinateLength when len(coords) != b.Len().
// Complexity: Time O(Len·Side²), Space O(Side²).
func Combine[R matrix.Real, C matrix.Complex](b Basis[C], coords []R) (*matrix.Dense[C], error) {
	if b == nil {
		return nil, fmt.Errorf("%s: %w", opCombine, ErrNilBasis)
	}
	if len(coords) != b.Len() {
		return nil, fmt.Errorf("%s: %d coordinates for %d elements: %w",
			opCombine, len(coords), b.Len(), ErrCoordinateLength)
	}
	acc, err := matrix.NewDense[C](b.Side(), b.Side())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCombine, err)
	}
	for i, e := range All(b) {
		if err = matrix.AddScaledReal(acc, float64(coords[i]), e); err != nil {
			return nil, fmt.Errorf("%s: %w", opCombine, err)
		}
	}

	return acc, nil
}

// RepresentChannel returns the coordinates of the dynamical matrix of ch in
// the channel basis b.
// Errors: as Represent, plus channel.ErrNilChannel and
// matrix.ErrDimensionMismatch when the channel dimensions differ from the
// basis dimensions.
func RepresentChannel[R matrix.Real, C matrix.Complex](b *Channel[C], ch channel.Channel[C], opts ...Option) ([]R, error) {
	if b == nil {
		return nil, fmt.Errorf("%s: %w", opRepresentChannel, ErrNilBasis)
	}
	if ch == nil {
		return nil, fmt.Errorf("%s: %w", opRepresentChannel, channel.ErrNilChannel)
	}
	if ch.InputDim() != b.idim || ch.OutputDim() != b.odim {
		return nil, fmt.Errorf("%s: channel %d→%d, basis %d→%d: %w",
			opRepresentChannel, ch.InputDim(), ch.OutputDim(), b.idim, b.odim, matrix.ErrDimensionMismatch)
	}
	j, err := ch.DynamicalMatrix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRepresentChannel, err)
	}

	return Represent[R](b, j, opts...)
}

// Represent64 is Represent for complex128 bases with float64 coordinates.
func Represent64(b Basis[complex128], m *matrix.Dense[complex128], opts ...Option) ([]float64, error) {
	return Represent[float64](b, m, opts...)
}

// Represent32 is Represent for complex64 bases with float32 coordinates.
func Represent32(b Basis[complex64], m *matrix.Dense[complex64], opts ...Option) ([]float32, error) {
	return Represent[float32](b, m, opts...)
}

// Combine64 is Combine for complex128 bases.
func Combine64(b Basis[complex128], coords []float64) (*matrix.Dense[complex128], error) {
	return Combine(b, coords)
}

// Combine32 is Combine for complex64 bases.
func Combine32(b Basis[complex64], coords []float32) (*matrix.Dense[complex64], error) {
	return Combine(b, coords)
}
