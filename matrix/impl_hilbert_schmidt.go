// SPDX-License-Identifier: MIT

// Package matrix - Hilbert–Schmidt geometry on Dense.
//
// Purpose:
//   - Real part of the Hilbert–Schmidt inner product Re tr(A†B), the Frobenius
//     norm and real-scaled accumulation dst += α·x. These are the hot loops of
//     basis.Represent and basis.Combine.
//
// Implementation:
//   - A complex buffer is reinterpreted as an interleaved float buffer
//     [re0, im0, re1, im1, ...] of twice the length (no copy).
//   - Re Σ conj(a)·b = Σ (re_a·re_b + im_a·im_b), i.e. a plain float dot product
//     over the interleaved views, handed to viterin/vek (complex128) or
//     viterin/vek/vek32 (complex64).
//   - Scaling by a real α and adding are component-wise on the same views.

package matrix

import (
	"unsafe"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

const (
	opInnerHS   = "InnerHS"
	opNormHS    = "FrobeniusNorm"
	opAddScaled = "AddScaledReal"
)

// floats64 views a complex128 slice as its interleaved float64 components.
func floats64(s []complex128) []float64 {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*float64)(unsafe.Pointer(&s[0])), 2*len(s))
}

// floats32 views a complex64 slice as its interleaved float32 components.
func floats32(s []complex64) []float32 {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*float32)(unsafe.Pointer(&s[0])), 2*len(s))
}

// InnerHS returns Re tr(a†b) = Re Σ conj(a[i,j])·b[i,j].
// For Hermitian a and b the imaginary part vanishes, so this is the full
// Hilbert–Schmidt inner product on the real space of Hermitian matrices.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func InnerHS[C Complex](a, b *Dense[C]) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opInnerHS, err)
	}

	return innerRaw(a.data, b.data), nil
}

// innerRaw dispatches on the concrete element type; shapes are pre-validated.
func innerRaw[C Complex](a, b []C) float64 {
	switch x := any(a).(type) {
	case []complex128:
		return vek.Dot(floats64(x), floats64(any(b).([]complex128)))
	case []complex64:
		return float64(vek32.Dot(floats32(x), floats32(any(b).([]complex64))))
	}

	return 0
}

// FrobeniusNorm returns sqrt(tr(m†m)).
// Errors: ErrNilMatrix.
func FrobeniusNorm[C Complex](m *Dense[C]) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNormHS, err)
	}
	switch x := any(m.data).(type) {
	case []complex128:
		return vek.Norm(floats64(x)), nil
	case []complex64:
		return float64(vek32.Norm(floats32(x))), nil
	}

	return 0, nil
}

// AddScaledReal performs dst += alpha·x IN PLACE on dst.
// This is the only mutating kernel of the package; it exists so that
// basis.Combine can accumulate a linear combination into one buffer.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c) scratch for the scaled copy.
func AddScaledReal[C Complex](dst *Dense[C], alpha float64, x *Dense[C]) error {
	if err := ValidateSameShape(dst, x); err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	if alpha == 0 {
		return nil
	}
	switch d := any(dst.data).(type) {
	case []complex128:
		vek.Add_Inplace(floats64(d), vek.MulNumber(floats64(any(x.data).([]complex128)), alpha))
	case []complex64:
		vek32.Add_Inplace(floats32(d), vek32.MulNumber(floats32(any(x.data).([]complex64)), float32(alpha)))
	}

	return nil
}
