// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints shared by every generic kernel,
// plus the widening conversion the kernels need.
package matrix

// Complex is the element constraint of every composite matrix.
// complex128 is the default precision; complex64 is the single-precision
// variant selected by instantiating a generic type or function with it.
//
// The set is closed (no ~) so that kernels can dispatch on the concrete
// slice type to the float64 or float32 vector backend.
type Complex interface {
	complex64 | complex128
}

// Real is the constraint of basis-coordinate vectors. float64 pairs with
// complex128 and float32 pairs with complex64.
type Real interface {
	float32 | float64
}

// widen converts any element to complex128 for scalar arithmetic that the
// builtins real/imag cannot perform on a type parameter.
func widen[C Complex](v C) complex128 {
	return complex128(v)
}
