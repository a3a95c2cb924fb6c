// Package qinfo is a toolkit of numerical primitives for finite-dimensional
// quantum information: composite-system index transforms and structured
// orthonormal bases of matrix spaces.
//
// 🚀 What is qinfo?
//
//	A small, generic (complex64 / complex128) library that brings together:
//		• Dense complex matrices with safe accessors and Hilbert–Schmidt geometry
//		• Mixed-radix index bookkeeping for composite dimension vectors
//		• Partial transpose, reshuffle, partial trace and subsystem permutation
//		• Hermitian and channel bases with Represent / Combine
//		• Quantum channels in Kraus form and their dynamical (Choi) matrices
//
// ✨ Why choose qinfo?
//
//   - One explicit permutation engine behind every transform, directly testable
//   - Errors, not panics: sentinel errors wrapped with the operation name
//   - Inputs are never mutated; each transform allocates one result buffer
//   - Lazy, restartable basis iterators with a fixed enumeration order
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/   Dense[C], kernels (Mul, Kron, Adjoint, Trace, InnerHS, AllClose), validators, options
//	dims/     composite dimension vectors, Encode/Decode, subsystem selections
//	tensor/   Permute engine, PartialTranspose, Reshuffle, PartialTrace, PermuteSystems
//	basis/    Hermitian and Channel bases, Represent, Combine, RepresentChannel
//	channel/  Kraus, unitary and dynamical-matrix channels, IsTracePreserving
//
// Conventions:
//
//	Storage is row-major. Subsystem 1 is the leftmost Kronecker factor and its
//	index digit varies slowest. Subsystem selections are 1-based and behave as
//	sets: duplicates collapse.
//
// Quick example:
//
//	rho, _ := matrix.NewDenseFrom(rows)                  // 4×4 two-qubit state
//	pt, err := tensor.PartialTranspose(rho, []int{2, 2}, 2)
//	b, _ := basis.NewHermitian[complex128](4)
//	coords, err := basis.Represent64(b, rho)
//
// Runnable programs live under examples/.
package qinfo
