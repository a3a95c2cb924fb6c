// Package matrix offers the dense complex matrix used throughout qinfo.
//
// The matrix package provides:
//
//   - Dense[C], a row-major complex64/complex128 matrix with bounds-checked
//     accessors and a finite-value policy.
//   - Kernels that never mutate their inputs: Add, Sub, Scale, Mul, Adjoint,
//     Transpose, Kron, Trace, AllClose, IsHermitian.
//   - Hilbert–Schmidt geometry (InnerHS, FrobeniusNorm, AddScaledReal) backed
//     by the viterin/vek float kernels.
//   - Sentinel errors shared by the tensor, basis and channel packages.
//
// Composite-system convention: subsystem 1 is the leftmost Kronecker factor,
// so in row-major storage its digit varies slowest.
//
// See the examples in this package and in tensor for usage patterns.
package matrix
