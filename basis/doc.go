// Package basis enumerates structured orthonormal bases of matrix spaces and
// converts between a matrix and its real coordinates in such a basis.
//
// 🚀 What is in here?
//
//	• Hermitian – the d² elements of an orthonormal basis of d×d Hermitian
//	  matrices under the Hilbert–Schmidt inner product Re tr(A†B).
//	• Channel   – an orthonormal basis of the Hermitian operators J on
//	  out⊗in whose partial trace over the output is proportional to the
//	  identity, the real span of dynamical (Choi) matrices of quantum
//	  channels. It has idim²·odim² − idim² + 1 elements.
//	• Represent / Combine – coordinates of a matrix and the inverse sum,
//	  in iterator order: Combine(b, Represent(b, M)) ≈ M for M in the span.
//	• RepresentChannel – Represent applied to the dynamical matrix of a
//	  channel.Channel.
//
// ⚙️ Iteration:
//
//	Elements are produced lazily and never cached; every Iter call starts a
//	fresh, independent sequence. Materialize collects them when a caller
//	needs to keep them. Iterators carry private loop counters: independent
//	iterators may run on different goroutines, but sharing one iterator
//	between goroutines is undefined.
//
//	b, _ := basis.NewHermitian[complex128](3)
//	coords, err := basis.Represent64(b, rho)
//	back, err := basis.Combine64(b, coords)
//
// Precision is chosen by the element type: a complex64 basis yields float32
// coordinates through Represent32 / Combine32.
package basis
