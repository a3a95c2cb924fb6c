// SPDX-License-Identifier: MIT

package basis

import (
	"iter"

	"github.com/katalvlaran/qinfo/matrix"
)

// Basis is a finite orthonormal family of Side()×Side() matrices with a
// deterministic enumeration order.
type Basis[C matrix.Complex] interface {
	// Side is the linear dimension of every element.
	Side() int
	// Len is the number of elements.
	Len() int
	// Iter starts a fresh sequence from the first element.
	Iter() Iterator[C]
}

// Iterator yields basis elements one at a time. Next returns false once the
// sequence is exhausted; each returned matrix is freshly allocated and owned
// by the caller. An Iterator must not be shared between goroutines.
type Iterator[C matrix.Complex] interface {
	Next() (*matrix.Dense[C], bool)
}

// Compile-time conformance.
var (
	_ Basis[complex128] = (*Hermitian[complex128])(nil)
	_ Basis[complex64]  = (*Channel[complex64])(nil)
)

// All exposes the elements of b as a range-over-func sequence of
// (position, element) pairs.
//
//	for i, e := range basis.All(b) { ... }
func All[C matrix.Complex](b Basis[C]) iter.Seq2[int, *matrix.Dense[C]] {
	return func(yield func(int, *matrix.Dense[C]) bool) {
		it := b.Iter()
		for i := 0; ; i++ {
			e, ok := it.Next()
			if !ok || !yield(i, e) {
				return
			}
		}
	}
}

// Materialize collects every element of b in enumeration order.
// Complexity: Time O(Len·Side²), Space O(Len·Side²).
func Materialize[C matrix.Complex](b Basis[C]) []*matrix.Dense[C] {
	out := make([]*matrix.Dense[C], 0, b.Len())
	for _, e := range All(b) {
		out = append(out, e)
	}

	return out
}
