// SPDX-License-Identifier: MIT

// Package basis - Hermitian matrix basis.
//
// Purpose:
//   - Enumerate the d² elements H_{a,b} of an orthonormal basis of the real
//     vector space of d×d Hermitian matrices.
//
// Enumeration (1-based, a outer, b inner):
//   - a > b : (i|a⟩⟨b| − i|b⟩⟨a|)/√2
//   - a < b : (|a⟩⟨b| + |b⟩⟨a|)/√2
//   - a = b : |a⟩⟨a|
//
// The order is part of the contract: coordinates produced by Represent are
// only meaningful to Combine over the same order.
//
// Complexity:
//   - Each element costs O(d²) to allocate; the full sweep O(d⁴).

package basis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qinfo/matrix"
)

const opNewHermitian = "NewHermitian"

// Hermitian is the orthonormal Hermitian basis of dimension d.
// A Hermitian value is immutable and safe to share; its iterators are not.
type Hermitian[C matrix.Complex] struct {
	d int
}

// NewHermitian returns the Hermitian basis of d×d matrices.
// Errors: ErrInvalidDimension for d < 1.
func NewHermitian[C matrix.Complex](d int) (*Hermitian[C], error) {
	if d < 1 {
		return nil, fmt.Errorf("%s(%d): %w", opNewHermitian, d, ErrInvalidDimension)
	}

	return &Hermitian[C]{d: d}, nil
}

// Side returns d.
func (h *Hermitian[C]) Side() int { return h.d }

// Len returns d².
func (h *Hermitian[C]) Len() int { return h.d * h.d }

// Iter starts a fresh enumeration at (a, b) = (1, 1).
func (h *Hermitian[C]) Iter() Iterator[C] {
	return &hermitianIter[C]{d: h.d, a: 1, b: 1}
}

// hermitianIter walks (a, b) with b fastest.
type hermitianIter[C matrix.Complex] struct {
	d    int
	a, b int
}

// Next emits H_{a,b} and advances the pair.
func (it *hermitianIter[C]) Next() (*matrix.Dense[C], bool) {
	if it.a > it.d {
		return nil, false
	}
	data := make([]C, it.d*it.d)
	putHermitian(data, it.d, it.a, it.b, 1)

	it.b++
	if it.b > it.d {
		it.b = 1
		it.a++
	}
	e, _ := matrix.NewDenseData(it.d, it.d, data)

	return e, true
}

// putHermitian writes scale·H_{a,b} (1-based a, b) into the zeroed n×n
// row-major buffer data.
func putHermitian[C matrix.Complex](data []C, n, a, b int, scale float64) {
	i, j := a-1, b-1
	switch {
	case a == b:
		data[i*n+i] = C(complex(scale, 0))
	case a > b:
		s := scale / math.Sqrt2
		data[i*n+j] = C(complex(0, s))
		data[j*n+i] = C(complex(0, -s))
	default:
		s := C(complex(scale/math.Sqrt2, 0))
		data[i*n+j] = s
		data[j*n+i] = s
	}
}
