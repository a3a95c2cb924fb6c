// SPDX-License-Identifier: MIT

// Package basis - channel (dynamical matrix) basis.
//
// Purpose:
//   - Enumerate an orthonormal basis of the Hermitian operators J on out⊗in
//     with tr_out J ∝ I_in. Dynamical matrices of trace-preserving channels
//     (tr_out J = I_in) lie in this span, so their coordinates parametrize
//     quantum channels.
//
// Elements, for output pair (a, c) ∈ [1,odim]² and input pair (b, d) ∈ [1,idim]²:
//   - a ≠ c       : H^{odim}_{a,c} ⊗ H^{idim}_{b,d}
//   - a = c < odim: G_a ⊗ H^{idim}_{b,d}, G_a = diag(1,…,1, −a, 0,…)/√(a+a²)
//     with a leading ones
//   - a = c = odim: I/√(idim·odim), emitted once
//
// Every element except the last has tr_out = 0, the last carries the
// identity direction, giving idim²·odim² − idim² + 1 elements in total.
//
// Enumeration:
//   - A four-digit counter (a, c, b, d) starting at (1,1,1,1); d advances
//     fastest, then b, then c, then a. The walk stops when
//     a == odim && c == odim && d == 2, i.e. right after the identity.

package basis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qinfo/matrix"
)

const opNewChannel = "NewChannel"

// Channel is the dynamical-matrix basis for channels from an idim-level
// input to an odim-level output. Elements are (idim·odim)×(idim·odim) with
// the output as the left Kronecker factor.
type Channel[C matrix.Complex] struct {
	idim, odim int
}

// NewChannel returns the channel basis for the given input and output dimensions.
// Errors: ErrInvalidDimension when either dimension is below 1.
func NewChannel[C matrix.Complex](idim, odim int) (*Channel[C], error) {
	if idim < 1 || odim < 1 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewChannel, idim, odim, ErrInvalidDimension)
	}

	return &Channel[C]{idim: idim, odim: odim}, nil
}

// InputDim returns idim.
func (ch *Channel[C]) InputDim() int { return ch.idim }

// OutputDim returns odim.
func (ch *Channel[C]) OutputDim() int { return ch.odim }

// Side returns idim·odim.
func (ch *Channel[C]) Side() int { return ch.idim * ch.odim }

// Len returns idim²·odim² − idim² + 1.
func (ch *Channel[C]) Len() int {
	i2 := ch.idim * ch.idim

	return i2*ch.odim*ch.odim - i2 + 1
}

// Iter starts a fresh enumeration at (a, c, b, d) = (1, 1, 1, 1).
func (ch *Channel[C]) Iter() Iterator[C] {
	return &channelIter[C]{idim: ch.idim, odim: ch.odim, a: 1, c: 1, b: 1, d: 1}
}

type channelIter[C matrix.Complex] struct {
	idim, odim int
	a, c, b, d int
	done       bool
}

// Next emits the element at the current counter and advances it.
func (it *channelIter[C]) Next() (*matrix.Dense[C], bool) {
	if it.done {
		return nil, false
	}
	e := it.element()
	it.advance()

	return e, true
}

// advance steps the (a, c, b, d) counter and applies the stop rule.
func (it *channelIter[C]) advance() {
	it.d++
	if it.a == it.odim && it.c == it.odim && it.d == 2 {
		it.done = true

		return
	}
	if it.d <= it.idim {
		return
	}
	it.d = 1
	it.b++
	if it.b <= it.idim {
		return
	}
	it.b = 1
	it.c++
	if it.c <= it.odim {
		return
	}
	it.c = 1
	it.a++
}

// element builds the matrix for the current counter.
func (it *channelIter[C]) element() *matrix.Dense[C] {
	n := it.idim * it.odim
	if it.a == it.odim && it.c == it.odim {
		v := C(complex(1/math.Sqrt(float64(n)), 0))
		data := make([]C, n*n)
		for i := 0; i < n; i++ {
			data[i*n+i] = v
		}
		e, _ := matrix.NewDenseData(n, n, data)

		return e
	}

	out := make([]C, it.odim*it.odim)
	if it.a != it.c {
		putHermitian(out, it.odim, it.a, it.c, 1)
	} else {
		putDiagGenerator(out, it.odim, it.a)
	}
	in := make([]C, it.idim*it.idim)
	putHermitian(in, it.idim, it.b, it.d, 1)

	om, _ := matrix.NewDenseData(it.odim, it.odim, out)
	im, _ := matrix.NewDenseData(it.idim, it.idim, in)
	// operands are non-nil by construction
	e, _ := matrix.Kron(om, im)

	return e
}

// putDiagGenerator writes G_a = diag(1,…,1, −a, 0,…)/√(a+a²) (a leading
// ones, 1 ≤ a < n) into the zeroed n×n buffer data.
func putDiagGenerator[C matrix.Complex](data []C, n, a int) {
	fa := float64(a)
	s := 1 / math.Sqrt(fa+fa*fa)
	one := C(complex(s, 0))
	for i := 0; i < a; i++ {
		data[i*n+i] = one
	}
	data[a*n+a] = C(complex(-fa*s, 0))
}
