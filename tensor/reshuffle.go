// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/qinfo/dims"
	"github.com/katalvlaran/qinfo/matrix"
)

const (
	opReshuffle     = "Reshuffle"
	opReshuffleRect = "ReshuffleRect"
)

// Reshuffle realigns a square composite matrix so that the row and column
// index of each subsystem become neighbours.
//
// For the bipartite case d = [d1, d2]:
//
//	R(M)[(m,μ),(n,ν)] = M[(m,n),(μ,ν)]
//
// so the result is d1² × d2², and for d1 == d2 Reshuffle is an involution.
// For k subsystems the axis order becomes [row1, col1, row2, col2, ...,
// rowk, colk]; the first k axes of that list index the result rows and the
// last k index the columns.
//
// Errors: as PartialTranspose, minus the selection errors, plus
// matrix.ErrNaNInf when m holds a non-finite entry.
func Reshuffle[C matrix.Complex](m *matrix.Dense[C], d []int) (*matrix.Dense[C], error) {
	if _, err := composite(opReshuffle, m, d); err != nil {
		return nil, err
	}

	return reshuffle(opReshuffle, m, d, d)
}

// ReshuffleRect is Reshuffle for a rectangular matrix whose rows decompose
// over rowDims and columns over colDims (len(rowDims) == len(colDims)).
// It maps an operator between spaces of different dimension to the
// realigned form used for Choi/superoperator conversions.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - dims.ErrEmptyDims, dims.ErrNonPositiveDim.
//   - dims.ErrLengthMismatch when the two vectors differ in length.
//   - matrix.ErrDimensionMismatch when Π rowDims != Rows or Π colDims != Cols.
//   - matrix.ErrNaNInf when m holds a non-finite entry.
func ReshuffleRect[C matrix.Complex](m *matrix.Dense[C], rowDims, colDims []int) (*matrix.Dense[C], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opReshuffleRect, err)
	}
	if err := dims.Validate(rowDims); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", opReshuffleRect, err)
	}
	if err := dims.Validate(colDims); err != nil {
		return nil, fmt.Errorf("%s: cols: %w", opReshuffleRect, err)
	}
	if len(rowDims) != len(colDims) {
		return nil, fmt.Errorf("%s: %d row subsystems, %d column subsystems: %w",
			opReshuffleRect, len(rowDims), len(colDims), dims.ErrLengthMismatch)
	}
	if dims.Product(rowDims) != m.Rows() || dims.Product(colDims) != m.Cols() {
		return nil, fmt.Errorf("%s: dims %v x %v vs %dx%d: %w",
			opReshuffleRect, rowDims, colDims, m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}

	return reshuffle(opReshuffleRect, m, rowDims, colDims)
}

// reshuffle interleaves row/column axes per subsystem and splits the
// interleaved list in half into result rows and columns.
func reshuffle[C matrix.Complex](op string, m *matrix.Dense[C], rowDims, colDims []int) (*matrix.Dense[C], error) {
	k := len(rowDims)
	shape := make([]int, 0, 2*k)
	shape = append(shape, rowDims...)
	shape = append(shape, colDims...)

	perm := make([]int, 2*k)
	for i := 0; i < k; i++ {
		perm[2*i] = i
		perm[2*i+1] = k + i
	}
	data, outShape := permute(m.Raw(), shape, perm)

	res, err := matrix.NewDenseData(dims.Product(outShape[:k]), dims.Product(outShape[k:]), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}
