// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/qinfo/dims"
	"github.com/katalvlaran/qinfo/matrix"
)

const opPartialTranspose = "PartialTranspose"

// PartialTranspose transposes the selected subsystems of a composite matrix
// and leaves the others untouched.
// MAIN DESCRIPTION:
//   - m is square with side Π d; sel lists 1-based subsystems. Duplicates in
//     sel collapse to one entry, so PartialTranspose(m, d, 1, 1) equals
//     PartialTranspose(m, d, 1). An empty selection returns a copy of m.
//
// Implementation:
//   - Stage 1: validate m against d and normalize sel.
//   - Stage 2: view m as a rank-2k tensor [row1..rowk, col1..colk]; for each
//     selected subsystem s swap the positions of row_s and col_s.
//   - Stage 3: run the permutation engine and wrap the single result buffer.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - dims.ErrEmptyDims, dims.ErrNonPositiveDim.
//   - matrix.ErrDimensionMismatch when Π d != m.Rows().
//   - dims.ErrSubsystemOutOfRange for an index outside [1, len(d)].
//
// Complexity:
//   - Time O(n²), Space O(n²) for the result.
func PartialTranspose[C matrix.Complex](m *matrix.Dense[C], d []int, sel ...int) (*matrix.Dense[C], error) {
	k, err := composite(opPartialTranspose, m, d)
	if err != nil {
		return nil, err
	}
	sys, err := dims.Subsystems(k, sel...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPartialTranspose, err)
	}

	perm := identityPerm(2 * k)
	for _, s := range sys {
		perm[s], perm[k+s] = k+s, s
	}
	data, _ := permute(m.Raw(), doubled(d), perm)

	return matrix.NewDenseData(m.Rows(), m.Cols(), data)
}
