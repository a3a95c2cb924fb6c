// Package tensor implements the index-reordering transforms of composite
// quantum systems on top of one explicit axis-permutation engine.
//
// 🚀 What is in here?
//
//	A d1·d2···dk square matrix is viewed as a rank-2k tensor
//	[row1..rowk, col1..colk]. Each transform is a fixed reordering of those
//	axes followed by flattening:
//	  • PartialTranspose – swap row_s and col_s for the selected subsystems
//	  • Reshuffle        – interleave [row1, col1, row2, col2, ...]
//	  • PartialTrace     – move traced axes last and sum their diagonal
//	  • PermuteSystems   – reorder whole subsystems
//
// ⚙️ Conventions:
//
//	Storage is row-major and subsystem 1 is the leftmost Kronecker factor
//	(its digit varies slowest). Subsystem selections are 1-based. Inputs are
//	never mutated; every transform returns a new matrix backed by exactly one
//	freshly allocated buffer.
//
//	m, _ := matrix.NewDenseFrom(rows)
//	pt, err := tensor.PartialTranspose(m, []int{2, 2}, 1)
//
// Errors are the matrix and dims sentinels wrapped with the operation name;
// match them with errors.Is.
package tensor
