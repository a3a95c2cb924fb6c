// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major complex buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Layout contract (relied upon by tensor):
//   - data[i*cols+j] holds element (i,j).
//   - For a composite system with dimension vector [d1..dk], row i decodes to
//     the mixed-radix digits (i1..ik) with i1 the slowest digit, i.e. subsystem 1
//     is the leftmost Kronecker factor.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxFrom = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so callers can still use errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
//
// A Dense is a value owned by whoever constructed it. Kernels in this module
// never mutate their inputs; they return freshly allocated results.
type Dense[C Complex] struct {
	r, c           int  // row and column counts (>0)
	data           []C  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Dense[complex128])(nil)
	_ fmt.Stringer = (*Dense[complex64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[C Complex](rows, cols int) (*Dense[C], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense[C](rows, cols), nil
}

// newDense is the internal allocation path for kernels whose shapes were
// already validated. make() zero-fills the buffer deterministically.
func newDense[C Complex](rows, cols int) *Dense[C] {
	return &Dense[C]{
		r:              rows,
		c:              cols,
		data:           make([]C, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// NewDenseFrom copies a row-slice literal into a new Dense.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures, examples and small operators.
//
// Implementation:
//   - Stage 1: require at least one non-empty row; every row must have the same length.
//   - Stage 2: copy row by row into the flat buffer, rejecting NaN/Inf under the default policy.
//
// Errors:
//   - ErrBadShape for empty or ragged input.
//   - ErrNaNInf for non-finite components.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom[C Complex](rows [][]C) (*Dense[C], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := newDense[C](r, c)

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxFrom, i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if m.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewDenseData wraps a row-major buffer of length rows*cols WITHOUT copying.
// The matrix takes ownership of data; the caller must not retain it.
// Used by tensor to hand over the single buffer a transform allocates.
//
// Errors:
//   - ErrInvalidDimensions for rows<1 or cols<1.
//   - ErrBadShape when len(data) != rows*cols.
//   - ErrNaNInf for non-finite components.
func NewDenseData[C Complex](rows, cols int, data []C) (*Dense[C], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseData(%d,%d): len %d: %w", rows, cols, len(data), ErrBadShape)
	}
	for k, v := range data {
		if isNonFinite(v) {
			return nil, denseErrorf("NewDenseData", k/cols, k%cols, ErrNaNInf)
		}
	}

	return &Dense[C]{r: rows, c: cols, data: data, validateNaNInf: DefaultValidateNaNInf}, nil
}

// NewIdentity returns the n×n identity.
// Complexity: O(n²).
func NewIdentity[C Complex](n int) (*Dense[C], error) {
	m, err := NewDense[C](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// KetBra returns |a⟩⟨b| in dimension d (zero-based a, b).
// Errors: ErrInvalidDimensions for d<1, ErrOutOfRange for a or b outside [0,d).
func KetBra[C Complex](a, b, d int) (*Dense[C], error) {
	m, err := NewDense[C](d, d)
	if err != nil {
		return nil, err
	}
	if a < 0 || a >= d || b < 0 || b >= d {
		return nil, fmt.Errorf("KetBra(%d,%d,%d): %w", a, b, d, ErrOutOfRange)
	}
	m.data[a*d+b] = 1

	return m, nil
}

// Diag returns the square matrix with vals on its main diagonal.
// Errors: ErrInvalidDimensions for an empty vals.
func Diag[C Complex](vals []C) (*Dense[C], error) {
	n := len(vals)
	m, err := NewDense[C](n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		m.data[i*n+i] = v
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[C]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[C]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[C]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows()==Cols().
func (m *Dense[C]) IsSquare() bool { return m.r == m.c }

// Raw exposes the row-major backing slice without copying.
// The slice aliases the matrix; callers that keep it must not write to it
// unless they own the matrix.
func (m *Dense[C]) Raw() []C { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[C]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when out of bounds
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[C]) At(row, col int) (C, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf in either component when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[C]) Set(row, col int, v C) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[C]) Clone() *Dense[C] {
	cp := make([]C, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[C]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Real-valued entries print as plain numbers, others as (re+imi).
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[C]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(formatElem(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// formatElem prints purely real entries without the complex parentheses so
// that integer fixtures print as plain numbers.
func formatElem[C Complex](v C) string {
	z := widen(v)
	if imag(z) == 0 {
		return fmt.Sprintf("%g", real(z))
	}

	return fmt.Sprintf("%g", z)
}

// isNonFinite reports NaN or ±Inf in either component.
func isNonFinite[C Complex](v C) bool {
	z := widen(v)
	re, im := real(z), imag(z)

	return math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0)
}
