// SPDX-License-Identifier: MIT

package dims

import (
	"fmt"
	"math"
	"slices"
)

// Operation tags used in error wrapping.
const (
	opValidate   = "Validate"
	opDecode     = "Decode"
	opEncode     = "Encode"
	opSubsystems = "Subsystems"
	opPerm       = "Permutation"
)

func dimsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks the composite dimension vector invariant:
// at least one subsystem, every dimension ≥ 1 and a total dimension Π d[i]
// that fits in an int.
//
// Errors: ErrEmptyDims, ErrNonPositiveDim, ErrDimsOverflow.
// Complexity: O(k).
func Validate(d []int) error {
	if len(d) == 0 {
		return dimsErrorf(opValidate, ErrEmptyDims)
	}
	p := 1
	for i, v := range d {
		if v < 1 {
			return fmt.Errorf("%s: subsystem %d has dimension %d: %w", opValidate, i+1, v, ErrNonPositiveDim)
		}
		if p > math.MaxInt/v {
			return fmt.Errorf("%s: product of %v: %w", opValidate, d, ErrDimsOverflow)
		}
		p *= v
	}

	return nil
}

// Product returns Π d[i]; 1 for an empty vector.
// The result is exact only for vectors accepted by Validate.
func Product(d []int) int {
	p := 1
	for _, v := range d {
		p *= v
	}

	return p
}

// Strides returns the row-major strides of d: the last subsystem has stride 1
// and stride[i] = stride[i+1]*d[i+1].
func Strides(d []int) []int {
	s := make([]int, len(d))
	acc := 1
	for i := len(d) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= d[i]
	}

	return s
}

// Decode splits a flat index into its mixed-radix digits over d.
// Digit 0 belongs to subsystem 1 and varies slowest.
//
// Errors: ErrEmptyDims, ErrNonPositiveDim, ErrIndexOutOfRange.
func Decode(index int, d []int) ([]int, error) {
	digits := make([]int, len(d))
	if err := DecodeInto(digits, index, d); err != nil {
		return nil, err
	}

	return digits, nil
}

// DecodeInto is Decode without allocation; len(dst) must equal len(d).
func DecodeInto(dst []int, index int, d []int) error {
	if err := Validate(d); err != nil {
		return dimsErrorf(opDecode, err)
	}
	if len(dst) != len(d) {
		return fmt.Errorf("%s: destination has %d digits, want %d: %w", opDecode, len(dst), len(d), ErrLengthMismatch)
	}
	if index < 0 || index >= Product(d) {
		return fmt.Errorf("%s: index %d: %w", opDecode, index, ErrIndexOutOfRange)
	}
	for i := len(d) - 1; i >= 0; i-- {
		dst[i] = index % d[i]
		index /= d[i]
	}

	return nil
}

// Encode is the inverse of Decode: Σ digits[i]*stride[i].
//
// Errors: ErrEmptyDims, ErrNonPositiveDim, ErrLengthMismatch, ErrIndexOutOfRange
// (a digit outside [0, d[i])).
func Encode(digits, d []int) (int, error) {
	if err := Validate(d); err != nil {
		return 0, dimsErrorf(opEncode, err)
	}
	if len(digits) != len(d) {
		return 0, fmt.Errorf("%s: got %d digits, want %d: %w", opEncode, len(digits), len(d), ErrLengthMismatch)
	}
	index := 0
	for i, v := range digits {
		if v < 0 || v >= d[i] {
			return 0, fmt.Errorf("%s: digit %d=%d outside radix %d: %w", opEncode, i, v, d[i], ErrIndexOutOfRange)
		}
		index = index*d[i] + v
	}

	return index, nil
}

// Subsystems normalizes a 1-based subsystem selection over n subsystems into
// a sorted, duplicate-free slice of 0-based positions.
//
// Duplicates collapse: selecting a subsystem twice is the same as selecting it
// once. An empty selection yields an empty (non-nil) slice.
//
// Errors: ErrSubsystemOutOfRange for any index outside [1, n].
func Subsystems(n int, sel ...int) ([]int, error) {
	out := make([]int, 0, len(sel))
	for _, s := range sel {
		if s < 1 || s > n {
			return nil, fmt.Errorf("%s: subsystem %d not in [1,%d]: %w", opSubsystems, s, n, ErrSubsystemOutOfRange)
		}
		out = append(out, s-1)
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

// Complement returns the 0-based positions in [0, n) absent from sel.
// sel must be sorted (as returned by Subsystems).
func Complement(n int, sel []int) []int {
	out := make([]int, 0, n-len(sel))
	j := 0
	for i := 0; i < n; i++ {
		if j < len(sel) && sel[j] == i {
			j++
			continue
		}
		out = append(out, i)
	}

	return out
}

// Permutation validates a 1-based permutation of n subsystems and returns it
// 0-based. Every value in [1, n] must appear exactly once.
//
// Errors: ErrLengthMismatch, ErrSubsystemOutOfRange, ErrNotPermutation.
func Permutation(n int, order []int) ([]int, error) {
	if len(order) != n {
		return nil, fmt.Errorf("%s: got %d entries, want %d: %w", opPerm, len(order), n, ErrLengthMismatch)
	}
	seen := make([]bool, n)
	out := make([]int, n)
	for i, s := range order {
		if s < 1 || s > n {
			return nil, fmt.Errorf("%s: subsystem %d not in [1,%d]: %w", opPerm, s, n, ErrSubsystemOutOfRange)
		}
		if seen[s-1] {
			return nil, fmt.Errorf("%s: subsystem %d repeated: %w", opPerm, s, ErrNotPermutation)
		}
		seen[s-1] = true
		out[i] = s - 1
	}

	return out, nil
}
