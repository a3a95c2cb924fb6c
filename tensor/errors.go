package tensor

import "errors"

var (
	// ErrBadPermutation indicates an axis permutation that is not a bijection
	// of [0, rank) or whose rank differs from the tensor shape.
	ErrBadPermutation = errors.New("tensor: invalid axis permutation")
)
