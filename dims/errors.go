package dims

import "errors"

var (
	// ErrEmptyDims indicates a composite dimension vector with no subsystems.
	ErrEmptyDims = errors.New("dims: dimension vector must have at least one subsystem")

	// ErrNonPositiveDim indicates a subsystem dimension below 1.
	ErrNonPositiveDim = errors.New("dims: subsystem dimensions must be >= 1")

	// ErrDimsOverflow indicates a total dimension Π d[i] that does not fit in an int.
	ErrDimsOverflow = errors.New("dims: total dimension overflows int")

	// ErrIndexOutOfRange indicates a flat index or digit outside its radix.
	ErrIndexOutOfRange = errors.New("dims: index out of range")

	// ErrSubsystemOutOfRange indicates a 1-based subsystem index outside [1, k].
	ErrSubsystemOutOfRange = errors.New("dims: subsystem index out of range")

	// ErrLengthMismatch indicates a digit vector or permutation of the wrong length.
	ErrLengthMismatch = errors.New("dims: length mismatch")

	// ErrNotPermutation indicates a subsystem order that repeats an entry.
	ErrNotPermutation = errors.New("dims: not a permutation")
)
