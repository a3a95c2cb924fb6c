package basis

import "errors"

var (
	// ErrInvalidDimension indicates a basis dimension below 1.
	ErrInvalidDimension = errors.New("basis: dimension must be >= 1")

	// ErrCoordinateLength indicates a coordinate vector whose length differs
	// from the basis cardinality.
	ErrCoordinateLength = errors.New("basis: coordinate vector length mismatch")

	// ErrNilBasis indicates a nil Basis argument.
	ErrNilBasis = errors.New("basis: nil basis")
)
