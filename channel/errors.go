package channel

import "errors"

var (
	// ErrNoOperators indicates a Kraus channel built from an empty operator list.
	ErrNoOperators = errors.New("channel: at least one Kraus operator is required")

	// ErrNilChannel indicates a nil Channel argument.
	ErrNilChannel = errors.New("channel: nil channel")

	// ErrInvalidDimension indicates an input or output dimension below 1.
	ErrInvalidDimension = errors.New("channel: dimensions must be >= 1")
)
