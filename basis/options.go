package basis

import "math"

const panicHermitianEpsInvalid = "basis: WithHermitianCheck: eps must be finite, non-negative"

// Option configures Represent.
type Option func(*options)

type options struct {
	checkHermitian bool
	eps            float64
}

// WithHermitianCheck makes Represent reject inputs that are not Hermitian
// within eps (matrix.ErrNotHermitian) instead of silently projecting them.
// Panics when eps is negative or non-finite.
func WithHermitianCheck(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicHermitianEpsInvalid)
	}

	return func(o *options) {
		o.checkHermitian = true
		o.eps = eps
	}
}

func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		set(&o)
	}

	return o
}
