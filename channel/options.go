package channel

import (
	"math"

	"github.com/katalvlaran/qinfo/matrix"
)

const panicEpsilonInvalid = "channel: WithEpsilon: eps must be finite, non-negative"

// Option configures IsTracePreserving.
type Option func(*options)

type options struct {
	eps float64
}

// WithEpsilon sets the absolute tolerance of the trace-preservation check
// (default matrix.DefaultEpsilon). Panics on a negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

func gatherOptions(user ...Option) options {
	o := options{eps: matrix.DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
