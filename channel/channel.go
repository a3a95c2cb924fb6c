// SPDX-License-Identifier: MIT

package channel

import (
	"fmt"

	"github.com/katalvlaran/qinfo/matrix"
	"github.com/katalvlaran/qinfo/tensor"
)

const (
	opNewKraus          = "NewKraus"
	opNewUnitary        = "NewUnitary"
	opNewDynamical      = "NewDynamical"
	opApply             = "Kraus.Apply"
	opDynamical         = "Kraus.DynamicalMatrix"
	opIsTracePreserving = "IsTracePreserving"
)

// Channel is anything that can report its dimensions and dynamical matrix.
type Channel[C matrix.Complex] interface {
	InputDim() int
	OutputDim() int
	// DynamicalMatrix returns J on out⊗in; the caller owns the result.
	DynamicalMatrix() (*matrix.Dense[C], error)
}

// Compile-time conformance.
var (
	_ Channel[complex128] = (*Kraus[complex128])(nil)
	_ Channel[complex64]  = (*Dynamical[complex64])(nil)
)

// Kraus is a channel in operator-sum form ρ ↦ Σ_k K_k ρ K_k†.
type Kraus[C matrix.Complex] struct {
	ops        []*matrix.Dense[C]
	idim, odim int
}

// NewKraus builds a channel from its Kraus operators. Every operator must be
// odim×idim with the shape of the first one. The operators are copied.
//
// Errors:
//   - ErrNoOperators for an empty list.
//   - matrix.ErrNilMatrix for a nil operator.
//   - matrix.ErrDimensionMismatch for operators of differing shape.
func NewKraus[C matrix.Complex](ops ...*matrix.Dense[C]) (*Kraus[C], error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("%s: %w", opNewKraus, ErrNoOperators)
	}
	if err := matrix.ValidateNotNil(ops[0]); err != nil {
		return nil, fmt.Errorf("%s: operator 0: %w", opNewKraus, err)
	}
	k := &Kraus[C]{
		ops:  make([]*matrix.Dense[C], len(ops)),
		odim: ops[0].Rows(),
		idim: ops[0].Cols(),
	}
	for i, op := range ops {
		if err := matrix.ValidateSameShape(ops[0], op); err != nil {
			return nil, fmt.Errorf("%s: operator %d: %w", opNewKraus, i, err)
		}
		k.ops[i] = op.Clone()
	}

	return k, nil
}

// NewUnitary returns the channel ρ ↦ UρU†. u must be square; unitarity is
// not checked (IsTracePreserving does that numerically).
func NewUnitary[C matrix.Complex](u *matrix.Dense[C]) (*Kraus[C], error) {
	if err := matrix.ValidateSquare(u); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewUnitary, err)
	}

	return NewKraus(u)
}

// InputDim returns the column count of the operators.
func (k *Kraus[C]) InputDim() int { return k.idim }

// OutputDim returns the row count of the operators.
func (k *Kraus[C]) OutputDim() int { return k.odim }

// Operators returns copies of the Kraus operators.
func (k *Kraus[C]) Operators() []*matrix.Dense[C] {
	out := make([]*matrix.Dense[C], len(k.ops))
	for i, op := range k.ops {
		out[i] = op.Clone()
	}

	return out
}

// Apply returns Σ_k K_k ρ K_k†.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
// when rho is not idim×idim.
// Complexity: O(K·odim·idim·(idim+odim)).
func (k *Kraus[C]) Apply(rho *matrix.Dense[C]) (*matrix.Dense[C], error) {
	if err := matrix.ValidateSquare(rho); err != nil {
		return nil, fmt.Errorf("%s: %w", opApply, err)
	}
	if rho.Rows() != k.idim {
		return nil, fmt.Errorf("%s: state is %dx%d, channel input is %d: %w",
			opApply, rho.Rows(), rho.Cols(), k.idim, matrix.ErrDimensionMismatch)
	}
	acc, err := matrix.NewDense[C](k.odim, k.odim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opApply, err)
	}
	for _, op := range k.ops {
		left, err := matrix.Mul(op, rho)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opApply, err)
		}
		adj, err := matrix.Adjoint(op)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opApply, err)
		}
		term, err := matrix.Mul(left, adj)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opApply, err)
		}
		if acc, err = matrix.Add(acc, term); err != nil {
			return nil, fmt.Errorf("%s: %w", opApply, err)
		}
	}

	return acc, nil
}

// DynamicalMatrix returns J = Σ_k vec(K_k)·vec(K_k)† on out⊗in.
// Complexity: O(K·(idim·odim)²).
func (k *Kraus[C]) DynamicalMatrix() (*matrix.Dense[C], error) {
	n := k.idim * k.odim
	acc, err := matrix.NewDense[C](n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDynamical, err)
	}
	for _, op := range k.ops {
		// a row-major buffer is already the row-stacked vec
		v, err := matrix.NewDenseData(n, 1, append([]C(nil), op.Raw()...))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opDynamical, err)
		}
		vh, err := matrix.Adjoint(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opDynamical, err)
		}
		outer, err := matrix.Mul(v, vh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opDynamical, err)
		}
		if acc, err = matrix.Add(acc, outer); err != nil {
			return nil, fmt.Errorf("%s: %w", opDynamical, err)
		}
	}

	return acc, nil
}

// Dynamical is a channel given directly by its dynamical matrix.
type Dynamical[C matrix.Complex] struct {
	j          *matrix.Dense[C]
	idim, odim int
}

// NewDynamical wraps a copy of j, which must be square of side idim·odim.
// Errors: ErrInvalidDimension, matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrDimensionMismatch.
func NewDynamical[C matrix.Complex](j *matrix.Dense[C], idim, odim int) (*Dynamical[C], error) {
	if idim < 1 || odim < 1 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewDynamical, idim, odim, ErrInvalidDimension)
	}
	if err := matrix.ValidateSquare(j); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewDynamical, err)
	}
	if j.Rows() != idim*odim {
		return nil, fmt.Errorf("%s: %dx%d matrix for dims %d,%d: %w",
			opNewDynamical, j.Rows(), j.Cols(), idim, odim, matrix.ErrDimensionMismatch)
	}

	return &Dynamical[C]{j: j.Clone(), idim: idim, odim: odim}, nil
}

// InputDim returns idim.
func (d *Dynamical[C]) InputDim() int { return d.idim }

// OutputDim returns odim.
func (d *Dynamical[C]) OutputDim() int { return d.odim }

// DynamicalMatrix returns a copy of the wrapped matrix.
func (d *Dynamical[C]) DynamicalMatrix() (*matrix.Dense[C], error) {
	return d.j.Clone(), nil
}

// IsTracePreserving reports tr_out J ≈ I_in within the configured epsilon.
// Errors: ErrNilChannel; errors from ch.DynamicalMatrix are returned wrapped.
func IsTracePreserving[C matrix.Complex](ch Channel[C], opts ...Option) (bool, error) {
	if ch == nil {
		return false, fmt.Errorf("%s: %w", opIsTracePreserving, ErrNilChannel)
	}
	o := gatherOptions(opts...)
	j, err := ch.DynamicalMatrix()
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIsTracePreserving, err)
	}
	reduced, err := tensor.PartialTrace(j, []int{ch.OutputDim(), ch.InputDim()}, 1)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIsTracePreserving, err)
	}
	id, err := matrix.NewIdentity[C](ch.InputDim())
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIsTracePreserving, err)
	}

	return matrix.AllClose(reduced, id, matrix.WithEpsilon(o.eps))
}
