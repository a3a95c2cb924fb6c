// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance used by AllClose and IsHermitian.
	DefaultEpsilon = 1e-9

	// DefaultRelTol is the relative tolerance used by AllClose (off by default).
	DefaultRelTol = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "matrix: WithRelTol: rtol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps    float64 // >= 0; DefaultEpsilon
	relTol float64 // >= 0; DefaultRelTol
}

// WithEpsilon sets the absolute tolerance eps used by comparisons.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - complex64 data rarely agrees beyond ~1e-6; pick eps accordingly.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithRelTol sets the relative tolerance rtol used by AllClose:
// |a-b| ≤ eps + rtol*|b|.
// Panics when rtol is negative or non-finite.
func WithRelTol(rtol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = rtol }
}

// Epsilon returns the resolved absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RelTol returns the resolved relative tolerance.
func (o Options) RelTol() float64 { return o.relTol }

// NewOptions resolves opts on top of the defaults. Sibling packages use it
// to share the numeric policy without re-implementing defaulting.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters are applied in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		relTol: DefaultRelTol,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
