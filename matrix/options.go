// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction policy and
// numeric tolerances. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

import "math"

// ---------- Documented defaults ----------

const (
	// DefaultEpsilon is the tolerance of the near-equality rule:
	// |x-y| < eps OR |x-y| / min(MaxFloat64, |x|+|y|) < eps.
	// The same value decides when a pivot or diagonal entry counts as zero.
	DefaultEpsilon = 1e-7

	// DefaultValidateNaNInf rejects NaN/±Inf on ingestion (New, NewFrom, Set).
	DefaultValidateNaNInf = true

	// DefaultParallelThreshold disables concurrent recursion (0 = sequential).
	DefaultParallelThreshold = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicThresholdInvalid = "matrix: WithParallelThreshold: threshold must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps               float64 // >= 0; DefaultEpsilon
	validateNaNInf    bool    // DefaultValidateNaNInf
	parallelThreshold int     // >= 0; DefaultParallelThreshold
}

// WithEpsilon sets the numeric tolerance used for near-zero pivots,
// triangularity checks and approximate equality.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps = 0 makes only exact zeros singular; larger eps flags
//     ill-conditioned inputs earlier.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-value validation on ingestion.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on ingestion (use with care).
// The flag is stored on the created matrix and honored by its Set.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithParallelThreshold enables concurrent recursion in the block
// triangular inverter: sub-problems of size ≥ n invert their two diagonal
// quadrants in parallel. n = 0 keeps the sequential reference behavior.
//
// Errors:
//   - Panics when n < 0.
//
// Notes:
//   - Results are bitwise identical to the sequential path; the quadrants
//     are disjoint copies and never alias.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; last-writer-wins for a given sequence of opts.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		validateNaNInf:    DefaultValidateNaNInf,
		parallelThreshold: DefaultParallelThreshold,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in kernels.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether ingestion rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ParallelThreshold returns the resolved recursion threshold (0 = off).
func (o Options) ParallelThreshold() int { return o.parallelThreshold }
