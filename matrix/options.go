// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction, numeric
// correction and concurrent cofactor expansion. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Correction thresholds feed (*Dense).Correct only; arithmetic never
//     corrects implicitly.
//   - ZeroFallback enables the lenient "malformed seed ⇒ zero matrix"
//     policy. It is opt-in; the default surfaces ErrMalformedSeed.
package matrix

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNearIntegerThreshold: a cell whose fractional part (x - floor(x))
	// exceeds this value is rounded to the nearest integer by Correct.
	DefaultNearIntegerThreshold = 0.999999

	// DefaultNearZeroTolerance: a cell with |x| below this value is snapped
	// to exactly zero by Correct.
	DefaultNearZeroTolerance = 0.00001

	// DefaultZeroFallback keeps malformed seeds an error.
	DefaultZeroFallback = false
)

// DefaultParallelism is the worker bound used by the concurrent kernels when
// WithParallelism is not supplied.
var DefaultParallelism = runtime.GOMAXPROCS(0)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNearIntegerInvalid = "matrix: WithNearIntegerThreshold: threshold must be finite and in (0, 1)"
	panicNearZeroInvalid    = "matrix: WithNearZeroTolerance: tolerance must be finite, non-negative"
	panicParallelismInvalid = "matrix: WithParallelism: n must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	nearInteger  float64 // DefaultNearIntegerThreshold
	nearZero     float64 // DefaultNearZeroTolerance
	parallelism  int     // DefaultParallelism
	zeroFallback bool    // DefaultZeroFallback
}

// WithNearIntegerThreshold sets the fractional-part threshold above which
// Correct rounds a cell up to the next integer.
//
// Errors:
//   - Panics when t is not finite or not strictly inside (0, 1).
func WithNearIntegerThreshold(t float64) Option {
	if isNonFinite(t) || t <= 0 || t >= 1 {
		panic(panicNearIntegerInvalid)
	}
	return func(o *Options) { o.nearInteger = t }
}

// WithNearZeroTolerance sets the band (-eps, eps) that Correct snaps to zero.
//
// Errors:
//   - Panics when eps is negative or not finite.
func WithNearZeroTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicNearZeroInvalid)
	}
	return func(o *Options) { o.nearZero = eps }
}

// WithParallelism bounds the number of goroutines used by DetConcurrent and
// InverseConcurrent.
//
// AI-Hints:
//   - n=1 degenerates to a sequential schedule (still context-aware).
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}
	return func(o *Options) { o.parallelism = n }
}

// WithZeroFallback makes NewDenseFrom return the zero matrix instead of
// ErrMalformedSeed when the seed does not fit the declared shape.
// The caller's data is discarded in that case; prefer the default.
func WithZeroFallback() Option {
	return func(o *Options) { o.zeroFallback = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		nearInteger:  DefaultNearIntegerThreshold,
		nearZero:     DefaultNearZeroTolerance,
		parallelism:  DefaultParallelism,
		zeroFallback: DefaultZeroFallback,
	}
}

// gatherOptions applies opts over the defaults in order (last wins).
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}
	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
