// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularTolerance is the threshold below which |det(A)| marks A as
	// singular in Inverse. It is an absolute bound, not relative to the entries.
	DefaultSingularTolerance = 1e-10

	// DefaultEpsilon is a suggested AllClose tolerance for results of a few
	// exact-input operations.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularToleranceInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	singularTol    float64 // >= 0; DefaultSingularTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithSingularTolerance overrides the |det| threshold used by Inverse.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - tol = 0 accepts every matrix whose determinant is not exactly zero.
func WithSingularTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularToleranceInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on matrices built by
// NewDenseFromRows. Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins for repeated setters.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// SingularTolerance returns the effective |det| threshold.
func (o Options) SingularTolerance() float64 { return o.singularTol }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for kernels that accept ...Option.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		singularTol:    DefaultSingularTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
