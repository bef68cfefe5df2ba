// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse construction and the
// numeric policy. This file defines:
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

const (
	// DefaultRanks is the number of row partitions of a new Sparse (serial).
	DefaultRanks = 1

	// DefaultInsertMode makes repeated writes to one cell keep the last value.
	DefaultInsertMode = InsertValues

	// DefaultEpsilon is the tolerance used by symmetry checks.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRanksInvalid   = "matrix: WithRanks: ranks must be >= 1"
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicModeInvalid    = "matrix: WithInsertMode: unknown insert mode"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	ranks          int        // >= 1; DefaultRanks
	mode           InsertMode // DefaultInsertMode
	eps            float64    // >= 0; DefaultEpsilon
	validateNaNInf bool       // DefaultValidateNaNInf
}

// WithRanks sets the number of row partitions (in-process ranks).
// Panics when ranks < 1.
//
// AI-Hints:
//   - More ranks than rows is legal: the trailing ranks own empty ranges.
func WithRanks(ranks int) Option {
	if ranks < 1 {
		panic(panicRanksInvalid)
	}

	return func(o *Options) { o.ranks = ranks }
}

// WithInsertMode selects how repeated writes to one (i,j) combine.
// Panics on an unknown mode.
func WithInsertMode(mode InsertMode) Option {
	if mode != InsertValues && mode != AddValues {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = mode }
}

// WithEpsilon sets the tolerance used by symmetric conversions.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set store NaN/±Inf (use with care).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions resolves opts over the documented defaults, in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		ranks:          DefaultRanks,
		mode:           DefaultInsertMode,
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
