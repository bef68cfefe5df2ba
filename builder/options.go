// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Build and the constructors return errors, never panic.

package builder

import "math"

// BuilderOption customizes constructors by mutating a builderConfig before
// the partitions are filled.
type BuilderOption func(*builderConfig)

// WithScale multiplies every coefficient by alpha.
// Panics when alpha is zero, NaN or ±Inf.
func WithScale(alpha float64) BuilderOption {
	if alpha == 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		panic("builder: WithScale(alpha) requires a finite non-zero alpha")
	}

	return func(c *builderConfig) { c.scale = alpha }
}

// WithShift adds sigma to every diagonal coefficient, after scaling.
// Panics when sigma is NaN or ±Inf.
func WithShift(sigma float64) BuilderOption {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithShift(sigma) requires a finite sigma")
	}

	return func(c *builderConfig) { c.shift = sigma }
}
