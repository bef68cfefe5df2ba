// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • scale = 1.0 (coefficients as declared)
//   • shift = 0.0 (diagonal untouched)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors, so ranks never share it mutably.
type builderConfig struct {
	scale float64 // multiplies every coefficient; finite, non-zero
	shift float64 // added to every diagonal entry after scaling; finite
}

// Defaults (named, no magic numbers).
const (
	// DefaultScale leaves the coefficients unchanged.
	DefaultScale = 1.0
	// DefaultShift leaves the diagonal unchanged.
	DefaultShift = 0.0
)

// newBuilderConfig starts from the defaults and applies opts in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale: DefaultScale,
		shift: DefaultShift,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// offDiagonal returns the stored value of an off-diagonal coefficient.
func (c builderConfig) offDiagonal(off float64) float64 { return c.scale * off }

// diagonal returns the stored value of a diagonal coefficient.
func (c builderConfig) diagonal(diag float64) float64 { return c.scale*diag + c.shift }
