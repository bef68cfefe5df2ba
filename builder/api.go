// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(n, mopts, bopts, cons...). Creates the matrix,
//     resolves cfg, fills every partition, assembles.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs and constructor order ⇒ identical matrices,
//     whatever the rank count.

package builder

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/ghep/comm"
	"github.com/katalvlaran/ghep/matrix"
)

const methodBuild = "Build"

// Constructor fills the rows owned by one partition using the resolved
// builderConfig. Constructors MUST:
//   - Write only rows inside p.OwnershipRange().
//   - Return sentinel errors instead of panicking.
//   - Be safe to run concurrently on distinct Parts of one matrix.
type Constructor func(p *matrix.Part, cfg builderConfig) error

// Build creates an n×n *matrix.Sparse with matrix options mopts, resolves the
// builder configuration from bopts, applies all constructors to every
// partition and assembles the result.
//
// Implementation:
//   - Stage 1: reject nil constructors (ErrConstructFailed).
//   - Stage 2: matrix.NewSparse(n, n, mopts...); n <= 0 surfaces as
//     matrix.ErrInvalidDimensions.
//   - Stage 3: one goroutine per rank (comm.World.Run) applies cons in order
//     to that rank's Part; the first error cancels nothing but is returned.
//   - Stage 4: AssemblyBegin + AssemblyEnd.
//
// Complexity:
//   - Σ cost of the constructors + assembly O(nnz log nnz_part).
//
// Errors:
//   - Wraps constructor and matrix errors with "Build: %w".
func Build(n int, mopts []matrix.Option, bopts []BuilderOption, cons ...Constructor) (*matrix.Sparse, error) {
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
	}

	m, err := matrix.NewSparse(n, n, mopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	cfg := newBuilderConfig(bopts...)

	world, err := comm.NewWorld(m.Layout().Ranks())
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodBuild, err, ErrConstructFailed)
	}
	err = world.Run(func(rank int) error {
		p, err := m.Part(rank)
		if err != nil {
			return err
		}
		for _, fn := range cons {
			if err := fn(p, cfg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	if err = m.AssemblyBegin(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	if err = m.AssemblyEnd(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	klog.V(3).InfoS("Matrix built", "matrix", m, "scale", cfg.scale, "shift", cfg.shift)

	return m, nil
}

// BuildRole builds the n×n matrix of the given role with default builder options.
func BuildRole(n int, role Role, mopts ...matrix.Option) (*matrix.Sparse, error) {
	con, err := ForRole(role)
	if err != nil {
		return nil, fmt.Errorf("BuildRole: %w", err)
	}

	return Build(n, mopts, nil, con)
}
