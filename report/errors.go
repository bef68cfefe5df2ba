// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrUnknownFormat indicates an unrecognised report format name.
	ErrUnknownFormat = errors.New("report: unknown output format")

	// ErrUnknownLabel indicates an unrecognised pair-count label.
	ErrUnknownLabel = errors.New("report: unknown pairs label")

	// ErrNilSolution indicates Solution was called with a nil solution.
	ErrNilSolution = errors.New("report: nil solution")
)
