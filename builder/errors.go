// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers MUST use errors.Is.
//   • Implementations attach context with `%w` (builderErrorf).
//   • Runtime code never panics; validation panics live in WithX constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrConstructFailed indicates that Build could not run a constructor (nil
// constructor, partition lookup failure).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadCoefficient indicates a NaN or ±Inf coefficient given to Tridiagonal.
var ErrBadCoefficient = errors.New("builder: coefficient must be finite")

// ErrUnknownRole indicates a role name ParseRole does not recognise, or a Role
// value outside the declared set.
var ErrUnknownRole = errors.New("builder: unknown matrix role")

// builderErrorf wraps err with the method context: "<method>: <msg>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
