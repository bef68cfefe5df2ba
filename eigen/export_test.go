// SPDX-License-Identifier: MIT

package eigen

// Test bridge for the unexported selection and residual kernels.
var (
	Order            = order
	RelativeResidual = relativeResidual
)
