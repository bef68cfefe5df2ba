// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported state of Part to matrix_test only.

// StagedLen returns how many writes p currently holds before assembly.
func StagedLen(p *Part) int { return len(p.staged) }
