// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"
)

// Role tags which operator of the pencil (A, B) a matrix plays.
type Role int

const (
	// RoleStiffness is the operator A.
	RoleStiffness Role = iota
	// RoleMass is the operator B.
	RoleMass
)

// String returns "stiffness", "mass", or "Role(<n>)" for an undeclared value.
func (r Role) String() string {
	switch r {
	case RoleStiffness:
		return "stiffness"
	case RoleMass:
		return "mass"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole accepts "stiffness"/"a" and "mass"/"b", case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stiffness", "a":
		return RoleStiffness, nil
	case "mass", "b":
		return RoleMass, nil
	default:
		return 0, fmt.Errorf("ParseRole(%q): %w", s, ErrUnknownRole)
	}
}

// ForRole returns the constructor that fills a matrix of the given role.
func ForRole(r Role) (Constructor, error) {
	switch r {
	case RoleStiffness:
		return Stiffness(), nil
	case RoleMass:
		return Mass(), nil
	default:
		return nil, fmt.Errorf("ForRole(%v): %w", r, ErrUnknownRole)
	}
}
