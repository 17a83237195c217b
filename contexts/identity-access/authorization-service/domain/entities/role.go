package entities

import (
	"strings"
	"time"
)

// Role is static reference data; the set of roles never changes at runtime.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleJuror       Role = "JUROR"
	RoleContributor Role = "CONTRIBUTOR"
	RoleExplorer    Role = "EXPLORER"
)

// ParseRole normalizes external role spellings. JURY and USER are legacy
// aliases kept for imported data.
func ParseRole(value string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "ADMIN":
		return RoleAdmin, true
	case "JUROR", "JURY":
		return RoleJuror, true
	case "CONTRIBUTOR":
		return RoleContributor, true
	case "EXPLORER", "USER":
		return RoleExplorer, true
	default:
		return "", false
	}
}

// RoleAssignment associates a user with exactly one role. Re-assignment
// overwrites in place; no history is retained.
type RoleAssignment struct {
	UserID     string
	Role       Role
	AssignedBy string
	AssignedAt time.Time
	UpdatedAt  time.Time
}

// Grant is the resolved identity returned by the permission gate.
type Grant struct {
	UserID string
	Role   Role
}
