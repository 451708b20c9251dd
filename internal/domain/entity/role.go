// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the permission level an account holds in the system.
// The authoritative copy lives in the access-token claim; the profile row
// carries a fallback/sync copy for database joins and stale-claim recovery.
type Role string

const (
	// RoleUser indicates a regular player account with no dashboard access.
	RoleUser Role = "user"
	// RoleCenter indicates an account that operates a sports center.
	RoleCenter Role = "center"
	// RoleAdmin indicates a platform administrator who reviews registrations.
	RoleAdmin Role = "admin"
	// RoleSuperadmin indicates the highest privilege level.
	RoleSuperadmin Role = "superadmin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleCenter, RoleAdmin, RoleSuperadmin:
		return true
	default:
		return false
	}
}

// CanReview reports whether the role is allowed to approve or reject
// center registrations.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
