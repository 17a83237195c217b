package services

import "neolingo/contexts/identity-access/authorization-service/domain/entities"

// Permission tags guarded by the role table. Keep in sync with the handlers
// that enforce them.
const (
	PermissionCreateRequests = "create:requests"
	PermissionCreateNeos     = "create:neos"
	PermissionRateNeos       = "rate:neos"
	PermissionReviewRequests = "review:requests"
	PermissionReviewNeos     = "review:neos"
	PermissionManageRoles    = "manage:roles"
	PermissionManageTerms    = "manage:terms"
)

// rolePermissions is the fixed role table. Each role strictly contains the
// permissions of the role below it: ADMIN ⊇ JUROR ⊇ CONTRIBUTOR ⊇ EXPLORER.
// There is no mutation path; lookups on unknown roles fail closed.
var rolePermissions = map[entities.Role][]string{
	entities.RoleExplorer: {},
	entities.RoleContributor: {
		PermissionCreateRequests,
		PermissionCreateNeos,
	},
	entities.RoleJuror: {
		PermissionCreateRequests,
		PermissionCreateNeos,
		PermissionRateNeos,
		PermissionReviewRequests,
		PermissionReviewNeos,
	},
	entities.RoleAdmin: {
		PermissionCreateRequests,
		PermissionCreateNeos,
		PermissionRateNeos,
		PermissionReviewRequests,
		PermissionReviewNeos,
		PermissionManageRoles,
		PermissionManageTerms,
	},
}

// HasPermission reports whether role grants permission. Unknown roles and
// unknown permissions yield false.
func HasPermission(role entities.Role, permission string) bool {
	for _, granted := range rolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether role grants at least one of permissions.
func HasAnyPermission(role entities.Role, permissions []string) bool {
	for _, permission := range permissions {
		if HasPermission(role, permission) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether role grants every one of permissions.
// An empty list is vacuously true.
func HasAllPermissions(role entities.Role, permissions []string) bool {
	for _, permission := range permissions {
		if !HasPermission(role, permission) {
			return false
		}
	}
	return true
}

// RolePermissions returns a copy of the role's permission set so callers
// cannot mutate the table.
func RolePermissions(role entities.Role) []string {
	granted := rolePermissions[role]
	items := make([]string, len(granted))
	copy(items, granted)
	return items
}
