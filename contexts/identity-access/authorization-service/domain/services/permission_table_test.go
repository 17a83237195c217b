package services

import (
	"testing"

	"neolingo/contexts/identity-access/authorization-service/domain/entities"
)

func TestRoleHierarchyIsNested(t *testing.T) {
	order := []entities.Role{
		entities.RoleExplorer,
		entities.RoleContributor,
		entities.RoleJuror,
		entities.RoleAdmin,
	}
	for i := 0; i < len(order)-1; i++ {
		lower := order[i]
		higher := order[i+1]
		for _, permission := range RolePermissions(lower) {
			if !HasPermission(higher, permission) {
				t.Fatalf("%s grants %q but %s does not", lower, permission, higher)
			}
		}
	}
	if len(RolePermissions(entities.RoleExplorer)) != 0 {
		t.Fatalf("explorer must have no permissions, got %v", RolePermissions(entities.RoleExplorer))
	}
}

func TestEveryRoleIsSubsetOfAdmin(t *testing.T) {
	for _, role := range []entities.Role{
		entities.RoleExplorer,
		entities.RoleContributor,
		entities.RoleJuror,
		entities.RoleAdmin,
	} {
		if !HasAllPermissions(entities.RoleAdmin, RolePermissions(role)) {
			t.Fatalf("admin must grant every permission of %s", role)
		}
	}
}

func TestPermissionScenarios(t *testing.T) {
	if HasPermission(entities.RoleExplorer, PermissionCreateRequests) {
		t.Fatal("explorer must not create requests")
	}
	if !HasPermission(entities.RoleContributor, PermissionCreateRequests) {
		t.Fatal("contributor must create requests")
	}
	if HasPermission(entities.RoleContributor, PermissionReviewRequests) {
		t.Fatal("contributor must not review requests")
	}
	if !HasPermission(entities.RoleJuror, PermissionRateNeos) {
		t.Fatal("juror must rate neos")
	}
	if HasPermission("MODERATOR", PermissionCreateRequests) {
		t.Fatal("unknown role must fail closed")
	}
	if HasPermission(entities.RoleAdmin, "delete:everything") {
		t.Fatal("unknown permission must fail closed")
	}
}

func TestAnyAllSemantics(t *testing.T) {
	set := []string{PermissionCreateRequests, PermissionManageRoles}
	if !HasAnyPermission(entities.RoleContributor, set) {
		t.Fatal("contributor grants at least one of the set")
	}
	if HasAllPermissions(entities.RoleContributor, set) {
		t.Fatal("contributor does not grant the whole set")
	}
	if !HasAllPermissions(entities.RoleAdmin, set) {
		t.Fatal("admin grants the whole set")
	}
	if HasAnyPermission(entities.RoleExplorer, set) {
		t.Fatal("explorer grants none of the set")
	}
	if !HasAllPermissions(entities.RoleExplorer, nil) {
		t.Fatal("empty permission list is vacuously satisfied")
	}
}

func TestRolePermissionsReturnsCopy(t *testing.T) {
	granted := RolePermissions(entities.RoleContributor)
	if len(granted) == 0 {
		t.Fatal("contributor permission set must not be empty")
	}
	granted[0] = "mutated"
	if HasPermission(entities.RoleContributor, "mutated") {
		t.Fatal("mutating the returned slice must not affect the table")
	}
}
