package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	authorization "neolingo/contexts/identity-access/authorization-service"
	"neolingo/contexts/identity-access/authorization-service/domain/entities"
	authzerrors "neolingo/contexts/identity-access/authorization-service/domain/errors"
	"neolingo/contexts/identity-access/authorization-service/domain/services"
	httptransport "neolingo/contexts/identity-access/authorization-service/transport/http"
)

func seedRole(t *testing.T, module authorization.Module, userID string, role entities.Role) {
	t.Helper()
	err := module.Store.SaveUserRole(context.Background(), entities.RoleAssignment{
		UserID:     userID,
		Role:       role,
		AssignedBy: "seed",
		AssignedAt: time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed role failed: %v", err)
	}
}

func TestRequirePermissionDefaultsToExplorer(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)

	_, err := module.Handler.RequirePermission(context.Background(), "unknown-user", services.PermissionCreateRequests)
	if !errors.Is(err, authzerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for explorer, got %v", err)
	}

	_, err = module.Handler.RequirePermission(context.Background(), "", services.PermissionCreateRequests)
	if !errors.Is(err, authzerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for empty user, got %v", err)
	}
}

func TestRequirePermissionGrantsByRole(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)
	seedRole(t, module, "contributor-1", entities.RoleContributor)

	grant, err := module.Handler.RequirePermission(context.Background(), "contributor-1", services.PermissionCreateRequests)
	if err != nil {
		t.Fatalf("contributor should create requests: %v", err)
	}
	if grant.Role != entities.RoleContributor {
		t.Fatalf("expected contributor grant, got %s", grant.Role)
	}

	_, err = module.Handler.RequirePermission(context.Background(), "contributor-1", services.PermissionReviewRequests)
	if !errors.Is(err, authzerrors.ErrForbidden) {
		t.Fatalf("contributor must not review requests, got %v", err)
	}
}

func TestAssignRoleAdminGuardAndLatestWins(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)
	seedRole(t, module, "admin-1", entities.RoleAdmin)
	seedRole(t, module, "juror-1", entities.RoleJuror)

	_, err := module.Handler.AssignRoleHandler(context.Background(), "juror-1", "user-5", httptransport.AssignRoleRequest{Role: "CONTRIBUTOR"})
	if !errors.Is(err, authzerrors.ErrForbidden) {
		t.Fatalf("juror must not assign roles, got %v", err)
	}

	first, err := module.Handler.AssignRoleHandler(context.Background(), "admin-1", "user-5", httptransport.AssignRoleRequest{Role: "CONTRIBUTOR"})
	if err != nil {
		t.Fatalf("assign contributor failed: %v", err)
	}
	if first.Role != "CONTRIBUTOR" {
		t.Fatalf("expected CONTRIBUTOR, got %s", first.Role)
	}

	second, err := module.Handler.AssignRoleHandler(context.Background(), "admin-1", "user-5", httptransport.AssignRoleRequest{Role: "JUROR"})
	if err != nil {
		t.Fatalf("re-assign juror failed: %v", err)
	}
	if second.Role != "JUROR" {
		t.Fatalf("expected latest assignment to win, got %s", second.Role)
	}

	view, err := module.Handler.UserRoleHandler(context.Background(), "user-5")
	if err != nil {
		t.Fatalf("user role lookup failed: %v", err)
	}
	if view.Role != "JUROR" {
		t.Fatalf("expected stored role JUROR, got %s", view.Role)
	}
}

func TestCheckPermissionAnyAllModes(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)
	seedRole(t, module, "juror-1", entities.RoleJuror)

	anyResp, err := module.Handler.CheckPermissionHandler(context.Background(), "juror-1", httptransport.CheckPermissionRequest{
		Permissions: []string{services.PermissionManageRoles, services.PermissionReviewNeos},
	})
	if err != nil {
		t.Fatalf("check any failed: %v", err)
	}
	if !anyResp.Allowed {
		t.Fatalf("juror holds review:neos, any-mode should allow")
	}

	allResp, err := module.Handler.CheckPermissionHandler(context.Background(), "juror-1", httptransport.CheckPermissionRequest{
		Permissions: []string{services.PermissionManageRoles, services.PermissionReviewNeos},
		Mode:        "all",
	})
	if err != nil {
		t.Fatalf("check all failed: %v", err)
	}
	if allResp.Allowed {
		t.Fatalf("juror lacks manage:roles, all-mode should deny")
	}
}
