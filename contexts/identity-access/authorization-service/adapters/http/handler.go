package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"neolingo/contexts/identity-access/authorization-service/application/commands"
	"neolingo/contexts/identity-access/authorization-service/application/queries"
	"neolingo/contexts/identity-access/authorization-service/domain/entities"
	"neolingo/contexts/identity-access/authorization-service/domain/services"
	httptransport "neolingo/contexts/identity-access/authorization-service/transport/http"
)

type Handler struct {
	Require    queries.RequirePermissionUseCase
	UserRole   queries.UserRoleUseCase
	AssignRole commands.AssignRoleUseCase
	Logger     *slog.Logger
}

// RequirePermission is the in-process gate other modules' routes call before
// executing a guarded action.
func (h Handler) RequirePermission(ctx context.Context, userID string, permission string) (entities.Grant, error) {
	return h.Require.Execute(ctx, queries.Session{UserID: userID}, permission)
}

func (h Handler) CheckPermissionHandler(
	ctx context.Context,
	userID string,
	req httptransport.CheckPermissionRequest,
) (httptransport.CheckPermissionResponse, error) {
	view, err := h.UserRole.Execute(ctx, userID)
	if err != nil {
		return httptransport.CheckPermissionResponse{}, err
	}

	allowed := false
	switch {
	case len(req.Permissions) > 0 && strings.EqualFold(req.Mode, "all"):
		allowed = services.HasAllPermissions(view.Role, req.Permissions)
	case len(req.Permissions) > 0:
		allowed = services.HasAnyPermission(view.Role, req.Permissions)
	default:
		allowed = services.HasPermission(view.Role, strings.TrimSpace(req.Permission))
	}

	return httptransport.CheckPermissionResponse{
		UserID:  view.UserID,
		Role:    string(view.Role),
		Allowed: allowed,
	}, nil
}

func (h Handler) UserRoleHandler(ctx context.Context, userID string) (httptransport.UserRoleResponse, error) {
	view, err := h.UserRole.Execute(ctx, userID)
	if err != nil {
		return httptransport.UserRoleResponse{}, err
	}
	return httptransport.UserRoleResponse{
		UserID:      view.UserID,
		Role:        string(view.Role),
		Permissions: view.Permissions,
	}, nil
}

func (h Handler) AssignRoleHandler(
	ctx context.Context,
	actorID string,
	userID string,
	req httptransport.AssignRoleRequest,
) (httptransport.AssignRoleResponse, error) {
	assignment, err := h.AssignRole.Execute(ctx, commands.AssignRoleCommand{
		ActorID: actorID,
		UserID:  userID,
		Role:    req.Role,
	})
	if err != nil {
		return httptransport.AssignRoleResponse{}, err
	}
	return httptransport.AssignRoleResponse{
		UserID:     assignment.UserID,
		Role:       string(assignment.Role),
		AssignedBy: assignment.AssignedBy,
	}, nil
}
