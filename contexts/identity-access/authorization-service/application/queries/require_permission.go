package queries

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	application "neolingo/contexts/identity-access/authorization-service/application"
	"neolingo/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "neolingo/contexts/identity-access/authorization-service/domain/errors"
	"neolingo/contexts/identity-access/authorization-service/domain/services"
	"neolingo/contexts/identity-access/authorization-service/ports"
)

// Session is the caller identity resolved by the auth provider. It is passed
// explicitly into every guarded call; the gate never reads ambient state.
type Session struct {
	UserID string
}

// RequirePermissionUseCase is the single enforcement point for privileged
// actions. It resolves the caller's role and fails before any guarded effect
// runs.
type RequirePermissionUseCase struct {
	Roles  ports.RoleRepository
	Logger *slog.Logger
}

// Execute resolves the session's role (EXPLORER when no assignment row
// exists) and verifies it grants permission. The returned error wraps
// ErrForbidden with the missing permission name.
func (uc RequirePermissionUseCase) Execute(
	ctx context.Context,
	session Session,
	permission string,
) (entities.Grant, error) {
	logger := application.ResolveLogger(uc.Logger)
	userID := strings.TrimSpace(session.UserID)
	if userID == "" {
		logger.Warn("permission check without session",
			"event", "authz_require_unauthenticated",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"permission", permission,
		)
		return entities.Grant{}, domainerrors.ErrUnauthenticated
	}

	role, err := resolveRole(ctx, uc.Roles, userID)
	if err != nil {
		logger.Error("role lookup failed",
			"event", "authz_role_lookup_failed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", userID,
			"permission", permission,
			"error", err.Error(),
		)
		return entities.Grant{}, err
	}

	if !services.HasPermission(role, permission) {
		logger.Warn("permission denied",
			"event", "authz_require_denied",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", userID,
			"role", string(role),
			"permission", permission,
		)
		return entities.Grant{}, fmt.Errorf("%w: %s", domainerrors.ErrForbidden, permission)
	}

	logger.Debug("permission granted",
		"event", "authz_require_allowed",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"user_id", userID,
		"role", string(role),
		"permission", permission,
	)
	return entities.Grant{UserID: userID, Role: role}, nil
}

func resolveRole(ctx context.Context, roles ports.RoleRepository, userID string) (entities.Role, error) {
	assignment, found, err := roles.GetUserRole(ctx, userID)
	if err != nil {
		return "", err
	}
	if !found {
		return entities.RoleExplorer, nil
	}
	return assignment.Role, nil
}
