package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "neolingo/contexts/identity-access/authorization-service/application"
	"neolingo/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "neolingo/contexts/identity-access/authorization-service/domain/errors"
	"neolingo/contexts/identity-access/authorization-service/domain/services"
	"neolingo/contexts/identity-access/authorization-service/ports"
)

// AssignRoleCommand re-points a user at a role. Latest assignment wins.
type AssignRoleCommand struct {
	ActorID string
	UserID  string
	Role    string
}

// AssignRoleUseCase guards and applies role assignment.
type AssignRoleUseCase struct {
	Roles  ports.RoleRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc AssignRoleUseCase) Execute(ctx context.Context, cmd AssignRoleCommand) (entities.RoleAssignment, error) {
	logger := application.ResolveLogger(uc.Logger)
	actorID := strings.TrimSpace(cmd.ActorID)
	userID := strings.TrimSpace(cmd.UserID)
	if actorID == "" {
		return entities.RoleAssignment{}, domainerrors.ErrInvalidActorID
	}
	if userID == "" {
		return entities.RoleAssignment{}, domainerrors.ErrInvalidUserID
	}
	role, ok := entities.ParseRole(cmd.Role)
	if !ok {
		return entities.RoleAssignment{}, domainerrors.ErrInvalidRole
	}

	actorRole, err := uc.actorRole(ctx, actorID)
	if err != nil {
		return entities.RoleAssignment{}, err
	}
	if !services.HasPermission(actorRole, services.PermissionManageRoles) {
		logger.Warn("role assignment denied",
			"event", "authz_assign_role_denied",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"actor_id", actorID,
			"actor_role", string(actorRole),
			"user_id", userID,
			"role", string(role),
		)
		return entities.RoleAssignment{}, fmt.Errorf("%w: %s", domainerrors.ErrForbidden, services.PermissionManageRoles)
	}

	now := uc.now()
	assignment := entities.RoleAssignment{
		UserID:     userID,
		Role:       role,
		AssignedBy: actorID,
		AssignedAt: now,
		UpdatedAt:  now,
	}
	if existing, found, err := uc.Roles.GetUserRole(ctx, userID); err != nil {
		return entities.RoleAssignment{}, err
	} else if found {
		assignment.AssignedAt = existing.AssignedAt
	}
	if err := uc.Roles.SaveUserRole(ctx, assignment); err != nil {
		return entities.RoleAssignment{}, err
	}

	logger.Info("role assigned",
		"event", "authz_role_assigned",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"actor_id", actorID,
		"user_id", userID,
		"role", string(role),
	)
	return assignment, nil
}

func (uc AssignRoleUseCase) actorRole(ctx context.Context, actorID string) (entities.Role, error) {
	assignment, found, err := uc.Roles.GetUserRole(ctx, actorID)
	if err != nil {
		return "", err
	}
	if !found {
		return entities.RoleExplorer, nil
	}
	return assignment.Role, nil
}

func (uc AssignRoleUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
