package queries

import (
	"context"
	"log/slog"
	"strings"

	"neolingo/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "neolingo/contexts/identity-access/authorization-service/domain/errors"
	"neolingo/contexts/identity-access/authorization-service/domain/services"
	"neolingo/contexts/identity-access/authorization-service/ports"
)

// UserRoleUseCase answers "what role and permissions does this user have".
type UserRoleUseCase struct {
	Roles  ports.RoleRepository
	Logger *slog.Logger
}

// UserRoleView carries the resolved role with its effective permission set.
type UserRoleView struct {
	UserID      string
	Role        entities.Role
	Permissions []string
}

func (uc UserRoleUseCase) Execute(ctx context.Context, userID string) (UserRoleView, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return UserRoleView{}, domainerrors.ErrInvalidUserID
	}
	role, err := resolveRole(ctx, uc.Roles, userID)
	if err != nil {
		return UserRoleView{}, err
	}
	return UserRoleView{
		UserID:      userID,
		Role:        role,
		Permissions: services.RolePermissions(role),
	}, nil
}
