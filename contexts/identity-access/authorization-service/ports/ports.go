package ports

import (
	"context"
	"time"

	"neolingo/contexts/identity-access/authorization-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// RoleRepository is the storage boundary for user role assignments.
// GetUserRole returns found=false when the user has no assignment row;
// callers treat that as the lowest-privilege role.
type RoleRepository interface {
	GetUserRole(ctx context.Context, userID string) (entities.RoleAssignment, bool, error)
	SaveUserRole(ctx context.Context, assignment entities.RoleAssignment) error
	ListAssignments(ctx context.Context) ([]entities.RoleAssignment, error)
}
