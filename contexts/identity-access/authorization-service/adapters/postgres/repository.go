package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"neolingo/contexts/identity-access/authorization-service/domain/entities"
	"neolingo/contexts/identity-access/authorization-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetUserRole(ctx context.Context, userID string) (entities.RoleAssignment, bool, error) {
	var row userRoleModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.RoleAssignment{}, false, nil
		}
		return entities.RoleAssignment{}, false, r.logError("authz_repo_get_user_role_failed", err,
			"user_id", strings.TrimSpace(userID),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) SaveUserRole(ctx context.Context, assignment entities.RoleAssignment) error {
	row := userRoleModelFromEntity(assignment)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"role":        row.Role,
			"assigned_by": row.AssignedBy,
			"updated_at":  row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("authz_repo_save_user_role_failed", create.Error,
			"user_id", row.UserID,
			"role", row.Role,
		)
	}
	return nil
}

func (r *Repository) ListAssignments(ctx context.Context) ([]entities.RoleAssignment, error) {
	var rows []userRoleModel
	if err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("authz_repo_list_assignments_failed", err)
	}
	items := make([]entities.RoleAssignment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "identity-access/authorization-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("authorization repository operation failed", fields...)
	return err
}

// SystemClock satisfies ports.Clock with wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type userRoleModel struct {
	UserID     string    `gorm:"column:user_id;primaryKey"`
	Role       string    `gorm:"column:role"`
	AssignedBy string    `gorm:"column:assigned_by"`
	AssignedAt time.Time `gorm:"column:assigned_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (userRoleModel) TableName() string {
	return "user_roles"
}

func userRoleModelFromEntity(assignment entities.RoleAssignment) userRoleModel {
	row := userRoleModel{
		UserID:     strings.TrimSpace(assignment.UserID),
		Role:       string(assignment.Role),
		AssignedBy: strings.TrimSpace(assignment.AssignedBy),
		AssignedAt: assignment.AssignedAt.UTC(),
		UpdatedAt:  assignment.UpdatedAt.UTC(),
	}
	if row.AssignedAt.IsZero() {
		row.AssignedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.AssignedAt
	}
	return row
}

func (m userRoleModel) toEntity() entities.RoleAssignment {
	role, ok := entities.ParseRole(m.Role)
	if !ok {
		role = entities.RoleExplorer
	}
	return entities.RoleAssignment{
		UserID:     m.UserID,
		Role:       role,
		AssignedBy: m.AssignedBy,
		AssignedAt: m.AssignedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

var _ ports.RoleRepository = (*Repository)(nil)
var _ ports.Clock = SystemClock{}
