package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"neolingo/contexts/curation/neo-service/domain/entities"
	domainerrors "neolingo/contexts/curation/neo-service/domain/errors"
	"neolingo/contexts/curation/neo-service/domain/services"
	"neolingo/contexts/curation/neo-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
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

func (r *Repository) CreateNeos(ctx context.Context, neos []entities.Neo) error {
	if len(neos) == 0 {
		return nil
	}
	rows := make([]neoModel, 0, len(neos))
	for _, neo := range neos {
		rows = append(rows, neoModelFromEntity(neo))
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return r.logError("neo_repo_create_neos_failed", err,
			"term_id", rows[0].TermID,
			"batch_size", len(rows),
		)
	}
	return nil
}

func (r *Repository) GetNeo(ctx context.Context, neoID string) (entities.Neo, error) {
	var row neoModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(neoID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Neo{}, domainerrors.ErrNeoNotFound
		}
		return entities.Neo{}, r.logError("neo_repo_get_neo_failed", err, "neo_id", strings.TrimSpace(neoID))
	}
	return row.toEntity(), nil
}

func (r *Repository) ListNeosByTerm(ctx context.Context, termID string) ([]entities.Neo, error) {
	var rows []neoModel
	if err := r.db.WithContext(ctx).
		Where("term_id = ?", strings.TrimSpace(termID)).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("neo_repo_list_neos_by_term_failed", err,
			"term_id", strings.TrimSpace(termID),
		)
	}
	items := make([]entities.Neo, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListRatingsByTerm(ctx context.Context, termID string) ([]entities.NeoRating, error) {
	var rows []neoRatingModel
	err := r.db.WithContext(ctx).
		Table("neo_ratings AS r").
		Select("r.*").
		Joins("JOIN neos AS n ON n.id = r.neo_id").
		Where("n.term_id = ?", strings.TrimSpace(termID)).
		Order("r.created_at ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, r.logError("neo_repo_list_ratings_by_term_failed", err,
			"term_id", strings.TrimSpace(termID),
		)
	}
	return toRatingEntities(rows), nil
}

func (r *Repository) ListRatingsByUser(
	ctx context.Context,
	userID string,
	neoIDs []string,
) ([]entities.NeoRating, error) {
	tx := r.db.WithContext(ctx).Model(&neoRatingModel{}).
		Where("user_id = ?", strings.TrimSpace(userID))
	if len(neoIDs) > 0 {
		tx = tx.Where("neo_id IN ?", neoIDs)
	}
	var rows []neoRatingModel
	if err := tx.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("neo_repo_list_ratings_by_user_failed", err,
			"user_id", strings.TrimSpace(userID),
		)
	}
	return toRatingEntities(rows), nil
}

// ApplyRating upserts the caller's rating and recomputes the Neo aggregate
// from a full scan of the rating rows. The whole sequence runs in one
// transaction: either the vote and the recomputed aggregate land together or
// neither does.
func (r *Repository) ApplyRating(ctx context.Context, rating entities.NeoRating) (entities.Neo, error) {
	var updated neoModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		neoID := strings.TrimSpace(rating.NeoID)
		var neoRow neoModel
		if err := tx.Where("id = ?", neoID).First(&neoRow).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNeoNotFound
			}
			return err
		}

		row := ratingModelFromEntity(rating)
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "neo_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":            row.Value,
				"rejection_reason": row.RejectionReason,
				"updated_at":       row.UpdatedAt,
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		var ratingRows []neoRatingModel
		if err := tx.Where("neo_id = ?", neoID).Find(&ratingRows).Error; err != nil {
			return err
		}
		aggregate := services.AggregateRatings(toRatingEntities(ratingRows))

		if err := tx.Model(&neoModel{}).
			Where("id = ?", neoID).
			Updates(map[string]any{
				"rating_count": aggregate.RatingCount,
				"rating_score": aggregate.RatingScore,
				"reject_count": aggregate.RejectCount,
				"updated_at":   row.UpdatedAt,
			}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", neoID).First(&updated).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNeoNotFound) {
			return entities.Neo{}, err
		}
		return entities.Neo{}, r.logError("neo_repo_apply_rating_failed", err,
			"neo_id", strings.TrimSpace(rating.NeoID),
			"user_id", strings.TrimSpace(rating.UserID),
		)
	}
	return updated.toEntity(), nil
}

func (r *Repository) TermExists(ctx context.Context, termID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&termProjectionModel{}).
		Where("id = ?", strings.TrimSpace(termID)).
		Count(&count).
		Error
	if err != nil {
		return false, r.logError("neo_repo_term_exists_failed", err,
			"term_id", strings.TrimSpace(termID),
		)
	}
	return count > 0, nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return r.logError("neo_repo_append_outbox_marshal_failed", err,
			"event_id", strings.TrimSpace(envelope.EventID),
			"event_type", strings.TrimSpace(envelope.EventType),
		)
	}
	row := outboxModel{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      raw,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outbox_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("neo_repo_append_outbox_insert_failed", create.Error,
			"outbox_id", row.OutboxID,
		)
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, r.logError("neo_repo_list_pending_outbox_failed", err, "limit", limit)
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("neo_repo_mark_outbox_published_failed", result.Error,
			"outbox_id", strings.TrimSpace(outboxID),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrConflict
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "curation/neo-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("neo repository operation failed", fields...)
	return err
}

// SystemClock satisfies ports.Clock with wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator satisfies ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type neoModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	TermID        string    `gorm:"column:term_id"`
	ContributorID string    `gorm:"column:contributor_id"`
	Text          string    `gorm:"column:text"`
	NeoType       string    `gorm:"column:neo_type"`
	AudioURL      string    `gorm:"column:audio_url"`
	RatingCount   int       `gorm:"column:rating_count"`
	RatingScore   float64   `gorm:"column:rating_score"`
	RejectCount   int       `gorm:"column:reject_count"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (neoModel) TableName() string {
	return "neos"
}

func neoModelFromEntity(neo entities.Neo) neoModel {
	row := neoModel{
		ID:            strings.TrimSpace(neo.NeoID),
		TermID:        strings.TrimSpace(neo.TermID),
		ContributorID: strings.TrimSpace(neo.ContributorID),
		Text:          strings.TrimSpace(neo.Text),
		NeoType:       string(neo.Type),
		AudioURL:      strings.TrimSpace(neo.AudioURL),
		RatingCount:   neo.RatingCount,
		RatingScore:   neo.RatingScore,
		RejectCount:   neo.RejectCount,
		CreatedAt:     neo.CreatedAt.UTC(),
		UpdatedAt:     neo.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m neoModel) toEntity() entities.Neo {
	neoType, ok := entities.ParseNeoType(m.NeoType)
	if !ok {
		neoType = entities.NeoTypeCreative
	}
	return entities.Neo{
		NeoID:         m.ID,
		TermID:        m.TermID,
		ContributorID: m.ContributorID,
		Text:          m.Text,
		Type:          neoType,
		AudioURL:      m.AudioURL,
		RatingCount:   m.RatingCount,
		RatingScore:   m.RatingScore,
		RejectCount:   m.RejectCount,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

type neoRatingModel struct {
	NeoID           string    `gorm:"column:neo_id;primaryKey"`
	UserID          string    `gorm:"column:user_id;primaryKey"`
	Value           int       `gorm:"column:value"`
	RejectionReason *string   `gorm:"column:rejection_reason"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (neoRatingModel) TableName() string {
	return "neo_ratings"
}

func ratingModelFromEntity(rating entities.NeoRating) neoRatingModel {
	row := neoRatingModel{
		NeoID:     strings.TrimSpace(rating.NeoID),
		UserID:    strings.TrimSpace(rating.UserID),
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt.UTC(),
		UpdatedAt: rating.UpdatedAt.UTC(),
	}
	if rating.RejectionReason != nil {
		reason := strings.TrimSpace(*rating.RejectionReason)
		if reason != "" {
			row.RejectionReason = &reason
		}
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m neoRatingModel) toEntity() entities.NeoRating {
	return entities.NeoRating{
		NeoID:           m.NeoID,
		UserID:          m.UserID,
		Value:           m.Value,
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "curation_outbox"
}

type termProjectionModel struct {
	ID string `gorm:"column:id;primaryKey"`
}

func (termProjectionModel) TableName() string {
	return "terms"
}

func toRatingEntities(rows []neoRatingModel) []entities.NeoRating {
	items := make([]entities.NeoRating, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.NeoRepository = (*Repository)(nil)
var _ ports.TermCatalog = (*Repository)(nil)
var _ ports.OutboxWriter = (*Repository)(nil)
var _ ports.OutboxRepository = (*Repository)(nil)
