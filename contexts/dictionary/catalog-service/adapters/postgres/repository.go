package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"neolingo/contexts/dictionary/catalog-service/domain/entities"
	domainerrors "neolingo/contexts/dictionary/catalog-service/domain/errors"
	"neolingo/contexts/dictionary/catalog-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
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

func (r *Repository) CreateRequest(ctx context.Context, request entities.TranslationRequest) error {
	row := requestModelFromEntity(request)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidRequestInput
		}
		return r.logError("catalog_repo_create_request_failed", err,
			"request_id", row.ID,
		)
	}
	return nil
}

func (r *Repository) GetRequest(ctx context.Context, requestID string) (entities.TranslationRequest, error) {
	var row requestModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(requestID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.TranslationRequest{}, domainerrors.ErrRequestNotFound
		}
		return entities.TranslationRequest{}, r.logError("catalog_repo_get_request_failed", err,
			"request_id", strings.TrimSpace(requestID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListRequests(
	ctx context.Context,
	status entities.RequestStatus,
) ([]entities.TranslationRequest, error) {
	tx := r.db.WithContext(ctx).Model(&requestModel{})
	if status != "" {
		tx = tx.Where("status = ?", string(status))
	}
	var rows []requestModel
	if err := tx.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("catalog_repo_list_requests_failed", err,
			"status", string(status),
		)
	}
	items := make([]entities.TranslationRequest, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// ApproveRequest flips the request to approved and inserts the Term in one
// transaction. The status flip is guarded with a conditional update so two
// concurrent reviewers cannot both publish.
func (r *Repository) ApproveRequest(
	ctx context.Context,
	request entities.TranslationRequest,
	term entities.Term,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := requestModelFromEntity(request)
		result := tx.Model(&requestModel{}).
			Where("id = ? AND status = ?", row.ID, string(entities.RequestStatusPending)).
			Updates(map[string]any{
				"status":      row.Status,
				"reviewer_id": row.ReviewerID,
				"review_note": row.ReviewNote,
				"reviewed_at": row.ReviewedAt,
				"updated_at":  row.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrAlreadyReviewed
		}

		termRow := termModelFromEntity(term)
		return tx.Create(&termRow).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyReviewed) {
			return err
		}
		return r.logError("catalog_repo_approve_request_failed", err,
			"request_id", strings.TrimSpace(request.RequestID),
			"term_id", strings.TrimSpace(term.TermID),
		)
	}
	return nil
}

func (r *Repository) RejectRequest(ctx context.Context, request entities.TranslationRequest) error {
	row := requestModelFromEntity(request)
	result := r.db.WithContext(ctx).Model(&requestModel{}).
		Where("id = ? AND status = ?", row.ID, string(entities.RequestStatusPending)).
		Updates(map[string]any{
			"status":      row.Status,
			"reviewer_id": row.ReviewerID,
			"review_note": row.ReviewNote,
			"reviewed_at": row.ReviewedAt,
			"updated_at":  row.UpdatedAt,
		})
	if result.Error != nil {
		return r.logError("catalog_repo_reject_request_failed", result.Error,
			"request_id", row.ID,
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadyReviewed
	}
	return nil
}

func (r *Repository) GetTerm(ctx context.Context, termID string) (entities.Term, error) {
	var row termModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(termID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Term{}, domainerrors.ErrTermNotFound
		}
		return entities.Term{}, r.logError("catalog_repo_get_term_failed", err,
			"term_id", strings.TrimSpace(termID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListTerms(ctx context.Context, language string) ([]entities.Term, error) {
	tx := r.db.WithContext(ctx).Model(&termModel{})
	if language != "" {
		tx = tx.Where("language = ?", language)
	}
	var rows []termModel
	if err := tx.Order("headword ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("catalog_repo_list_terms_failed", err,
			"language", language,
		)
	}
	items := make([]entities.Term, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "dictionary/catalog-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("catalog repository operation failed", fields...)
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

type requestModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	Gloss        string     `gorm:"column:gloss"`
	PartOfSpeech string     `gorm:"column:part_of_speech"`
	Language     string     `gorm:"column:language"`
	RequesterID  string     `gorm:"column:requester_id"`
	Status       string     `gorm:"column:status"`
	ReviewerID   string     `gorm:"column:reviewer_id"`
	ReviewNote   string     `gorm:"column:review_note"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (requestModel) TableName() string {
	return "translation_requests"
}

func requestModelFromEntity(request entities.TranslationRequest) requestModel {
	return requestModel{
		ID:           strings.TrimSpace(request.RequestID),
		Gloss:        strings.TrimSpace(request.Gloss),
		PartOfSpeech: strings.TrimSpace(request.PartOfSpeech),
		Language:     strings.TrimSpace(request.Language),
		RequesterID:  strings.TrimSpace(request.RequesterID),
		Status:       string(request.Status),
		ReviewerID:   strings.TrimSpace(request.ReviewerID),
		ReviewNote:   strings.TrimSpace(request.ReviewNote),
		ReviewedAt:   request.ReviewedAt,
		CreatedAt:    request.CreatedAt.UTC(),
		UpdatedAt:    request.UpdatedAt.UTC(),
	}
}

func (m requestModel) toEntity() entities.TranslationRequest {
	status, ok := entities.ParseRequestStatus(m.Status)
	if !ok {
		status = entities.RequestStatusPending
	}
	return entities.TranslationRequest{
		RequestID:    m.ID,
		Gloss:        m.Gloss,
		PartOfSpeech: m.PartOfSpeech,
		Language:     m.Language,
		RequesterID:  m.RequesterID,
		Status:       status,
		ReviewerID:   m.ReviewerID,
		ReviewNote:   m.ReviewNote,
		ReviewedAt:   m.ReviewedAt,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type termModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Headword     string    `gorm:"column:headword"`
	Language     string    `gorm:"column:language"`
	PartOfSpeech string    `gorm:"column:part_of_speech"`
	Gloss        string    `gorm:"column:gloss"`
	RequestID    string    `gorm:"column:request_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (termModel) TableName() string {
	return "terms"
}

func termModelFromEntity(term entities.Term) termModel {
	return termModel{
		ID:           strings.TrimSpace(term.TermID),
		Headword:     strings.TrimSpace(term.Headword),
		Language:     strings.TrimSpace(term.Language),
		PartOfSpeech: strings.TrimSpace(term.PartOfSpeech),
		Gloss:        strings.TrimSpace(term.Gloss),
		RequestID:    strings.TrimSpace(term.RequestID),
		CreatedAt:    term.CreatedAt.UTC(),
		UpdatedAt:    term.UpdatedAt.UTC(),
	}
}

func (m termModel) toEntity() entities.Term {
	return entities.Term{
		TermID:       m.ID,
		Headword:     m.Headword,
		Language:     m.Language,
		PartOfSpeech: m.PartOfSpeech,
		Gloss:        m.Gloss,
		RequestID:    m.RequestID,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.Repository = (*Repository)(nil)
