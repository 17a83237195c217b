package queries

import (
	"context"
	"log/slog"
	"strings"

	"neolingo/contexts/dictionary/catalog-service/domain/entities"
	domainerrors "neolingo/contexts/dictionary/catalog-service/domain/errors"
	"neolingo/contexts/dictionary/catalog-service/ports"
)

type CatalogQueries struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

// ListRequests returns translation requests, optionally filtered by status.
// An empty status means all requests; an unknown status is rejected.
func (q CatalogQueries) ListRequests(
	ctx context.Context,
	rawStatus string,
) ([]entities.TranslationRequest, error) {
	var status entities.RequestStatus
	if trimmed := strings.TrimSpace(rawStatus); trimmed != "" {
		parsed, ok := entities.ParseRequestStatus(trimmed)
		if !ok {
			return nil, domainerrors.ErrInvalidStatus
		}
		status = parsed
	}
	return q.Repository.ListRequests(ctx, status)
}

func (q CatalogQueries) GetTerm(ctx context.Context, termID string) (entities.Term, error) {
	return q.Repository.GetTerm(ctx, strings.TrimSpace(termID))
}

// ListTerms returns published terms, optionally filtered by language.
func (q CatalogQueries) ListTerms(ctx context.Context, language string) ([]entities.Term, error) {
	return q.Repository.ListTerms(ctx, strings.TrimSpace(language))
}
