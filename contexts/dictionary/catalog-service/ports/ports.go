package ports

import (
	"context"
	"time"

	"neolingo/contexts/dictionary/catalog-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for requests and published terms.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository is the storage boundary for terms and translation requests.
//
// ApproveRequest marks the request approved and publishes the Term in one
// storage transaction; a request that is no longer pending fails with the
// already-reviewed error and publishes nothing.
type Repository interface {
	CreateRequest(ctx context.Context, request entities.TranslationRequest) error
	GetRequest(ctx context.Context, requestID string) (entities.TranslationRequest, error)
	ListRequests(ctx context.Context, status entities.RequestStatus) ([]entities.TranslationRequest, error)
	ApproveRequest(ctx context.Context, request entities.TranslationRequest, term entities.Term) error
	RejectRequest(ctx context.Context, request entities.TranslationRequest) error
	GetTerm(ctx context.Context, termID string) (entities.Term, error)
	ListTerms(ctx context.Context, language string) ([]entities.Term, error)
}
