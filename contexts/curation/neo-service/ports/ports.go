package ports

import (
	"context"
	"time"

	"neolingo/contexts/curation/neo-service/domain/entities"
	contractsv1 "neolingo/contracts/gen/events/v1"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for new Neo rows and outbox events.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// NeoRepository is the storage boundary for Neos and their ratings.
//
// ApplyRating is the aggregate write path: it upserts the (user, neo) rating
// row, recomputes the Neo's aggregate from a full scan of its rating rows,
// and persists the aggregate — all inside one storage transaction. No
// partially updated aggregate is ever visible to a concurrent reader.
type NeoRepository interface {
	CreateNeos(ctx context.Context, neos []entities.Neo) error
	GetNeo(ctx context.Context, neoID string) (entities.Neo, error)
	ListNeosByTerm(ctx context.Context, termID string) ([]entities.Neo, error)
	ListRatingsByTerm(ctx context.Context, termID string) ([]entities.NeoRating, error)
	ListRatingsByUser(ctx context.Context, userID string, neoIDs []string) ([]entities.NeoRating, error)
	ApplyRating(ctx context.Context, rating entities.NeoRating) (entities.Neo, error)
}

// TermCatalog is the read-only projection of the dictionary catalog this
// module validates submissions against.
type TermCatalog interface {
	TermExists(ctx context.Context, termID string) (bool, error)
}

// ReviewInput is the material handed to the content reviewer.
type ReviewInput struct {
	TermID string
	Text   string
	Type   entities.NeoType
}

// ReviewVerdict is the reviewer's decision for one suggestion.
type ReviewVerdict struct {
	Flagged bool
	Reason  string
}

// ContentReviewer screens suggestion text before acceptance. Implementations
// may call an external model; failures are advisory, not fatal.
type ContentReviewer interface {
	ReviewNeo(ctx context.Context, input ReviewInput) (ReviewVerdict, error)
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// OutboxWriter persists events alongside the state change that produced them.
type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

// OutboxMessage is a row ready to relay from the module outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
