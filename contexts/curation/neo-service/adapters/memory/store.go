package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"neolingo/contexts/curation/neo-service/domain/entities"
	domainerrors "neolingo/contexts/curation/neo-service/domain/errors"
	"neolingo/contexts/curation/neo-service/domain/services"
	"neolingo/contexts/curation/neo-service/ports"

	"github.com/google/uuid"
)

type ratingKey struct {
	neoID  string
	userID string
}

type outboxRecord struct {
	message   ports.OutboxMessage
	published bool
}

// Store is the in-memory adapter used by tests and local development. It
// mirrors the postgres adapter's semantics: ApplyRating mutates the rating
// row and the Neo aggregate under one lock, so readers never observe a
// partial update.
type Store struct {
	mu sync.RWMutex

	neos    map[string]entities.Neo
	ratings map[ratingKey]entities.NeoRating
	terms   map[string]bool
	outbox  map[string]outboxRecord
	now     time.Time
}

func NewStore(seed []entities.Neo) *Store {
	neos := make(map[string]entities.Neo, len(seed))
	for _, neo := range seed {
		neos[neo.NeoID] = neo
	}
	return &Store{
		neos:    neos,
		ratings: make(map[ratingKey]entities.NeoRating),
		terms:   make(map[string]bool),
		outbox:  make(map[string]outboxRecord),
	}
}

// SetTerm registers a term id the submission path validates against.
func (s *Store) SetTerm(termID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms[strings.TrimSpace(termID)] = true
}

// SetNow pins the clock for deterministic tests; zero restores wall-clock.
func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.now.IsZero() {
		return time.Now().UTC()
	}
	return s.now
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) CreateNeos(_ context.Context, neos []entities.Neo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, neo := range neos {
		if _, exists := s.neos[neo.NeoID]; exists {
			return domainerrors.ErrConflict
		}
	}
	for _, neo := range neos {
		s.neos[neo.NeoID] = neo
	}
	return nil
}

func (s *Store) GetNeo(_ context.Context, neoID string) (entities.Neo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	neo, ok := s.neos[strings.TrimSpace(neoID)]
	if !ok {
		return entities.Neo{}, domainerrors.ErrNeoNotFound
	}
	return neo, nil
}

func (s *Store) ListNeosByTerm(_ context.Context, termID string) ([]entities.Neo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	termID = strings.TrimSpace(termID)
	items := make([]entities.Neo, 0)
	for _, neo := range s.neos {
		if neo.TermID == termID {
			items = append(items, neo)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].NeoID < items[j].NeoID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ListRatingsByTerm(_ context.Context, termID string) ([]entities.NeoRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	termID = strings.TrimSpace(termID)
	items := make([]entities.NeoRating, 0)
	for _, rating := range s.ratings {
		neo, ok := s.neos[rating.NeoID]
		if ok && neo.TermID == termID {
			items = append(items, rating)
		}
	}
	sortRatings(items)
	return items, nil
}

func (s *Store) ListRatingsByUser(
	_ context.Context,
	userID string,
	neoIDs []string,
) ([]entities.NeoRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID = strings.TrimSpace(userID)
	scope := make(map[string]bool, len(neoIDs))
	for _, neoID := range neoIDs {
		scope[neoID] = true
	}
	items := make([]entities.NeoRating, 0)
	for _, rating := range s.ratings {
		if rating.UserID != userID {
			continue
		}
		if len(neoIDs) > 0 && !scope[rating.NeoID] {
			continue
		}
		items = append(items, rating)
	}
	sortRatings(items)
	return items, nil
}

func (s *Store) ApplyRating(_ context.Context, rating entities.NeoRating) (entities.Neo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	neoID := strings.TrimSpace(rating.NeoID)
	neo, ok := s.neos[neoID]
	if !ok {
		return entities.Neo{}, domainerrors.ErrNeoNotFound
	}

	key := ratingKey{neoID: neoID, userID: strings.TrimSpace(rating.UserID)}
	if existing, found := s.ratings[key]; found {
		rating.CreatedAt = existing.CreatedAt
	}
	s.ratings[key] = rating

	all := make([]entities.NeoRating, 0)
	for _, row := range s.ratings {
		if row.NeoID == neoID {
			all = append(all, row)
		}
	}
	aggregate := services.AggregateRatings(all)
	neo.RatingCount = aggregate.RatingCount
	neo.RatingScore = aggregate.RatingScore
	neo.RejectCount = aggregate.RejectCount
	neo.UpdatedAt = rating.UpdatedAt
	s.neos[neoID] = neo
	return neo, nil
}

func (s *Store) TermExists(_ context.Context, termID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.terms[strings.TrimSpace(termID)], nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	outboxID := strings.TrimSpace(envelope.EventID)
	if outboxID == "" {
		outboxID = uuid.NewString()
	}
	if _, exists := s.outbox[outboxID]; exists {
		return nil
	}
	s.outbox[outboxID] = outboxRecord{
		message: ports.OutboxMessage{
			OutboxID:     outboxID,
			EventType:    envelope.EventType,
			PartitionKey: envelope.PartitionKey,
			Payload:      payload,
			CreatedAt:    envelope.OccurredAt.UTC(),
		},
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.OutboxMessage, 0)
	for _, record := range s.outbox {
		if record.published {
			continue
		}
		items = append(items, record.message)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].OutboxID < items[j].OutboxID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.outbox[strings.TrimSpace(outboxID)]
	if !ok || record.published {
		return domainerrors.ErrConflict
	}
	record.published = true
	s.outbox[strings.TrimSpace(outboxID)] = record
	return nil
}

func sortRatings(items []entities.NeoRating) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			if items[i].NeoID == items[j].NeoID {
				return items[i].UserID < items[j].UserID
			}
			return items[i].NeoID < items[j].NeoID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

var _ ports.NeoRepository = (*Store)(nil)
var _ ports.TermCatalog = (*Store)(nil)
var _ ports.OutboxWriter = (*Store)(nil)
var _ ports.OutboxRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
