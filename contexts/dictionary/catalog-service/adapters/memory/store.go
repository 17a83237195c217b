package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"neolingo/contexts/dictionary/catalog-service/domain/entities"
	domainerrors "neolingo/contexts/dictionary/catalog-service/domain/errors"
	"neolingo/contexts/dictionary/catalog-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory adapter used by tests and local development. It
// mirrors the postgres adapter's semantics: ApproveRequest flips the status
// and publishes the Term under one lock.
type Store struct {
	mu sync.RWMutex

	requests map[string]entities.TranslationRequest
	terms    map[string]entities.Term
	now      time.Time
}

func NewStore(seed []entities.Term) *Store {
	terms := make(map[string]entities.Term, len(seed))
	for _, term := range seed {
		terms[term.TermID] = term
	}
	return &Store{
		requests: make(map[string]entities.TranslationRequest),
		terms:    terms,
	}
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

func (s *Store) CreateRequest(_ context.Context, request entities.TranslationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[request.RequestID]; exists {
		return domainerrors.ErrInvalidRequestInput
	}
	s.requests[request.RequestID] = request
	return nil
}

func (s *Store) GetRequest(_ context.Context, requestID string) (entities.TranslationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	request, ok := s.requests[strings.TrimSpace(requestID)]
	if !ok {
		return entities.TranslationRequest{}, domainerrors.ErrRequestNotFound
	}
	return request, nil
}

func (s *Store) ListRequests(
	_ context.Context,
	status entities.RequestStatus,
) ([]entities.TranslationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.TranslationRequest, 0, len(s.requests))
	for _, request := range s.requests {
		if status != "" && request.Status != status {
			continue
		}
		items = append(items, request)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].RequestID < items[j].RequestID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ApproveRequest(
	_ context.Context,
	request entities.TranslationRequest,
	term entities.Term,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.requests[request.RequestID]
	if !ok {
		return domainerrors.ErrRequestNotFound
	}
	if current.Status != entities.RequestStatusPending {
		return domainerrors.ErrAlreadyReviewed
	}
	s.requests[request.RequestID] = request
	s.terms[term.TermID] = term
	return nil
}

func (s *Store) RejectRequest(_ context.Context, request entities.TranslationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.requests[request.RequestID]
	if !ok {
		return domainerrors.ErrRequestNotFound
	}
	if current.Status != entities.RequestStatusPending {
		return domainerrors.ErrAlreadyReviewed
	}
	s.requests[request.RequestID] = request
	return nil
}

func (s *Store) GetTerm(_ context.Context, termID string) (entities.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term, ok := s.terms[strings.TrimSpace(termID)]
	if !ok {
		return entities.Term{}, domainerrors.ErrTermNotFound
	}
	return term, nil
}

func (s *Store) ListTerms(_ context.Context, language string) ([]entities.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Term, 0, len(s.terms))
	for _, term := range s.terms {
		if language != "" && term.Language != language {
			continue
		}
		items = append(items, term)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Headword == items[j].Headword {
			return items[i].TermID < items[j].TermID
		}
		return items[i].Headword < items[j].Headword
	})
	return items, nil
}

// TermExists lets the curation module validate submissions against the
// in-memory catalog in tests without a cross-module dependency on storage.
func (s *Store) TermExists(_ context.Context, termID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.terms[strings.TrimSpace(termID)]
	return ok, nil
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
