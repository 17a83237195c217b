package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"neolingo/contexts/identity-access/authorization-service/domain/entities"
	"neolingo/contexts/identity-access/authorization-service/ports"
)

// Store is the in-memory adapter used by tests and local development.
type Store struct {
	mu          sync.RWMutex
	assignments map[string]entities.RoleAssignment
	now         time.Time
}

func NewStore() *Store {
	return &Store{
		assignments: make(map[string]entities.RoleAssignment),
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

func (s *Store) GetUserRole(_ context.Context, userID string) (entities.RoleAssignment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assignment, ok := s.assignments[strings.TrimSpace(userID)]
	return assignment, ok, nil
}

func (s *Store) SaveUserRole(_ context.Context, assignment entities.RoleAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments[strings.TrimSpace(assignment.UserID)] = assignment
	return nil
}

func (s *Store) ListAssignments(_ context.Context) ([]entities.RoleAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.RoleAssignment, 0, len(s.assignments))
	for _, assignment := range s.assignments {
		items = append(items, assignment)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].UserID < items[j].UserID
	})
	return items, nil
}

var _ ports.RoleRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
