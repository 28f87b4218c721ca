package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu      sync.RWMutex
	records map[string]domain.RunRecord
	order   []string
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		records: make(map[string]domain.RunRecord),
	}
}

// Save stores a run record, assigning an ID when it has none.
func (s *RunStore) Save(_ context.Context, record *domain.RunRecord) error {
	if record == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if _, exists := s.records[record.ID]; !exists {
		s.order = append(s.order, record.ID)
	}
	s.records[record.ID] = *record
	return nil
}

// Get retrieves a record by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns records newest first. Records with equal start times keep
// reverse insertion order.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.RunRecord, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		result = append(result, s.records[s.order[i]])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes all records.
func (s *RunStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.records)
	s.records = make(map[string]domain.RunRecord)
	s.order = nil
	return n, nil
}
