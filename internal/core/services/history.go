package services

import (
	"context"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded runs.
type HistoryService struct {
	runStore driven.RunStore
}

// NewHistoryService creates a new history service.
// The runStore parameter is optional; without it every call fails with
// domain.ErrHistoryUnavailable.
func NewHistoryService(runStore driven.RunStore) *HistoryService {
	return &HistoryService{runStore: runStore}
}

// List returns recent runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if s.runStore == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	return s.runStore.List(ctx, limit)
}

// Get retrieves a run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.RunRecord, error) {
	if s.runStore == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.runStore.Get(ctx, id)
}

// Clear removes all recorded runs.
func (s *HistoryService) Clear(ctx context.Context) (int, error) {
	if s.runStore == nil {
		return 0, domain.ErrHistoryUnavailable
	}
	return s.runStore.Clear(ctx)
}
