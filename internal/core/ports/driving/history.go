package driving

import (
	"context"

	"github.com/custodia-labs/flobnar/internal/core/domain"
)

// HistoryService exposes recorded runs.
type HistoryService interface {
	// List returns recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.RunRecord, error)

	// Clear removes all recorded runs.
	Clear(ctx context.Context) (int, error)
}
