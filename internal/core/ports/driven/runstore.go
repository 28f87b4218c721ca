package driven

import (
	"context"

	"github.com/custodia-labs/flobnar/internal/core/domain"
)

// RunStore persists run history.
type RunStore interface {
	// Save stores a run record, assigning record.ID when it is empty.
	Save(ctx context.Context, record *domain.RunRecord) error

	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.RunRecord, error)

	// List returns the most recent records first, at most limit of them.
	// A limit of zero or less returns all records.
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Clear removes all records and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
