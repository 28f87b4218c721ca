package driving

import (
	"context"

	"github.com/custodia-labs/flobnar/internal/core/domain"
)

// SuiteService runs literate test documents.
type SuiteService interface {
	// RunFile loads the named document and runs every case in it.
	RunFile(ctx context.Context, name string) (*domain.SuiteReport, error)

	// RunCases runs already-parsed cases.
	RunCases(ctx context.Context, name string, cases []domain.TestCase) (*domain.SuiteReport, error)
}
