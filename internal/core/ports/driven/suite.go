package driven

import "github.com/custodia-labs/flobnar/internal/core/domain"

// SuiteLoader parses a test document into cases.
type SuiteLoader interface {
	// Load parses the document. name is used to pick a format.
	Load(name string, data []byte) ([]domain.TestCase, error)
}
