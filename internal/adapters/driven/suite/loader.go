package suite

import (
	"path/filepath"
	"strings"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.SuiteLoader = (*Loader)(nil)

// Loader picks a parser from the document's file extension.
// .yaml and .yml use the YAML format, anything else is read as Markdown.
type Loader struct{}

// NewLoader creates a new loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses data according to name's extension.
func (l *Loader) Load(name string, data []byte) ([]domain.TestCase, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseMarkdown(data), nil
	}
}
