package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

// Ensure ProgramSource implements the interface.
var _ driven.ProgramSource = (*ProgramSource)(nil)

// StdinName is the program name that reads from standard input.
const StdinName = "-"

// ProgramSource reads programs and test documents from disk.
type ProgramSource struct {
	stdin io.Reader
}

// NewProgramSource creates a program source. stdin serves the name "-"
// and may be nil.
func NewProgramSource(stdin io.Reader) *ProgramSource {
	return &ProgramSource{stdin: stdin}
}

// Read returns the file contents. A missing file wraps domain.ErrNotFound.
func (p *ProgramSource) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: program name is empty", domain.ErrInvalidInput)
	}
	if name == StdinName {
		if p.stdin == nil {
			return nil, fmt.Errorf("%w: standard input is not available", domain.ErrInvalidInput)
		}
		return io.ReadAll(p.stdin)
	}

	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
