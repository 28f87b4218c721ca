package driving

import (
	"context"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

// RunOptions supplies the collaborators a single run talks to.
type RunOptions struct {
	// Console handles ',' and '~'. Required.
	Console driven.Console

	// Tracer, if set, receives every cell visit.
	Tracer domain.Tracer

	// DepthLimit caps the recursion limit for this run, replacing an
	// unlimited setting. Zero applies no cap.
	DepthLimit int
}

// InterpreterService loads and evaluates programs.
type InterpreterService interface {
	// Run loads req.Source, finds the anchor and evaluates the cell west of it.
	Run(ctx context.Context, req domain.RunRequest, opts RunOptions) (*domain.RunResult, error)

	// RunFile reads the named program through the program source, then runs it.
	RunFile(ctx context.Context, name string, req domain.RunRequest, opts RunOptions) (*domain.RunResult, error)

	// Check loads and validates a program without evaluating it.
	Check(ctx context.Context, source []byte) (*domain.CheckResult, error)

	// Load parses a program into a grid and locates its anchor.
	Load(ctx context.Context, source []byte) (*domain.Grid, domain.Position, error)
}
