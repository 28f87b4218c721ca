// Package tui provides a terminal trace viewer for flobnar programs.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
)

// Ports aggregates the services and factories required by the viewer.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Interpreter loads and evaluates the program.
	Interpreter driving.InterpreterService

	// Programs reads the program text by name.
	Programs driven.ProgramSource

	// NewConsole builds the in-memory console the traced run talks to.
	NewConsole driven.ConsoleFactory
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Interpreter == nil {
		return ErrMissingInterpreterService
	}
	if p.Programs == nil {
		return ErrMissingProgramSource
	}
	if p.NewConsole == nil {
		return ErrMissingConsoleFactory
	}
	return nil
}
