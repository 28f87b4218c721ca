package mcp

import (
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
)

// Ports aggregates the services and factories the MCP server needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Interpreter evaluates and checks programs.
	Interpreter driving.InterpreterService

	// NewConsole builds the in-memory console each evaluation talks to.
	NewConsole driven.ConsoleFactory

	// History exposes recorded runs as resources. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Interpreter == nil {
		return ErrMissingInterpreterService
	}
	if p.NewConsole == nil {
		return ErrMissingConsoleFactory
	}
	return nil
}
