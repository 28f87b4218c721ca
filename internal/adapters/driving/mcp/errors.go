// Package mcp provides an MCP (Model Context Protocol) server adapter for flobnar.
// It lets assistants evaluate and inspect Flobnar programs.
package mcp

import "errors"

// ErrMissingInterpreterService is returned when the interpreter service is not provided.
var ErrMissingInterpreterService = errors.New("mcp: interpreter service is required")

// ErrMissingConsoleFactory is returned when no console factory is provided.
var ErrMissingConsoleFactory = errors.New("mcp: console factory is required")
