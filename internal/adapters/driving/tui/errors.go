package tui

import "errors"

// ErrMissingInterpreterService is returned when the interpreter service is not provided.
var ErrMissingInterpreterService = errors.New("tui: interpreter service is required")

// ErrMissingProgramSource is returned when the program source is not provided.
var ErrMissingProgramSource = errors.New("tui: program source is required")

// ErrMissingConsoleFactory is returned when the console factory is not provided.
var ErrMissingConsoleFactory = errors.New("tui: console factory is required")
