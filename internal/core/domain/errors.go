package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent interpreter and business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrHistoryUnavailable indicates no run store is configured.
	ErrHistoryUnavailable = errors.New("run history unavailable")

	// Load Errors.

	// ErrGridTooLarge indicates the program has more rows or columns than the grid holds.
	ErrGridTooLarge = errors.New("too many rows or columns in program file")

	// ErrNoAnchor indicates the program contains no @ sign.
	ErrNoAnchor = errors.New("program file contained no @ sign")

	// ErrMultipleAnchors indicates the program contains more than one @ sign.
	ErrMultipleAnchors = errors.New("program file contained multiple @ signs")

	// Evaluation Errors.

	// ErrOutOfBounds indicates a 'p' write outside the grid storage.
	ErrOutOfBounds = errors.New("out-of-bounds put")

	// ErrUnknownSymbol indicates a cell holds a symbol with no defined meaning.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrDepthExceeded indicates evaluation recursed past the configured limit.
	// Programs whose flow never terminates end here.
	ErrDepthExceeded = errors.New("evaluation depth exceeded")
)

// LoadError reports where in the program text loading failed.
type LoadError struct {
	Row    int
	Column int
	Err    error
}

func (e *LoadError) Error() string {
	if errors.Is(e.Err, ErrGridTooLarge) {
		return fmt.Sprintf("%v (at row %d, column %d)", e.Err, e.Row, e.Column)
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// OutOfBoundsError is returned by Grid.Put for coordinates outside storage.
type OutOfBoundsError struct {
	Row    int
	Column int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("out-of-bounds 'p' to (%d, %d) is not supported", e.Row, e.Column)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// UnknownSymbolError is returned when evaluation reaches a cell with no meaning.
type UnknownSymbolError struct {
	Code int
	Pos  Position
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown term %q (%d) encountered at %s", rune(e.Code), e.Code, e.Pos)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

// DepthError is returned when evaluation recursion exceeds Limit.
type DepthError struct {
	Limit int
	Pos   Position
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("evaluation depth exceeded limit of %d at %s", e.Limit, e.Pos)
}

func (e *DepthError) Unwrap() error { return ErrDepthExceeded }
