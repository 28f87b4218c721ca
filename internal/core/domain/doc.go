// Package domain defines the core entities of the Flobnar interpreter.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Position, Direction: grid coordinates and the four travel directions
//   - Arguments: the persistent argument stack threaded through evaluation
//   - Grid: fixed-size cell storage with a toroidal bounding box
//   - SymbolKind: the closed set of symbols the evaluator understands
//   - RunResult, RunRecord, TestCase: values exchanged with services and adapters
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
