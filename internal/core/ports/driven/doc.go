// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Console: Character input and output for ',' and '~'
//   - Chooser: Uniform random choice for '?'
//   - ConfigStore: Application configuration
//   - ProgramSource: Reads program text by name
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Run history persistence. Without it, runs are not recorded.
//   - SuiteLoader: Literate test document parsing. Without it, `test` is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
