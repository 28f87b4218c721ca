// Package services implements the driving port interfaces.
// The evaluator and the services around it hold the interpreter logic
// and orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies.
package services
