package driven

import "context"

// ProgramSource reads program text.
type ProgramSource interface {
	// Read returns the program text stored under name.
	Read(ctx context.Context, name string) ([]byte, error)
}
