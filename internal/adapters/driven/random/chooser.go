// Package random provides the pseudo-random source behind '?'.
package random

import (
	"math/rand/v2"
	"time"

	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

// Ensure Chooser implements the interface.
var _ driven.Chooser = (*Chooser)(nil)

// Chooser is a seeded PCG generator.
type Chooser struct {
	rng *rand.Rand
}

// New creates a chooser. A zero seed is replaced with the current time.
func New(seed int64) *Chooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Chooser{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))}
}

// NewChooser matches driven.ChooserFactory.
func NewChooser(seed int64) driven.Chooser {
	return New(seed)
}

// Intn returns a uniform value in [0, n).
func (c *Chooser) Intn(n int) int {
	return c.rng.IntN(n)
}
