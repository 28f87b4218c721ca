package driven

// Chooser picks uniformly among n outcomes.
type Chooser interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// ChooserFactory creates a Chooser. A zero seed requests a time-based seed.
type ChooserFactory func(seed int64) Chooser
