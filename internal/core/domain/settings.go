package domain

// Settings controls how programs are loaded and evaluated.
type Settings struct {
	// Grid is the storage extent programs are loaded into.
	Grid GridSettings

	// Interpreter tunes evaluation.
	Interpreter InterpreterSettings

	// History controls run recording.
	History HistorySettings
}

// GridSettings is the fixed grid storage extent.
type GridSettings struct {
	Rows    int
	Columns int
}

// InterpreterSettings tunes evaluation.
type InterpreterSettings struct {
	// MaxDepth bounds evaluation recursion. Zero means unlimited, in which
	// case a non-terminating program exhausts the goroutine stack.
	MaxDepth int

	// EOFValue is what '~' returns once input is exhausted.
	EOFValue int

	// Seed seeds the '?' chooser. Zero selects a time-based seed.
	Seed int64
}

// HistorySettings controls run recording.
type HistorySettings struct {
	Enabled bool
}

// DefaultMaxDepth keeps the recursion guard well inside Go's default
// maximum goroutine stack.
const DefaultMaxDepth = 1_000_000

// DefaultEOFValue is returned by '~' at end of input.
const DefaultEOFValue = -1

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Grid: GridSettings{
			Rows:    DefaultRows,
			Columns: DefaultColumns,
		},
		Interpreter: InterpreterSettings{
			MaxDepth: DefaultMaxDepth,
			EOFValue: DefaultEOFValue,
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if !ValidExtent(s.Grid.Rows) || !ValidExtent(s.Grid.Columns) {
		return ErrInvalidInput
	}
	if s.Interpreter.MaxDepth < 0 {
		return ErrInvalidInput
	}
	return nil
}
