package domain

// TestCase is a single literate test: a program plus its expectation.
type TestCase struct {
	// Name identifies the case in reports.
	Name string

	// Line is where the case starts in its document, 0 if unknown.
	Line int

	// Program is the left-justified program text.
	Program string

	// Input is fed to '~'.
	Input string

	// Output is the expected trimmed output, including the "Result: N" line.
	Output string

	// Error, when set, is a substring the evaluation error must contain.
	Error string
}

// ExpectsError reports whether the case expects evaluation to fail.
func (c TestCase) ExpectsError() bool {
	return c.Error != ""
}

// TestOutcome is the result of running one TestCase.
type TestOutcome struct {
	Case   TestCase
	Actual string
	Passed bool
}

// SuiteReport aggregates outcomes for a document.
type SuiteReport struct {
	Path     string
	Outcomes []TestOutcome
}

// Passed returns the number of passing cases.
func (r SuiteReport) Passed() int {
	n := 0
	for i := range r.Outcomes {
		if r.Outcomes[i].Passed {
			n++
		}
	}
	return n
}

// Failed returns the number of failing cases.
func (r SuiteReport) Failed() int {
	return len(r.Outcomes) - r.Passed()
}
