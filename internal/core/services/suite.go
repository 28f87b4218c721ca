package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
	"github.com/custodia-labs/flobnar/internal/logger"
)

// Ensure SuiteService implements the interface.
var _ driving.SuiteService = (*SuiteService)(nil)

// SuiteService runs literate test documents against the interpreter.
type SuiteService struct {
	interpreter driving.InterpreterService
	programs    driven.ProgramSource
	loader      driven.SuiteLoader
	newConsole  driven.ConsoleFactory
}

// NewSuiteService creates a new suite service.
func NewSuiteService(
	interpreter driving.InterpreterService,
	programs driven.ProgramSource,
	loader driven.SuiteLoader,
	newConsole driven.ConsoleFactory,
) *SuiteService {
	return &SuiteService{
		interpreter: interpreter,
		programs:    programs,
		loader:      loader,
		newConsole:  newConsole,
	}
}

// RunFile loads the named document and runs every case in it.
func (s *SuiteService) RunFile(ctx context.Context, name string) (*domain.SuiteReport, error) {
	if s.loader == nil || s.programs == nil {
		return nil, errors.New("test suite loader not configured")
	}
	data, err := s.programs.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	cases, err := s.loader.Load(name, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return s.RunCases(ctx, name, cases)
}

// RunCases runs each case and compares its observed output with the expectation.
func (s *SuiteService) RunCases(ctx context.Context, name string, cases []domain.TestCase) (*domain.SuiteReport, error) {
	logger.Section("Test Suite")
	logger.Debug("Document: %s, cases: %d", name, len(cases))

	report := &domain.SuiteReport{
		Path:     name,
		Outcomes: make([]domain.TestOutcome, 0, len(cases)),
	}
	for i := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outcome := s.runCase(ctx, cases[i])
		logger.Debug("Case %q passed=%t", cases[i].Name, outcome.Passed)
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report, nil
}

func (s *SuiteService) runCase(ctx context.Context, tc domain.TestCase) domain.TestOutcome {
	var out bytes.Buffer
	console := s.newConsole(strings.NewReader(tc.Input), &out)

	req := domain.RunRequest{
		Name:        tc.Name,
		Source:      []byte(tc.Program),
		SkipHistory: true,
	}
	result, err := s.interpreter.Run(ctx, req, driving.RunOptions{Console: console})

	outcome := domain.TestOutcome{Case: tc}
	if err != nil {
		outcome.Actual = err.Error()
		outcome.Passed = tc.ExpectsError() && strings.Contains(err.Error(), tc.Error)
		return outcome
	}

	outcome.Actual = ObservedOutput(out.String(), result.Value)
	outcome.Passed = !tc.ExpectsError() && outcome.Actual == strings.TrimSpace(tc.Output)
	return outcome
}

// ObservedOutput renders what a run prints: its character output followed by
// the result line, trimmed of surrounding whitespace.
func ObservedOutput(output string, value int) string {
	return strings.TrimSpace(fmt.Sprintf("%sResult: %d\n", output, value))
}
