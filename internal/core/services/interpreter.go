package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
	"github.com/custodia-labs/flobnar/internal/logger"
)

// Ensure InterpreterService implements the interface.
var _ driving.InterpreterService = (*InterpreterService)(nil)

// maxRecordedOutput caps how much program output is kept in a history record.
const maxRecordedOutput = 4096

// InterpreterService loads programs and evaluates them from their anchor.
type InterpreterService struct {
	settings   driving.SettingsService
	programs   driven.ProgramSource
	runStore   driven.RunStore
	newChooser driven.ChooserFactory
	now        func() time.Time
}

// NewInterpreterService creates a new interpreter service.
// The runStore parameter is optional (can be nil).
func NewInterpreterService(
	settings driving.SettingsService,
	programs driven.ProgramSource,
	runStore driven.RunStore,
	newChooser driven.ChooserFactory,
) *InterpreterService {
	return &InterpreterService{
		settings:   settings,
		programs:   programs,
		runStore:   runStore,
		newChooser: newChooser,
		now:        time.Now,
	}
}

// RunFile reads the named program and runs it.
func (s *InterpreterService) RunFile(
	ctx context.Context,
	name string,
	req domain.RunRequest,
	opts driving.RunOptions,
) (*domain.RunResult, error) {
	if s.programs == nil {
		return nil, errors.New("program source not configured")
	}
	source, err := s.programs.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	req.Name = name
	req.Source = source
	return s.Run(ctx, req, opts)
}

// Run loads req.Source and evaluates the cell west of its anchor, arriving
// from the east, with an empty argument stack.
func (s *InterpreterService) Run(
	ctx context.Context,
	req domain.RunRequest,
	opts driving.RunOptions,
) (*domain.RunResult, error) {
	if opts.Console == nil {
		return nil, fmt.Errorf("%w: console is required", domain.ErrInvalidInput)
	}

	settings, err := s.effectiveSettings(req)
	if err != nil {
		return nil, err
	}
	if limit := opts.DepthLimit; limit > 0 {
		if settings.Interpreter.MaxDepth == 0 || settings.Interpreter.MaxDepth > limit {
			settings.Interpreter.MaxDepth = limit
		}
	}

	logger.Section("Load")
	grid, anchor, err := s.load(req.Source, settings.Grid)
	if err != nil {
		return nil, err
	}
	minPos, maxPos := grid.Bounds()
	logger.Debug("Program: %q", req.Name)
	logger.Debug("Storage: %dx%d, bounding box %s-%s", grid.Rows(), grid.Columns(), minPos, maxPos)
	logger.Debug("Anchor: %s", anchor)

	console := &recordingConsole{Console: opts.Console}
	evaluator := NewEvaluator(grid, console, s.newChooser(settings.Interpreter.Seed),
		WithMaxDepth(settings.Interpreter.MaxDepth),
		WithEOFValue(settings.Interpreter.EOFValue),
		WithTracer(opts.Tracer),
	)

	logger.Section("Evaluate")
	logger.Debug("Max depth: %d, EOF value: %d, seed: %d",
		settings.Interpreter.MaxDepth, settings.Interpreter.EOFValue, settings.Interpreter.Seed)

	started := s.now()
	value, evalErr := evaluator.Evaluate(ctx, anchor.Step(domain.West), domain.East, domain.Arguments{})
	elapsed := s.now().Sub(started)

	logger.Info("Visited %d cells, deepest recursion %d, took %s",
		evaluator.Steps(), evaluator.Deepest(), elapsed)

	result := &domain.RunResult{
		Value:    value,
		Anchor:   anchor,
		Steps:    evaluator.Steps(),
		MaxDepth: evaluator.Deepest(),
		Duration: elapsed,
	}

	if settings.History.Enabled && !req.SkipHistory && s.runStore != nil {
		record := &domain.RunRecord{
			Program:   req.Name,
			Digest:    digest(req.Source),
			Value:     value,
			Output:    console.out.String(),
			Steps:     evaluator.Steps(),
			StartedAt: started.UTC(),
			Duration:  elapsed,
		}
		if evalErr != nil {
			record.Value = 0
			record.Error = evalErr.Error()
		}
		// History is best effort; a failing store must not hide the run outcome.
		if err := s.runStore.Save(context.WithoutCancel(ctx), record); err != nil {
			logger.Warn("Recording run failed: %v", err)
		} else {
			result.RecordID = record.ID
		}
	}

	if evalErr != nil {
		logger.Warn("Evaluation failed: %v", evalErr)
		return nil, fmt.Errorf("evaluation failed: %w", evalErr)
	}
	return result, nil
}

// Check loads a program and describes it without evaluating.
func (s *InterpreterService) Check(ctx context.Context, source []byte) (*domain.CheckResult, error) {
	grid, anchor, err := s.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	minPos, maxPos := grid.Bounds()
	return &domain.CheckResult{
		Anchor:   anchor,
		Min:      minPos,
		Max:      maxPos,
		NonBlank: grid.NonBlank(),
		Lines:    grid.Lines(),
	}, nil
}

// Load parses source with the configured grid extent and finds its anchor.
func (s *InterpreterService) Load(ctx context.Context, source []byte) (*domain.Grid, domain.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.Position{}, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, domain.Position{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return s.load(source, settings.Grid)
}

func (s *InterpreterService) load(source []byte, extent domain.GridSettings) (*domain.Grid, domain.Position, error) {
	grid, err := domain.ParseGrid(bytes.NewReader(source), extent.Rows, extent.Columns)
	if err != nil {
		return nil, domain.Position{}, fmt.Errorf("loading program: %w", err)
	}
	anchor, err := grid.FindAnchor()
	if err != nil {
		return nil, domain.Position{}, fmt.Errorf("loading program: %w", err)
	}
	return grid, anchor, nil
}

func (s *InterpreterService) effectiveSettings(req domain.RunRequest) (*domain.Settings, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if req.MaxDepth != nil {
		settings.Interpreter.MaxDepth = *req.MaxDepth
	}
	if req.Seed != nil {
		settings.Interpreter.Seed = *req.Seed
	}
	if req.EOFValue != nil {
		settings.Interpreter.EOFValue = *req.EOFValue
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func digest(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

// recordingConsole keeps a bounded copy of program output for history.
type recordingConsole struct {
	driven.Console
	out bytes.Buffer
}

func (c *recordingConsole) WriteSymbol(code int) error {
	if err := c.Console.WriteSymbol(code); err != nil {
		return err
	}
	if c.out.Len() < maxRecordedOutput {
		c.out.WriteByte(byte(code))
	}
	return nil
}
