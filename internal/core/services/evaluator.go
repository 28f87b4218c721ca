package services

import (
	"context"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

// cancelCheckMask sets how often (in visited cells) evaluation polls its context.
const cancelCheckMask = 1<<12 - 1

// Evaluator computes the value of grid cells by recursively pulling values
// from their neighbours. An Evaluator is not safe for concurrent use; the
// grid it evaluates is mutated in place by 'p'.
type Evaluator struct {
	grid     *domain.Grid
	console  driven.Console
	chooser  driven.Chooser
	tracer   domain.Tracer
	maxDepth int
	eofValue int

	ctx     context.Context
	steps   int
	depth   int
	deepest int
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithMaxDepth bounds recursion depth. Zero means unlimited.
func WithMaxDepth(n int) EvaluatorOption {
	return func(e *Evaluator) { e.maxDepth = n }
}

// WithEOFValue sets the value '~' returns at end of input.
func WithEOFValue(v int) EvaluatorOption {
	return func(e *Evaluator) { e.eofValue = v }
}

// WithTracer installs a tracer that sees every visited cell.
func WithTracer(t domain.Tracer) EvaluatorOption {
	return func(e *Evaluator) { e.tracer = t }
}

// NewEvaluator creates an evaluator over grid.
func NewEvaluator(grid *domain.Grid, console driven.Console, chooser driven.Chooser, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		grid:     grid,
		console:  console,
		chooser:  chooser,
		eofValue: domain.DefaultEOFValue,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns the value of the cell at pos, entered travelling away
// from direction from, with args as the current argument stack.
// Any failure aborts the whole evaluation.
func (e *Evaluator) Evaluate(ctx context.Context, pos domain.Position, from domain.Direction, args domain.Arguments) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	e.ctx = ctx
	defer func() { e.ctx = nil }()
	return e.eval(pos, from, args)
}

// Steps returns the number of cells visited so far.
func (e *Evaluator) Steps() int { return e.steps }

// Deepest returns the maximum recursion depth reached so far.
func (e *Evaluator) Deepest() int { return e.deepest }

//nolint:gocyclo,funlen // one case per symbol
func (e *Evaluator) eval(pos domain.Position, from domain.Direction, args domain.Arguments) (int, error) {
	pos = e.grid.Wrap(pos)

	e.steps++
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.deepest {
		e.deepest = e.depth
	}
	if e.maxDepth > 0 && e.depth > e.maxDepth {
		return 0, &domain.DepthError{Limit: e.maxDepth, Pos: pos}
	}
	if e.steps&cancelCheckMask == 0 {
		if err := e.ctx.Err(); err != nil {
			return 0, err
		}
	}

	code := e.grid.Get(pos.Row, pos.Column)
	if e.tracer != nil {
		e.tracer(domain.TraceEvent{Step: e.steps, Depth: e.depth, Pos: pos, From: from, Symbol: code})
	}

	// Most symbols continue straight on, away from where flow arrived.
	ahead := from.Opposite()
	onward := pos.Step(ahead)

	kind := domain.Classify(code)
	switch kind {
	case domain.SymbolDigit:
		return code - '0', nil

	case domain.SymbolGoWest:
		return e.eval(pos.Step(domain.West), domain.East, args)
	case domain.SymbolGoEast:
		return e.eval(pos.Step(domain.East), domain.West, args)
	case domain.SymbolGoNorth:
		return e.eval(pos.Step(domain.North), domain.South, args)
	case domain.SymbolGoSouth:
		return e.eval(pos.Step(domain.South), domain.North, args)

	case domain.SymbolBlank:
		return e.eval(onward, from, args)
	case domain.SymbolSkip:
		return e.eval(onward.Step(ahead), from, args)

	case domain.SymbolAdd, domain.SymbolSubtract, domain.SymbolMultiply, domain.SymbolGreater:
		above, below, err := e.operands(pos, args)
		if err != nil {
			return 0, err
		}
		return arithmetic(kind, above, below), nil

	case domain.SymbolDivide, domain.SymbolModulo:
		above, below, err := e.operands(pos, args)
		if err != nil {
			return 0, err
		}
		if below == 0 {
			return e.eval(onward, from, args)
		}
		return arithmetic(kind, above, below), nil

	case domain.SymbolHorizontalIf:
		cond, err := e.eval(onward, from, args)
		if err != nil {
			return 0, err
		}
		if cond != 0 {
			return e.eval(pos.Step(domain.West), domain.East, args)
		}
		return e.eval(pos.Step(domain.East), domain.West, args)

	case domain.SymbolVerticalIf:
		cond, err := e.eval(onward, from, args)
		if err != nil {
			return 0, err
		}
		if cond != 0 {
			return e.eval(pos.Step(domain.North), domain.South, args)
		}
		return e.eval(pos.Step(domain.South), domain.North, args)

	case domain.SymbolNot:
		v, err := e.eval(onward, from, args)
		if err != nil {
			return 0, err
		}
		if v == 0 {
			return 1, nil
		}
		return 0, nil

	case domain.SymbolRandom:
		switch e.chooser.Intn(4) {
		case 0:
			return e.eval(pos.Step(domain.West), domain.East, args)
		case 1:
			return e.eval(pos.Step(domain.East), domain.West, args)
		case 2:
			return e.eval(pos.Step(domain.North), domain.South, args)
		default:
			return e.eval(pos.Step(domain.South), domain.North, args)
		}

	case domain.SymbolGet:
		column, row, err := e.operands(pos, args)
		if err != nil {
			return 0, err
		}
		return e.grid.Get(row, column), nil

	case domain.SymbolPut:
		column, row, err := e.operands(pos, args)
		if err != nil {
			return 0, err
		}
		value, err := e.eval(onward, from, args)
		if err != nil {
			return 0, err
		}
		if err := e.grid.Put(row, column, value); err != nil {
			return 0, err
		}
		return 0, nil

	case domain.SymbolPushArg:
		arg, err := e.eval(pos.Step(domain.South), domain.North, args)
		if err != nil {
			return 0, err
		}
		return e.eval(onward, from, args.Push(arg))

	case domain.SymbolPeekArg:
		return args.Head(), nil

	case domain.SymbolPopArg:
		return e.eval(onward, from, args.Tail())

	case domain.SymbolOutput:
		v, err := e.eval(onward, from, args)
		if err != nil {
			return 0, err
		}
		if err := e.console.WriteSymbol(v); err != nil {
			return 0, err
		}
		return 0, nil

	case domain.SymbolInput:
		v, ok, err := e.console.ReadSymbol()
		if err != nil {
			return 0, err
		}
		if !ok {
			return e.eofValue, nil
		}
		return v, nil

	default:
		return 0, &domain.UnknownSymbolError{Code: code, Pos: pos}
	}
}

// operands evaluates the north neighbour then the south neighbour.
func (e *Evaluator) operands(pos domain.Position, args domain.Arguments) (above, below int, err error) {
	above, err = e.eval(pos.Step(domain.North), domain.South, args)
	if err != nil {
		return 0, 0, err
	}
	below, err = e.eval(pos.Step(domain.South), domain.North, args)
	if err != nil {
		return 0, 0, err
	}
	return above, below, nil
}

// arithmetic applies a binary operator. Division and remainder truncate
// toward zero; callers handle a zero divisor.
func arithmetic(kind domain.SymbolKind, above, below int) int {
	switch kind {
	case domain.SymbolAdd:
		return above + below
	case domain.SymbolSubtract:
		return above - below
	case domain.SymbolMultiply:
		return above * below
	case domain.SymbolDivide:
		return above / below
	case domain.SymbolModulo:
		return above % below
	case domain.SymbolGreater:
		if above > below {
			return 1
		}
		return 0
	default:
		return 0
	}
}
