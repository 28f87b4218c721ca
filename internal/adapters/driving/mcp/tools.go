package mcp

import (
	"bytes"
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
)

// programName is recorded in run history for programs submitted over MCP.
const programName = "<mcp>"

// maxDepth bounds every evaluation the server runs, including requests
// and settings that ask for unlimited depth.
const maxDepth = domain.DefaultMaxDepth

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	Program  string `json:"program" jsonschema:"the Flobnar program text, containing exactly one @"`
	Input    string `json:"input,omitempty" jsonschema:"characters read by ~, in order"`
	MaxDepth *int   `json:"max_depth,omitempty" jsonschema:"recursion limit for this run, at most 1000000; 0 for the maximum"`
	Seed     int64  `json:"seed,omitempty" jsonschema:"seed for the ? symbol, omitted for the configured seed"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	Value    int    `json:"value"`
	Output   string `json:"output"`
	Steps    int    `json:"steps"`
	Depth    int    `json:"depth"`
	RecordID string `json:"record_id,omitempty"`
}

// CheckInput is the input schema for the check tool.
type CheckInput struct {
	Program string `json:"program" jsonschema:"the Flobnar program text to validate"`
}

// CheckOutput is the output schema for the check tool.
type CheckOutput struct {
	Anchor   PositionOutput `json:"anchor"`
	Min      PositionOutput `json:"min"`
	Max      PositionOutput `json:"max"`
	NonBlank int            `json:"non_blank"`
	Lines    []string       `json:"lines"`
}

// PositionOutput is a grid coordinate.
type PositionOutput struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Evaluate a Flobnar program and return its result value and output",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check",
		Description: "Load a Flobnar program without evaluating it and describe its layout",
	}, s.handleCheck)
}

// handleEvaluate handles the evaluate tool invocation.
func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	req := domain.RunRequest{
		Name:     programName,
		Source:   []byte(input.Program),
		MaxDepth: input.MaxDepth,
	}
	if input.Seed != 0 {
		seed := input.Seed
		req.Seed = &seed
	}

	var out bytes.Buffer
	console := s.ports.NewConsole(strings.NewReader(input.Input), &out)

	result, err := s.ports.Interpreter.Run(ctx, req, driving.RunOptions{
		Console:    console,
		DepthLimit: maxDepth,
	})
	if err != nil {
		return nil, EvaluateOutput{}, err
	}

	return nil, EvaluateOutput{
		Value:    result.Value,
		Output:   out.String(),
		Steps:    result.Steps,
		Depth:    result.MaxDepth,
		RecordID: result.RecordID,
	}, nil
}

// handleCheck handles the check tool invocation.
func (s *Server) handleCheck(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckInput,
) (*mcp.CallToolResult, CheckOutput, error) {
	result, err := s.ports.Interpreter.Check(ctx, []byte(input.Program))
	if err != nil {
		return nil, CheckOutput{}, err
	}

	lines := result.Lines
	if lines == nil {
		lines = []string{}
	}
	return nil, CheckOutput{
		Anchor:   toPosition(result.Anchor),
		Min:      toPosition(result.Min),
		Max:      toPosition(result.Max),
		NonBlank: result.NonBlank,
		Lines:    lines,
	}, nil
}

func toPosition(p domain.Position) PositionOutput {
	return PositionOutput{Row: p.Row, Column: p.Column}
}
