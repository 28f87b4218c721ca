package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/flobnar/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for flobnar resources.
	uriScheme = "flobnar://"

	// recentRuns is how many runs the runs resource lists.
	recentRuns = 50
)

// runInfo is the JSON shape of a recorded run.
type runInfo struct {
	ID        string `json:"id"`
	Program   string `json:"program"`
	Digest    string `json:"digest"`
	Value     int    `json:"value"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
	Steps     int    `json:"steps"`
	StartedAt string `json:"started_at"`
	Duration  string `json:"duration"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recently recorded program runs, newest first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "A single recorded run including its output",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

// handleRunsResource lists recent runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.History.List(ctx, recentRuns)
	if errors.Is(err, domain.ErrHistoryUnavailable) {
		return jsonResult(req.Params.URI, []runInfo{})
	}
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	infos := make([]runInfo, len(records))
	for i := range records {
		infos[i] = toRunInfo(&records[i])
		infos[i].Output = ""
	}
	return jsonResult(req.Params.URI, infos)
}

// handleRunResource returns one run.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// flobnar://runs/{runId}
	id := extractRunID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.History.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrHistoryUnavailable) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return jsonResult(req.Params.URI, toRunInfo(record))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func toRunInfo(r *domain.RunRecord) runInfo {
	return runInfo{
		ID:        r.ID,
		Program:   r.Program,
		Digest:    r.Digest,
		Value:     r.Value,
		Output:    r.Output,
		Error:     r.Error,
		Steps:     r.Steps,
		StartedAt: r.StartedAt.UTC().Format(time.RFC3339Nano),
		Duration:  r.Duration.String(),
	}
}

// extractRunID extracts the run ID from a URI like flobnar://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
