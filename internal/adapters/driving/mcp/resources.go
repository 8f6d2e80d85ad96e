package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for cvsync resources.
	uriScheme = "cvsync://"

	// historyResourceLimit caps the runs served by the history resource.
	historyResourceLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cv",
		Name:        "cv",
		Description: "Records currently extracted from the LaTeX sources",
		MIMEType:    "application/json",
	}, s.handleCVResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent sync runs, most recent first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleCVResource returns the extracted CV as JSON.
func (s *Server) handleCVResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	cv, err := s.ports.Sync.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extracting cv: %w", err)
	}
	return jsonResource(req.Params.URI, toExtractOutput(cv))
}

// handleHistoryResource returns recent runs. Without a history service it
// serves an empty list.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResource(req.Params.URI, []RunOutput{})
	}

	reports, err := s.ports.History.Recent(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	runs := make([]RunOutput, len(reports))
	for i := range reports {
		runs[i] = toRunOutput(&reports[i])
	}
	return jsonResource(req.Params.URI, runs)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
