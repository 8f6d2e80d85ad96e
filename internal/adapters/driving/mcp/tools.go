package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driving"
)

// defaultHistoryLimit is used when sync_history is called without a limit.
const defaultHistoryLimit = 10

// SyncInput is the input schema for the sync_cv tool.
type SyncInput struct {
	DryRun bool `json:"dry_run,omitempty" jsonschema:"apply every update in memory without writing the page or taking a backup"`
}

// RunOutput summarises one sync run. Times are RFC 3339 strings.
type RunOutput struct {
	ID             string   `json:"id"`
	StartedAt      string   `json:"started_at"`
	DurationMS     int64    `json:"duration_ms"`
	DryRun         bool     `json:"dry_run"`
	Backup         string   `json:"backup,omitempty"`
	Success        bool     `json:"success"`
	Error          string   `json:"error,omitempty"`
	Experience     int      `json:"experience"`
	Education      int      `json:"education"`
	Skills         int      `json:"skills"`
	Credentials    int      `json:"credentials"`
	Interests      int      `json:"interests"`
	Dropped        int      `json:"dropped"`
	SkippedRegions []string `json:"skipped_regions,omitempty"`
}

// RevertInput is the input schema for the revert_cv tool.
type RevertInput struct{}

// RevertOutput is the output schema for the revert_cv tool.
type RevertOutput struct {
	Backup string `json:"backup"`
}

// ExtractInput is the input schema for the extract_cv tool.
type ExtractInput struct{}

// ExtractOutput is the output schema for the extract_cv tool.
type ExtractOutput struct {
	Name        string        `json:"name"`
	Position    string        `json:"position"`
	Quote       string        `json:"quote,omitempty"`
	Experience  []EntryOutput `json:"experience"`
	Education   []EntryOutput `json:"education"`
	Skills      []SkillOutput `json:"skills"`
	Credentials []string      `json:"credentials"`
	Interests   []string      `json:"interests"`
}

// EntryOutput is an experience or education entry.
type EntryOutput struct {
	Title    string   `json:"title"`
	Org      string   `json:"org"`
	Location string   `json:"location,omitempty"`
	Dates    string   `json:"dates"`
	Items    []string `json:"items,omitempty"`
}

// SkillOutput is a category/value pair.
type SkillOutput struct {
	Category string `json:"category"`
	Skills   string `json:"skills"`
}

// HistoryInput is the input schema for the sync_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of runs to return (default 10)"`
}

// HistoryOutput is the output schema for the sync_history tool.
type HistoryOutput struct {
	Runs    []RunOutput `json:"runs"`
	Count   int         `json:"count"`
	Backups []string    `json:"backups"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sync_cv",
		Description: "Regenerate the CV web page from the LaTeX sources",
	}, s.handleSync)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "revert_cv",
		Description: "Restore the CV web page from its most recent backup",
	}, s.handleRevert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_cv",
		Description: "Show the records extracted from the LaTeX sources without touching the page",
	}, s.handleExtract)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "sync_history",
			Description: "List recent sync runs, most recent first, and the backups available for revert",
		}, s.handleHistory)
	}
}

// handleSync handles the sync_cv tool invocation. A failed run is returned
// as an error so the assistant sees it as a tool failure.
func (s *Server) handleSync(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SyncInput,
) (*mcp.CallToolResult, RunOutput, error) {
	var (
		report *domain.SyncReport
		err    error
	)
	s.exclusive(func() {
		report, err = s.ports.Sync.Sync(ctx, driving.SyncOptions{DryRun: input.DryRun})
	})
	if err != nil {
		return nil, RunOutput{}, err
	}
	return nil, toRunOutput(report), nil
}

// handleRevert handles the revert_cv tool invocation.
func (s *Server) handleRevert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ RevertInput,
) (*mcp.CallToolResult, RevertOutput, error) {
	var (
		name string
		err  error
	)
	s.exclusive(func() {
		name, err = s.ports.Sync.Revert(ctx)
	})
	if err != nil {
		return nil, RevertOutput{}, err
	}
	return nil, RevertOutput{Backup: name}, nil
}

// handleExtract handles the extract_cv tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	cv, err := s.ports.Sync.Extract(ctx)
	if err != nil {
		return nil, ExtractOutput{}, err
	}
	return nil, toExtractOutput(cv), nil
}

// handleHistory handles the sync_history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	reports, err := s.ports.History.Recent(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	backups, err := s.ports.History.Backups(ctx)
	if err != nil {
		return nil, HistoryOutput{}, err
	}
	if backups == nil {
		backups = []string{}
	}

	output := HistoryOutput{
		Runs:    make([]RunOutput, len(reports)),
		Count:   len(reports),
		Backups: backups,
	}
	for i := range reports {
		output.Runs[i] = toRunOutput(&reports[i])
	}
	return nil, output, nil
}

func toRunOutput(r *domain.SyncReport) RunOutput {
	out := RunOutput{
		ID:          r.ID,
		StartedAt:   r.StartedAt.Format(time.RFC3339),
		DurationMS:  r.Duration().Milliseconds(),
		DryRun:      r.DryRun,
		Backup:      r.Backup,
		Success:     r.Success,
		Error:       r.Error,
		Experience:  r.Counts.Experience,
		Education:   r.Counts.Education,
		Skills:      r.Counts.Skills,
		Credentials: r.Counts.Credentials,
		Interests:   r.Counts.Interests,
		Dropped:     r.Dropped.Total(),
	}
	for _, region := range r.SkippedRegions {
		out.SkippedRegions = append(out.SkippedRegions, region.String())
	}
	return out
}

func toExtractOutput(cv *domain.CV) ExtractOutput {
	out := ExtractOutput{
		Name:        cv.Personal.FullName(),
		Position:    cv.Personal.Position,
		Quote:       cv.Personal.Quote,
		Experience:  toEntryOutputs(cv.Experience),
		Education:   toEntryOutputs(cv.Education),
		Skills:      make([]SkillOutput, len(cv.Skills)),
		Credentials: make([]string, len(cv.Credentials)),
		Interests:   cv.Interests,
	}
	for i, sk := range cv.Skills {
		out.Skills[i] = SkillOutput{Category: sk.Category, Skills: sk.Skills}
	}
	for i, c := range cv.Credentials {
		out.Credentials[i] = c.Line()
	}
	if out.Interests == nil {
		out.Interests = []string{}
	}
	return out
}

func toEntryOutputs(entries []domain.Entry) []EntryOutput {
	out := make([]EntryOutput, len(entries))
	for i, e := range entries {
		out[i] = EntryOutput{
			Title:    e.Title,
			Org:      e.Org,
			Location: e.Location,
			Dates:    e.Dates,
			Items:    e.Items,
		}
	}
	return out
}
