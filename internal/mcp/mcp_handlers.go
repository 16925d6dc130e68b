package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/calebwei/githeat/core"
	"github.com/calebwei/githeat/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleListAuthors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if m := request.GetInt("min_commits", 0); m > 0 {
		cfg.MinCommits = m
	}

	authors, err := core.ListAuthors(ctx, h.client, cfg.RepoPath, cfg.MinCommits)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("author listing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(authors, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCommitCalendar(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	emails := contract.SplitCommaList(request.GetString("authors", ""))
	if len(emails) == 0 {
		return mcp.NewToolResultError("at least one author email is required"), nil
	}

	series, err := core.CollectDayCounts(ctx, h.client, cfg.RepoPath, emails)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("collection failed: %v", err)), nil
	}
	if len(series) == 0 {
		return mcp.NewToolResultError("no commits found for selected authors"), nil
	}

	year := request.GetInt("year", 0)
	if year == 0 {
		year = series.Years()[0]
	}
	grid := core.BuildYearGrid(series, year)

	jsonData, _ := json.MarshalIndent(grid.Snapshot(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
