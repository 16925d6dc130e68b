// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the githeat MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Githeat Calendar Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: list_authors ---
	s.AddTool(mcp.NewTool("list_authors",
		mcp.WithDescription("List the commit authors of a Git repository with their commit totals."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithNumber("min_commits", mcp.Description("Only include authors with at least this many commits. Defaults to 10.")),
	), h.handleListAuthors)

	// --- 2. Tool: get_commit_calendar ---
	s.AddTool(mcp.NewTool("get_commit_calendar",
		mcp.WithDescription("Build a per-year commit calendar grid (weekday by week) for selected authors."),
		mcp.WithString("authors", mcp.Description("Comma-separated author emails to include."), mcp.Required()),
		mcp.WithNumber("year", mcp.Description("Year to build the grid for. Defaults to the earliest year with commits.")),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
	), h.handleGetCommitCalendar)

	return s
}

// StartMCPServer starts the githeat MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg, contract.NewLocalGitClient())
	return server.ServeStdio(s)
}
