// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/benchview/benchview/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Benchview MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Benchmark Explorer Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: list_sources ---
	s.AddTool(mcp.NewTool("list_sources",
		mcp.WithDescription("List every evaluation result source found under the results directory."),
		mcp.WithString("results_dir", mcp.Description("Path to the results directory (defaults to the configured directory).")),
		mcp.WithString("filter", mcp.Description("Dataset-key prefix filter (e.g. 'mmlu').")),
	), h.handleListSources)

	// --- 2. Tool: category_stats ---
	s.AddTool(mcp.NewTool("category_stats",
		mcp.WithDescription("Aggregate accuracy scores into subject categories across all sources."),
		mcp.WithString("results_dir", mcp.Description("Path to the results directory.")),
		mcp.WithString("filter", mcp.Description("Dataset-key prefix filter.")),
		mcp.WithString("sort", mcp.Description("Category sort mode (avg, variance, name, tests). Defaults to 'avg'."), mcp.Enum("avg", "variance", "name", "tests")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of categories returned.")),
	), h.handleCategoryStats)

	// --- 3. Tool: build_pivot ---
	s.AddTool(mcp.NewTool("build_pivot",
		mcp.WithDescription("Build a category-by-source pivot table of mean accuracies."),
		mcp.WithString("results_dir", mcp.Description("Path to the results directory.")),
		mcp.WithString("filter", mcp.Description("Dataset-key prefix filter.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of pivot rows returned.")),
	), h.handleBuildPivot)

	// --- 4. Tool: compute_deltas ---
	s.AddTool(mcp.NewTool("compute_deltas",
		mcp.WithDescription("Compare every candidate source against a baseline and compute per-category accuracy deltas."),
		mcp.WithString("baseline", mcp.Description("Source ID or model name to use as the baseline."), mcp.Required()),
		mcp.WithNumber("threshold", mcp.Description("Minimum absolute delta to keep (inclusive).")),
		mcp.WithString("sort", mcp.Description("Delta sort mode (abs-desc, delta-desc, delta-asc, category)."), mcp.Enum("abs-desc", "delta-desc", "delta-asc", "category")),
		mcp.WithString("results_dir", mcp.Description("Path to the results directory.")),
		mcp.WithString("filter", mcp.Description("Dataset-key prefix filter.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of delta rows returned.")),
	), h.handleComputeDeltas)

	// --- 5. Tool: rank_models ---
	s.AddTool(mcp.NewTool("rank_models",
		mcp.WithDescription("Rank models per benchmark family by their average accuracy."),
		mcp.WithString("results_dir", mcp.Description("Path to the results directory.")),
		mcp.WithString("filter", mcp.Description("Dataset-key prefix filter.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked rows per benchmark.")),
	), h.handleRankModels)

	return s
}

// StartMCPServer starts the Benchview MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
