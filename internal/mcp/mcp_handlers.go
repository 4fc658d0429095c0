package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/benchview/benchview/core"
	"github.com/benchview/benchview/internal/contract"
	"github.com/benchview/benchview/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// applyCommonArgs copies the request arguments shared by every tool onto a
// cloned config.
func applyCommonArgs(cfg *contract.Config, request mcp.CallToolRequest) {
	if d := request.GetString("results_dir", ""); d != "" {
		cfg.ResultsDir = d
	}
	if f := request.GetString("filter", ""); f != "" {
		cfg.DatasetFilter = f
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
}

func (h *toolHandler) handleListSources(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyCommonArgs(cfg, request)

	sources, err := core.LoadWorkingSet(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(sources, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCategoryStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyCommonArgs(cfg, request)

	if err := contract.RevalidateCategories(cfg, request.GetString("sort", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid aggregation parameters: %v", err)), nil
	}

	sources, err := core.LoadWorkingSet(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading failed: %v", err)), nil
	}

	stats := core.AggregateCategories(sources)
	core.SortCategoryStats(stats, cfg.CategorySort)
	if len(stats) > cfg.ResultLimit {
		stats = stats[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleBuildPivot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyCommonArgs(cfg, request)

	sources, err := core.LoadWorkingSet(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading failed: %v", err)), nil
	}

	table := core.BuildPivot(sources)
	if len(table.Rows) > cfg.ResultLimit {
		table.Rows = table.Rows[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(table, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComputeDeltas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyCommonArgs(cfg, request)
	cfg.Baseline = request.GetString("baseline", "")
	cfg.DeltaThreshold = request.GetFloat("threshold", 0)

	if err := contract.RevalidateDeltas(cfg, request.GetString("sort", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid comparison parameters: %v", err)), nil
	}

	sources, err := core.LoadWorkingSet(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading failed: %v", err)), nil
	}

	baseline, candidates, err := core.SelectBaseline(sources, cfg.Baseline)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	rows := core.ComputeDeltas(baseline, candidates)
	rows = core.FilterByThreshold(rows, cfg.DeltaThreshold)
	core.SortDeltas(rows, cfg.DeltaSort)

	result := schema.DeltaResult{
		BaselineLabel: baseline.Label(),
		Rows:          rows,
		Summary:       core.SummarizeDeltas(rows),
	}
	if len(result.Rows) > cfg.ResultLimit {
		result.Rows = result.Rows[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankModels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyCommonArgs(cfg, request)

	sources, err := core.LoadWorkingSet(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading failed: %v", err)), nil
	}

	rankings := core.RankModels(sources)
	for i := range rankings {
		if len(rankings[i].Rows) > cfg.ResultLimit {
			rankings[i].Rows = rankings[i].Rows[:cfg.ResultLimit]
		}
	}

	jsonData, _ := json.MarshalIndent(rankings, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
