package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benchview/benchview/internal/contract"
	"github.com/benchview/benchview/internal/loader"
	"github.com/benchview/benchview/internal/outwriter"
	"github.com/benchview/benchview/schema"
)

// ExecutorFunc defines the function signature for executing different
// explorer views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// LoadWorkingSet loads all sources for the configured results directory,
// surfacing per-file warnings without aborting. An empty working set is an
// error at this level: every view needs at least one source.
func LoadWorkingSet(ctx context.Context, cfg *contract.Config) ([]schema.Source, error) {
	sources, warnings := loader.New().LoadSources(ctx, cfg)
	for _, w := range warnings {
		contract.LogWarn("loading results", w)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no result documents found under %s", cfg.ResultsDir)
	}
	return sources, nil
}

// SelectBaseline splits the working set into the baseline matching the key
// and the remaining candidates. The key matches a source ID first, then a
// model name; with several model-name matches the first loaded wins.
func SelectBaseline(sources []schema.Source, key string) (schema.Source, []schema.Source, error) {
	idx := -1
	for i, src := range sources {
		if src.ID == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i, src := range sources {
			if src.ModelName == key {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return schema.Source{}, nil, fmt.Errorf("baseline %q matches no loaded source", key)
	}

	candidates := make([]schema.Source, 0, len(sources)-1)
	candidates = append(candidates, sources[:idx]...)
	candidates = append(candidates, sources[idx+1:]...)
	return sources[idx], candidates, nil
}

// ExecuteCategories runs the subject-category aggregation view.
// It serves as the main entry point for the 'categories' command.
func ExecuteCategories(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	sources, err := LoadWorkingSet(ctx, cfg)
	if err != nil {
		return err
	}

	stats := AggregateCategories(sources)
	SortCategoryStats(stats, cfg.CategorySort)
	if len(stats) > cfg.ResultLimit {
		stats = stats[:cfg.ResultLimit]
	}

	return outwriter.WriteCategoryStats(stats, sources, cfg, time.Since(start))
}

// ExecutePivot runs the category-by-source pivot view.
func ExecutePivot(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	sources, err := LoadWorkingSet(ctx, cfg)
	if err != nil {
		return err
	}

	table := BuildPivot(sources)
	if len(table.Rows) > cfg.ResultLimit {
		table.Rows = table.Rows[:cfg.ResultLimit]
	}

	return outwriter.WritePivot(table, cfg, time.Since(start))
}

// ExecuteDeltas runs the baseline-vs-candidates delta view.
func ExecuteDeltas(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	sources, err := LoadWorkingSet(ctx, cfg)
	if err != nil {
		return err
	}
	if len(sources) < 2 {
		return errors.New("delta comparison needs at least two sources")
	}

	baseline, candidates, err := SelectBaseline(sources, cfg.Baseline)
	if err != nil {
		return err
	}

	rows := ComputeDeltas(baseline, candidates)
	rows = FilterByThreshold(rows, cfg.DeltaThreshold)
	SortDeltas(rows, cfg.DeltaSort)

	result := schema.DeltaResult{
		BaselineLabel: baseline.Label(),
		Rows:          rows,
		Summary:       SummarizeDeltas(rows),
	}
	if len(result.Rows) > cfg.ResultLimit {
		result.Rows = result.Rows[:cfg.ResultLimit]
	}

	return outwriter.WriteDeltas(result, cfg, time.Since(start))
}

// ExecuteRank runs the per-benchmark model ranking view.
func ExecuteRank(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	sources, err := LoadWorkingSet(ctx, cfg)
	if err != nil {
		return err
	}

	rankings := RankModels(sources)
	for i := range rankings {
		if len(rankings[i].Rows) > cfg.ResultLimit {
			rankings[i].Rows = rankings[i].Rows[:cfg.ResultLimit]
		}
	}

	return outwriter.WriteRankings(rankings, cfg, time.Since(start))
}

// ExecuteSources enumerates the loaded working set without transforming it.
func ExecuteSources(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	sources, err := LoadWorkingSet(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteSources(sources, cfg, time.Since(start))
}
