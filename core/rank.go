package core

import (
	"sort"

	"github.com/benchview/benchview/schema"
)

// rankAccumulator collects one source's per-test values within a benchmark.
type rankAccumulator struct {
	source schema.Source
	values map[string]float64
}

// benchAccumulator collects everything seen for one benchmark dataset.
type benchAccumulator struct {
	tests       []string
	seenTests   map[string]struct{}
	rowOrder    []string // sourceIDs in first-contribution order
	rowBySource map[string]*rankAccumulator
}

// RankModels builds per-benchmark ranking rows: one row per source with its
// average accuracy across the tests that source actually has values for
// within the benchmark. A source missing a test is excluded from its own
// average for that test, never treated as zero.
//
// Benchmarks are ordered by name and rows by average descending (stable),
// which is a presentation choice layered on top of the grouping.
func RankModels(sources []schema.Source) []schema.BenchmarkRanking {
	benches := make(map[string]*benchAccumulator)
	var benchOrder []string

	for _, src := range sources {
		for _, rec := range Flatten(src.RawData) {
			bench, test := SplitCategory(rec.Category)

			b := benches[bench]
			if b == nil {
				b = &benchAccumulator{
					seenTests:   make(map[string]struct{}),
					rowBySource: make(map[string]*rankAccumulator),
				}
				benches[bench] = b
				benchOrder = append(benchOrder, bench)
			}
			if _, ok := b.seenTests[test]; !ok {
				b.seenTests[test] = struct{}{}
				b.tests = append(b.tests, test)
			}

			row := b.rowBySource[src.ID]
			if row == nil {
				row = &rankAccumulator{source: src, values: make(map[string]float64)}
				b.rowBySource[src.ID] = row
				b.rowOrder = append(b.rowOrder, src.ID)
			}
			row.values[test] = rec.AccuracyMean
		}
	}

	sort.Strings(benchOrder)

	rankings := make([]schema.BenchmarkRanking, 0, len(benchOrder))
	for _, bench := range benchOrder {
		b := benches[bench]
		ranking := schema.BenchmarkRanking{
			Benchmark: bench,
			Tests:     b.tests,
			Rows:      make([]schema.RankRow, 0, len(b.rowOrder)),
		}

		for _, id := range b.rowOrder {
			row := b.rowBySource[id]
			vals := make([]float64, 0, len(row.values))
			for _, v := range row.values {
				vals = append(vals, v)
			}
			ranking.Rows = append(ranking.Rows, schema.RankRow{
				SourceID: id,
				Label:    row.source.Label(),
				Average:  schema.Mean(vals),
				Values:   row.values,
			})
		}

		sort.SliceStable(ranking.Rows, func(i, j int) bool {
			return ranking.Rows[i].Average > ranking.Rows[j].Average
		})

		rankings = append(rankings, ranking)
	}

	return rankings
}
