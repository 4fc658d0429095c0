package schema

// RankRow is one source's standing within a benchmark: its average accuracy
// across the tests it actually has values for, plus the per-test values.
// Tests the source is missing are excluded from its average, not zeroed.
type RankRow struct {
	SourceID string             `json:"source_id"`
	Label    string             `json:"label"`
	Average  float64            `json:"average"`
	Values   map[string]float64 `json:"values"` // test name -> accuracy; missing tests absent
}

// BenchmarkRanking groups ranking rows by underlying benchmark dataset.
// Tests is the ordered union of test names seen across all sources in the
// benchmark.
type BenchmarkRanking struct {
	Benchmark string    `json:"benchmark"`
	Tests     []string  `json:"tests"`
	Rows      []RankRow `json:"rows"`
}
