package schema

// CategoryStats holds the per-category, per-source statistics produced by
// the category aggregator.
//
// The aggregation is deliberately two-level: each source is first reduced
// to its own average/min/max within the category, and the overall figures
// are then computed across those per-source values. A source contributing
// many tests to a category therefore carries the same weight as a source
// contributing one.
type CategoryStats struct {
	Name      SubjectCategory `json:"name"`
	TestCount int             `json:"test_count"` // Total contributing records across all sources

	PerSourceAvg map[string]float64 `json:"per_source_avg"` // sourceID -> mean accuracy within the category
	PerSourceMin map[string]float64 `json:"per_source_min"`
	PerSourceMax map[string]float64 `json:"per_source_max"`

	OverallAvg float64 `json:"overall_avg"` // Mean of PerSourceAvg values
	OverallMin float64 `json:"overall_min"` // Min of PerSourceMin values
	OverallMax float64 `json:"overall_max"` // Max of PerSourceMax values

	// Variance is the population variance of PerSourceAvg values. It
	// measures cross-model disagreement on the category, not
	// test-to-test spread.
	Variance float64 `json:"variance"`
}
