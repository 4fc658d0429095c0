package core

import (
	"testing"

	"github.com/benchview/benchview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankModels_GroupsByBenchmark(t *testing.T) {
	a := testSource("a.json", "model-a", map[string][]testEntry{
		"datasets/mmlu": {
			{file: "abstract_algebra_test.csv", mean: 0.4},
			{file: "college_biology_test.csv", mean: 0.6},
		},
		"gsm8k": {{file: "main_test.jsonl", mean: 0.8}},
	})
	b := testSource("b.json", "model-b", map[string][]testEntry{
		"datasets/mmlu": {
			{file: "abstract_algebra_test.csv", mean: 0.9},
			{file: "college_biology_test.csv", mean: 0.7},
		},
	})

	rankings := RankModels([]schema.Source{a, b})
	require.Len(t, rankings, 2)

	// Benchmarks come out ordered by name.
	assert.Equal(t, "gsm8k", rankings[0].Benchmark)
	assert.Equal(t, "mmlu", rankings[1].Benchmark)

	// Only one source ran gsm8k.
	require.Len(t, rankings[0].Rows, 1)
	assert.Equal(t, "a.json", rankings[0].Rows[0].SourceID)
	assert.InDelta(t, 0.8, rankings[0].Rows[0].Average, 1e-9)

	// Within mmlu, model-b averages 0.8 and model-a 0.5.
	mmlu := rankings[1]
	require.Len(t, mmlu.Rows, 2)
	assert.Equal(t, "b.json", mmlu.Rows[0].SourceID)
	assert.InDelta(t, 0.8, mmlu.Rows[0].Average, 1e-9)
	assert.Equal(t, "a.json", mmlu.Rows[1].SourceID)
	assert.InDelta(t, 0.5, mmlu.Rows[1].Average, 1e-9)
}

func TestRankModels_AverageOnlyOverOwnTests(t *testing.T) {
	// Source b skips one test; its average covers only what it ran.
	a := testSource("a.json", "model-a", map[string][]testEntry{
		"datasets/mmlu": {
			{file: "abstract_algebra_test.csv", mean: 0.2},
			{file: "college_biology_test.csv", mean: 0.4},
		},
	})
	b := testSource("b.json", "model-b", map[string][]testEntry{
		"datasets/mmlu": {{file: "college_biology_test.csv", mean: 0.9}},
	})

	rankings := RankModels([]schema.Source{a, b})
	require.Len(t, rankings, 1)

	mmlu := rankings[0]
	assert.Equal(t, []string{"abstract_algebra", "college_biology"}, mmlu.Tests)

	require.Len(t, mmlu.Rows, 2)
	assert.Equal(t, "b.json", mmlu.Rows[0].SourceID)
	assert.InDelta(t, 0.9, mmlu.Rows[0].Average, 1e-9)

	// The skipped test does not appear in b's values map.
	_, ok := mmlu.Rows[0].Values["abstract_algebra"]
	assert.False(t, ok)

	assert.Equal(t, "a.json", mmlu.Rows[1].SourceID)
	assert.InDelta(t, 0.3, mmlu.Rows[1].Average, 1e-9)
}

func TestRankModels_Empty(t *testing.T) {
	assert.Empty(t, RankModels(nil))
	assert.Empty(t, RankModels([]schema.Source{testSource("a.json", "m", nil)}))
}
