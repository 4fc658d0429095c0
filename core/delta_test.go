package core

import (
	"testing"

	"github.com/benchview/benchview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDeltas_InnerJoin(t *testing.T) {
	baseline := testSource("base.json", "gpt-4", map[string][]testEntry{
		"datasets/mmlu": {
			{file: "abstract_algebra_test.csv", mean: 0.50},
			{file: "college_biology_test.csv", mean: 0.60},
		},
	})
	candidate := testSource("cand.json", "llama3", map[string][]testEntry{
		"datasets/mmlu": {
			{file: "abstract_algebra_test.csv", mean: 0.70},
			{file: "college_chemistry_test.csv", mean: 0.90}, // not in baseline
		},
	})

	rows := ComputeDeltas(baseline, []schema.Source{candidate})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "mmlu/abstract_algebra", row.Category)
	assert.InDelta(t, 0.50, row.Baseline, 1e-9)
	assert.InDelta(t, 0.70, row.Candidate, 1e-9)
	assert.InDelta(t, 0.20, row.Delta, 1e-9)
	assert.InDelta(t, 0.20, row.AbsDelta, 1e-9)
	assert.Equal(t, candidate.Label(), row.CandidateLabel)
}

func TestComputeDeltas_MultipleCandidates(t *testing.T) {
	baseline := testSource("base.json", "gpt-4", map[string][]testEntry{
		"datasets/mmlu": {{file: "abstract_algebra_test.csv", mean: 0.50}},
	})
	c1 := testSource("c1.json", "llama3", map[string][]testEntry{
		"datasets/mmlu": {{file: "abstract_algebra_test.csv", mean: 0.40}},
	})
	c2 := testSource("c2.json", "mistral", map[string][]testEntry{
		"datasets/mmlu": {{file: "abstract_algebra_test.csv", mean: 0.55}},
	})

	rows := ComputeDeltas(baseline, []schema.Source{c1, c2})
	require.Len(t, rows, 2)
	assert.InDelta(t, -0.10, rows[0].Delta, 1e-9)
	assert.InDelta(t, 0.05, rows[1].Delta, 1e-9)
}

func TestFilterByThreshold_InclusiveBoundary(t *testing.T) {
	rows := []schema.DeltaRow{
		{Category: "a", Delta: 0.10, AbsDelta: 0.10},
		{Category: "b", Delta: -0.05, AbsDelta: 0.05},
		{Category: "c", Delta: 0.2, AbsDelta: 0.2},
	}

	filtered := FilterByThreshold(rows, 0.10)
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].Category)
	assert.Equal(t, "c", filtered[1].Category)

	// Zero threshold keeps everything.
	assert.Len(t, FilterByThreshold(rows, 0), 3)
}

func TestSortDeltas(t *testing.T) {
	build := func() []schema.DeltaRow {
		return []schema.DeltaRow{
			{Category: "b", Delta: 0.1, AbsDelta: 0.1},
			{Category: "a", Delta: -0.3, AbsDelta: 0.3},
			{Category: "c", Delta: 0.2, AbsDelta: 0.2},
		}
	}

	t.Run("abs descending default", func(t *testing.T) {
		rows := build()
		SortDeltas(rows, schema.AbsDescSort)
		assert.Equal(t, "a", rows[0].Category)
		assert.Equal(t, "c", rows[1].Category)
		assert.Equal(t, "b", rows[2].Category)
	})

	t.Run("delta descending", func(t *testing.T) {
		rows := build()
		SortDeltas(rows, schema.DeltaDescSort)
		assert.Equal(t, "c", rows[0].Category)
		assert.Equal(t, "a", rows[2].Category)
	})

	t.Run("delta ascending", func(t *testing.T) {
		rows := build()
		SortDeltas(rows, schema.DeltaAscSort)
		assert.Equal(t, "a", rows[0].Category)
		assert.Equal(t, "c", rows[2].Category)
	})

	t.Run("category name", func(t *testing.T) {
		rows := build()
		SortDeltas(rows, schema.CategorySort)
		assert.Equal(t, "a", rows[0].Category)
		assert.Equal(t, "b", rows[1].Category)
		assert.Equal(t, "c", rows[2].Category)
	})

	t.Run("stable on ties", func(t *testing.T) {
		rows := []schema.DeltaRow{
			{Category: "first", Delta: 0.1, AbsDelta: 0.1, CandidateLabel: "one"},
			{Category: "second", Delta: -0.1, AbsDelta: 0.1, CandidateLabel: "two"},
		}
		SortDeltas(rows, schema.AbsDescSort)
		assert.Equal(t, "first", rows[0].Category)
		assert.Equal(t, "second", rows[1].Category)
	})
}

func TestSummarizeDeltas(t *testing.T) {
	rows := []schema.DeltaRow{
		{Delta: 0.2},
		{Delta: -0.05},
		{Delta: 0.0},
		{Delta: 0.1},
	}

	summary := SummarizeDeltas(rows)
	assert.InDelta(t, 0.25, summary.NetDelta, 1e-9)
	assert.Equal(t, 2, summary.Improved)
	assert.Equal(t, 1, summary.Regressed)
	assert.Equal(t, 1, summary.Unchanged)

	empty := SummarizeDeltas(nil)
	assert.Zero(t, empty.NetDelta)
	assert.Zero(t, empty.Improved)
}
