package core

import (
	"testing"

	"github.com/benchview/benchview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPivot_RowAndColumnOrder(t *testing.T) {
	a := testSource("a.json", "model-a", map[string][]testEntry{
		"datasets/mmlu": {
			{file: "abstract_algebra_test.csv", mean: 0.5},
			{file: "college_biology_test.csv", mean: 0.6},
		},
	})
	b := testSource("b.json", "model-b", map[string][]testEntry{
		"datasets/mmlu": {
			{file: "college_biology_test.csv", mean: 0.7},
			{file: "college_chemistry_test.csv", mean: 0.8},
		},
	})

	table := BuildPivot([]schema.Source{a, b})

	// Columns follow source order.
	require.Len(t, table.Columns, 2)
	assert.Equal(t, a.Label(), table.Columns[0])
	assert.Equal(t, b.Label(), table.Columns[1])

	// Rows follow first appearance across sources.
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "mmlu/abstract_algebra", table.Rows[0].Category)
	assert.Equal(t, "mmlu/college_biology", table.Rows[1].Category)
	assert.Equal(t, "mmlu/college_chemistry", table.Rows[2].Category)
}

func TestBuildPivot_MissingCells(t *testing.T) {
	a := testSource("a.json", "model-a", map[string][]testEntry{
		"datasets/mmlu": {{file: "abstract_algebra_test.csv", mean: 0.5}},
	})
	b := testSource("b.json", "model-b", map[string][]testEntry{
		"datasets/mmlu": {{file: "college_biology_test.csv", mean: 0.7}},
	})

	table := BuildPivot([]schema.Source{a, b})

	v, ok := table.Cell("mmlu/abstract_algebra", a.Label())
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9)

	_, ok = table.Cell("mmlu/abstract_algebra", b.Label())
	assert.False(t, ok, "cell for a source without the category must stay absent")

	_, ok = table.Cell("mmlu/college_biology", a.Label())
	assert.False(t, ok)
}

func TestBuildPivot_LabelCollisionLastWriteWins(t *testing.T) {
	// Two distinct sources with identical metadata render the same label;
	// the later source's value overwrites the earlier cell.
	a := testSource("runs/a.json", "gpt-4", map[string][]testEntry{
		"datasets/mmlu": {{file: "abstract_algebra_test.csv", mean: 0.5}},
	})
	b := testSource("runs/b.json", "gpt-4", map[string][]testEntry{
		"datasets/mmlu": {{file: "abstract_algebra_test.csv", mean: 0.9}},
	})
	require.Equal(t, a.Label(), b.Label())

	table := BuildPivot([]schema.Source{a, b})
	require.Len(t, table.Columns, 1)

	v, ok := table.Cell("mmlu/abstract_algebra", a.Label())
	require.True(t, ok)
	assert.InDelta(t, 0.9, v, 1e-9)
}

func TestBuildPivot_Empty(t *testing.T) {
	table := BuildPivot(nil)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}
