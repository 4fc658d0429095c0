package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_ToleratesAnyShape(t *testing.T) {
	// Odd-shaped documents degrade to fewer records, never an error.
	cases := []struct {
		name string
		doc  any
	}{
		{"nil document", nil},
		{"scalar document", "not an object"},
		{"array document", []any{1.0, 2.0}},
		{"missing dataset_results", map[string]any{"model_name": "gpt-4"}},
		{"dataset_results not a map", map[string]any{"dataset_results": []any{}}},
		{"group without results", map[string]any{
			"dataset_results": map[string]any{"mmlu": map[string]any{"count": 3.0}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, Flatten(tc.doc))
		})
	}
}

func TestFlatten_PrefixAndStemStripping(t *testing.T) {
	doc := resultDoc(map[string][]testEntry{
		"datasets/mmlu": {{file: "data/test/abstract_algebra_test.csv", mean: 0.52}},
		"gsm8k":         {{file: "main_test.jsonl", mean: 0.81}},
	})

	records := Flatten(doc)
	require.Len(t, records, 2)

	// Sorted dataset keys: "datasets/mmlu" < "gsm8k"
	assert.Equal(t, "mmlu/abstract_algebra", records[0].Category)
	assert.Equal(t, 0.52, records[0].AccuracyMean)
	assert.Equal(t, "gsm8k/main", records[1].Category)
}

func TestFlatten_SkipsMalformedEntries(t *testing.T) {
	doc := map[string]any{
		"dataset_results": map[string]any{
			"mmlu": map[string]any{
				"results": []any{
					"not a map",
					map[string]any{"accuracy_mean": 0.5},            // no file
					map[string]any{"file": "algebra_test.csv"},      // no accuracy
					map[string]any{"file": 42.0, "accuracy_mean": 0.5},
					map[string]any{"file": "algebra_test.csv", "accuracy_mean": "0.5"},
					map[string]any{"file": "algebra_test.csv", "accuracy_mean": 0.5},
				},
			},
		},
	}

	records := Flatten(doc)
	require.Len(t, records, 1)
	assert.Equal(t, "mmlu/algebra", records[0].Category)
}

func TestFlatten_Deterministic(t *testing.T) {
	doc := resultDoc(map[string][]testEntry{
		"datasets/zeta":  {{file: "z_test.csv", mean: 0.1}},
		"datasets/alpha": {{file: "a_test.csv", mean: 0.2}},
		"datasets/mid":   {{file: "m_test.csv", mean: 0.3}},
	})

	first := Flatten(doc)
	for range 10 {
		assert.Equal(t, first, Flatten(doc))
	}

	// Keys come out sorted regardless of map iteration order.
	require.Len(t, first, 3)
	assert.Equal(t, "alpha/a", first[0].Category)
	assert.Equal(t, "mid/m", first[1].Category)
	assert.Equal(t, "zeta/z", first[2].Category)
}

func TestFlatten_AccuracyStdOptional(t *testing.T) {
	doc := map[string]any{
		"dataset_results": map[string]any{
			"mmlu": map[string]any{
				"results": []any{
					map[string]any{"file": "a_test.csv", "accuracy_mean": 0.5, "accuracy_std": 0.02},
					map[string]any{"file": "b_test.csv", "accuracy_mean": 0.6},
				},
			},
		},
	}

	records := Flatten(doc)
	require.Len(t, records, 2)
	require.NotNil(t, records[0].AccuracyStd)
	assert.Equal(t, 0.02, *records[0].AccuracyStd)
	assert.Nil(t, records[1].AccuracyStd)
}

func TestFlatten_PrefixMustBeExact(t *testing.T) {
	// Only a leading "datasets/" is stripped; anything else stays.
	doc := resultDoc(map[string][]testEntry{
		"my_datasets/mmlu": {{file: "a_test.csv", mean: 0.5}},
	})

	records := Flatten(doc)
	require.Len(t, records, 1)
	assert.Equal(t, "my_datasets/mmlu/a", records[0].Category)
}

func TestExtractStem(t *testing.T) {
	cases := map[string]string{
		"abstract_algebra_test.csv":      "abstract_algebra",
		"data/sub/abstract_algebra.json": "abstract_algebra",
		"main_test.jsonl":                "main",
		"results_test.json":              "results",
		"plain.jsonl":                    "plain",
		"no_suffix":                      "no_suffix",
	}
	for file, want := range cases {
		assert.Equal(t, want, extractStem(file), "file %q", file)
	}
}

func TestSplitCategory(t *testing.T) {
	bench, test := SplitCategory("mmlu/abstract_algebra")
	assert.Equal(t, "mmlu", bench)
	assert.Equal(t, "abstract_algebra", test)

	bench, test = SplitCategory("my_datasets/mmlu/algebra")
	assert.Equal(t, "my_datasets/mmlu", bench)
	assert.Equal(t, "algebra", test)

	bench, test = SplitCategory("bare")
	assert.Equal(t, "", bench)
	assert.Equal(t, "bare", test)
}
