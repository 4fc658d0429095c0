// Package core has the pure transformation pipeline: flattening result
// documents, subject classification, category aggregation, pivoting,
// deltas and ranking. Nothing in this package performs I/O or holds state;
// every function is a deterministic transform over its arguments.
package core

import (
	"sort"
	"strings"

	"github.com/benchview/benchview/schema"
)

// datasetPrefix is stripped from dataset keys when present as an exact
// leading prefix.
const datasetPrefix = "datasets/"

// stemSuffixes are stripped from the file base name, first match only,
// in this priority order.
var stemSuffixes = []string{"_test.csv", "_test.json", "_test.jsonl", ".json", ".jsonl"}

// Flatten extracts flat per-test records from an arbitrarily-shaped result
// document. Any structurally unexpected input yields fewer or zero records,
// never an error: a non-object document or a missing dataset-results map
// returns an empty slice, and malformed entries are skipped without
// aborting the rest of the document.
//
// Accuracy values pass through unclamped; callers must tolerate
// out-of-range numbers.
func Flatten(doc any) []schema.FlatRecord {
	records := make([]schema.FlatRecord, 0)

	root, ok := doc.(map[string]any)
	if !ok {
		return records
	}
	datasets, ok := root["dataset_results"].(map[string]any)
	if !ok {
		return records
	}

	// Map iteration order is randomized, so walk keys sorted. Flatten must
	// return identical output for identical input because the pivot builder
	// keys row order off first appearance.
	keys := make([]string, 0, len(datasets))
	for k := range datasets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		dataset := strings.TrimPrefix(key, datasetPrefix)

		group, ok := datasets[key].(map[string]any)
		if !ok {
			continue
		}
		results, ok := group["results"].([]any)
		if !ok {
			continue
		}

		for _, item := range results {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}

			// An entry contributes a record only if its file field is a
			// string and its accuracy_mean field is a number.
			file, ok := entry["file"].(string)
			if !ok {
				continue
			}
			mean, ok := entry["accuracy_mean"].(float64)
			if !ok {
				continue
			}

			rec := schema.FlatRecord{
				Category:     dataset + "/" + extractStem(file),
				File:         file,
				AccuracyMean: mean,
			}
			if std, ok := entry["accuracy_std"].(float64); ok {
				rec.AccuracyStd = &std
			}
			records = append(records, rec)
		}
	}

	return records
}

// extractStem strips any directory path and the first matching result-file
// suffix from a test file name, e.g. "sub/abstract_algebra_test.csv"
// becomes "abstract_algebra".
func extractStem(file string) string {
	base := file
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	for _, suffix := range stemSuffixes {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return base
}

// SplitCategory splits a flat-record category into its benchmark dataset
// and test name, e.g. "mmlu/abstract_algebra" -> ("mmlu", "abstract_algebra").
// The test stem never contains a slash, so the last separator wins.
func SplitCategory(category string) (benchmark, test string) {
	if i := strings.LastIndex(category, "/"); i >= 0 {
		return category[:i], category[i+1:]
	}
	return "", category
}
