// Package schema has the data model and shared helpers for all parts of benchview.
package schema

// FlatRecord is one (test-file, accuracy) observation extracted from a
// result document. Records are created once per flatten pass, are immutable,
// and are never merged across sources.
type FlatRecord struct {
	Category     string   `json:"category"`                // "{dataset}/{stem}", e.g. "mmlu/abstract_algebra"
	File         string   `json:"file"`                    // Original file path from the result entry
	AccuracyMean float64  `json:"accuracy_mean"`           // Mean accuracy, conventionally in [0,1]; passed through unclamped
	AccuracyStd  *float64 `json:"accuracy_std,omitempty"` // Standard deviation across runs, when reported
}

// Source is one loaded benchmark-result document plus its model identity
// metadata. RawData holds the parsed document tree; its shape is expected
// to, but not guaranteed to, match the result-document schema.
type Source struct {
	ID         string `json:"id"`         // Unique identifier: result file path, plus "#N" line suffix for JSONL
	ModelName  string `json:"model_name"` // Model that produced the results
	Variance   string `json:"variance"`   // "default" or a named ablation
	Timestamp  string `json:"timestamp"`  // Run timestamp as reported, or file mtime fallback
	IsOfficial bool   `json:"official"`   // Loaded from a pre-configured official location
	RawData    any    `json:"-"`
}
