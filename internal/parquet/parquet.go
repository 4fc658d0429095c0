// Package parquet provides data structures and functions for exporting
// benchmark explorer views to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/benchview/benchview/schema"
	"github.com/parquet-go/parquet-go"
)

// CategoryRecord is the long-format row for category aggregation exports.
// Each record pairs a subject category with one contributing source.
type CategoryRecord struct {
	// Category is the subject category name
	Category string `parquet:"category,snappy"`

	// SourceLabel identifies the contributing result source
	SourceLabel string `parquet:"source_label,snappy"`

	// Average is the source's mean accuracy within the category
	Average float64 `parquet:"average,snappy"`

	// Minimum is the source's lowest accuracy within the category
	Minimum float64 `parquet:"minimum,snappy"`

	// Maximum is the source's highest accuracy within the category
	Maximum float64 `parquet:"maximum,snappy"`

	// OverallAvg is the cross-source mean of per-source averages
	OverallAvg float64 `parquet:"overall_avg,snappy"`

	// Variance is the population variance of per-source averages
	Variance float64 `parquet:"variance,snappy"`

	// TestCount is the number of records contributing to the category
	TestCount int32 `parquet:"test_count,snappy"`
}

// PivotCellRecord is the long-format row for pivot table exports.
// A missing category-by-source cell produces no record.
type PivotCellRecord struct {
	// Category is the pivot row key
	Category string `parquet:"category,snappy"`

	// SourceLabel is the pivot column key
	SourceLabel string `parquet:"source_label,snappy"`

	// Accuracy is the mean accuracy for the cell
	Accuracy float64 `parquet:"accuracy,snappy"`
}

// DeltaRecord is the row format for baseline-vs-candidate exports.
type DeltaRecord struct {
	// Category is the compared category key
	Category string `parquet:"category,snappy"`

	// BaselineLabel identifies the baseline source
	BaselineLabel string `parquet:"baseline_label,snappy"`

	// CandidateLabel identifies the candidate source
	CandidateLabel string `parquet:"candidate_label,snappy"`

	// Baseline is the baseline accuracy
	Baseline float64 `parquet:"baseline,snappy"`

	// Candidate is the candidate accuracy
	Candidate float64 `parquet:"candidate,snappy"`

	// Delta is candidate minus baseline
	Delta float64 `parquet:"delta,snappy"`
}

// RankRecord is the long-format row for per-benchmark ranking exports.
type RankRecord struct {
	// Benchmark is the benchmark family name
	Benchmark string `parquet:"benchmark,snappy"`

	// SourceID identifies the ranked source
	SourceID string `parquet:"source_id,snappy"`

	// SourceLabel is the display label of the ranked source
	SourceLabel string `parquet:"source_label,snappy"`

	// Test is the individual test name (nullable for the average row)
	Test *string `parquet:"test,optional,snappy"`

	// Accuracy is the accuracy for the test, or the row average when Test is nil
	Accuracy float64 `parquet:"accuracy,snappy"`
}

// SourceRecord is the row format for working-set exports.
type SourceRecord struct {
	// SourceID is the relative path identifier of the source
	SourceID string `parquet:"source_id,snappy"`

	// ModelName is the evaluated model name
	ModelName string `parquet:"model_name,snappy"`

	// Variance is the evaluation variant name
	Variance string `parquet:"variance,snappy"`

	// Timestamp is the evaluation timestamp string
	Timestamp string `parquet:"timestamp,snappy"`

	// IsOfficial marks results published by the benchmark maintainers
	IsOfficial bool `parquet:"is_official,snappy"`
}

// ConvertCategoryRecords flattens category stats into long-format records,
// one per category-source pair.
func ConvertCategoryRecords(stats []schema.CategoryStats, labels map[string]string) []CategoryRecord {
	var records []CategoryRecord
	for _, st := range stats {
		for id, avg := range st.PerSourceAvg {
			label := labels[id]
			if label == "" {
				label = id
			}
			records = append(records, CategoryRecord{
				Category:    string(st.Name),
				SourceLabel: label,
				Average:     avg,
				Minimum:     st.PerSourceMin[id],
				Maximum:     st.PerSourceMax[id],
				OverallAvg:  st.OverallAvg,
				Variance:    st.Variance,
				TestCount:   int32(st.TestCount),
			})
		}
	}
	return records
}

// ConvertPivotRecords flattens a pivot table into long-format cell records.
func ConvertPivotRecords(table *schema.PivotTable) []PivotCellRecord {
	var records []PivotCellRecord
	for _, row := range table.Rows {
		for _, col := range table.Columns {
			value, ok := row.Cells[col]
			if !ok {
				continue
			}
			records = append(records, PivotCellRecord{
				Category:    row.Category,
				SourceLabel: col,
				Accuracy:    value,
			})
		}
	}
	return records
}

// ConvertDeltaRecords converts delta rows into export records.
func ConvertDeltaRecords(result schema.DeltaResult) []DeltaRecord {
	records := make([]DeltaRecord, len(result.Rows))
	for i, row := range result.Rows {
		records[i] = DeltaRecord{
			Category:       row.Category,
			BaselineLabel:  result.BaselineLabel,
			CandidateLabel: row.CandidateLabel,
			Baseline:       row.Baseline,
			Candidate:      row.Candidate,
			Delta:          row.Delta,
		}
	}
	return records
}

// ConvertRankRecords flattens benchmark rankings into long-format records.
// Each source contributes one record per test it ran plus an average record.
func ConvertRankRecords(rankings []schema.BenchmarkRanking) []RankRecord {
	var records []RankRecord
	for _, ranking := range rankings {
		for _, row := range ranking.Rows {
			for _, test := range ranking.Tests {
				value, ok := row.Values[test]
				if !ok {
					continue
				}
				t := test
				records = append(records, RankRecord{
					Benchmark:   ranking.Benchmark,
					SourceID:    row.SourceID,
					SourceLabel: row.Label,
					Test:        &t,
					Accuracy:    value,
				})
			}
			records = append(records, RankRecord{
				Benchmark:   ranking.Benchmark,
				SourceID:    row.SourceID,
				SourceLabel: row.Label,
				Accuracy:    row.Average,
			})
		}
	}
	return records
}

// ConvertSourceRecords converts loaded sources into export records.
func ConvertSourceRecords(sources []schema.Source) []SourceRecord {
	records := make([]SourceRecord, len(sources))
	for i, src := range sources {
		records[i] = SourceRecord{
			SourceID:   src.ID,
			ModelName:  src.ModelName,
			Variance:   src.Variance,
			Timestamp:  src.Timestamp,
			IsOfficial: src.IsOfficial,
		}
	}
	return records
}

// WriteCategoryParquet writes category records to a Parquet file.
func WriteCategoryParquet(data []CategoryRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WritePivotParquet writes pivot cell records to a Parquet file.
func WritePivotParquet(data []PivotCellRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteDeltaParquet writes delta records to a Parquet file.
func WriteDeltaParquet(data []DeltaRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRankParquet writes ranking records to a Parquet file.
func WriteRankParquet(data []RankRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteSourceParquet writes source records to a Parquet file.
func WriteSourceParquet(data []SourceRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet creates the output file and streams records through a
// generic writer. The schema is derived from the record struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
