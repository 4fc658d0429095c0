package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/benchview/benchview/internal/contract"
	"github.com/benchview/benchview/internal/parquet"
	"github.com/benchview/benchview/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankings outputs the per-benchmark model rankings, dispatching based
// on the output format configured.
func WriteRankings(rankings []schema.BenchmarkRanking, cfg *contract.Config, duration time.Duration) error {
	fmtAccuracy, _ := createFormatters(cfg)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankJSONResults(rankings, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankCSVResults(rankings, cfg, fmtAccuracy); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		records := parquet.ConvertRankRecords(rankings)
		if err := parquet.WriteRankParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		logExported(len(records), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTables(rankings, cfg, fmtAccuracy, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankJSONResults handles opening the file and calling the JSON writer.
func writeRankJSONResults(rankings []schema.BenchmarkRanking, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, rankings)
	}, "Wrote JSON")
}

// writeRankCSVResults handles opening the file and calling the CSV writer.
func writeRankCSVResults(rankings []schema.BenchmarkRanking, cfg *contract.Config, fmtAccuracy func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"benchmark",
			"rank",
			"source",
			"model",
			"average",
			"tests",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, ranking := range rankings {
				for i, row := range ranking.Rows {
					rec := []string{
						ranking.Benchmark,             // Benchmark
						strconv.Itoa(i + 1),           // Rank
						row.SourceID,                  // Source
						row.Label,                     // Model
						fmtAccuracy(row.Average),      // Average
						strconv.Itoa(len(row.Values)), // Tests
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeRankTables writes one human-readable table per benchmark family.
func writeRankTables(rankings []schema.BenchmarkRanking, cfg *contract.Config, fmtAccuracy func(float64) string, duration time.Duration, writer io.Writer) error {
	for _, ranking := range rankings {
		if _, err := fmt.Fprintf(writer, "Benchmark: %s\n", ranking.Benchmark); err != nil {
			return err
		}
		if err := writeRankTable(ranking, cfg, fmtAccuracy, writer); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Ranked %d benchmarks in %v\n", len(rankings), duration); err != nil {
		return err
	}
	return nil
}

// writeRankTable renders a single benchmark's ranking. Detail mode adds one
// column per test; sources missing a test show a dash.
func writeRankTable(ranking schema.BenchmarkRanking, cfg *contract.Config, fmtAccuracy func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	fixedColumns := 2
	if cfg.Detail {
		fixedColumns += len(ranking.Tests)
	}
	maxWidth := getMaxTableLabelWidth(cfg, fixedColumns)

	headers := []string{"Rank", "Model", "Avg"}
	if cfg.Detail {
		for _, test := range ranking.Tests {
			headers = append(headers, contract.TruncateLabel(test, maxWidth))
		}
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, row := range ranking.Rows {
		rec := []string{
			strconv.Itoa(i + 1),                         // Rank
			contract.TruncateLabel(row.Label, maxWidth), // Model
			fmtAccuracy(row.Average),                    // Avg
		}
		if cfg.Detail {
			for _, test := range ranking.Tests {
				if value, ok := row.Values[test]; ok {
					rec = append(rec, fmtAccuracy(value))
				} else {
					rec = append(rec, "-")
				}
			}
		}
		data = append(data, rec)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
