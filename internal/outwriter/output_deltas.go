package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/benchview/benchview/internal/contract"
	"github.com/benchview/benchview/internal/parquet"
	"github.com/benchview/benchview/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteDeltas outputs the baseline-vs-candidates comparison, dispatching
// based on the output format configured.
func WriteDeltas(result schema.DeltaResult, cfg *contract.Config, duration time.Duration) error {
	fmtAccuracy, _ := createFormatters(cfg)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeDeltaJSONResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeDeltaCSVResults(result, cfg, fmtAccuracy); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		records := parquet.ConvertDeltaRecords(result)
		if err := parquet.WriteDeltaParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		logExported(len(records), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDeltaTable(result, cfg, fmtAccuracy, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeDeltaJSONResults handles opening the file and calling the JSON writer.
func writeDeltaJSONResults(result schema.DeltaResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// writeDeltaCSVResults handles opening the file and calling the CSV writer.
func writeDeltaCSVResults(result schema.DeltaResult, cfg *contract.Config, fmtAccuracy func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"rank",
			"category",
			"baseline",
			"candidate",
			"delta",
			"candidate_label",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, r := range result.Rows {
				rec := []string{
					strconv.Itoa(i + 1),                         // Rank
					r.Category,                                  // Category
					fmtAccuracy(r.Baseline),                     // Baseline
					fmtAccuracy(r.Candidate),                    // Candidate
					fmt.Sprintf("%.*f", cfg.Precision, r.Delta), // Delta
					r.CandidateLabel,                            // Candidate Label
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeDeltaTable writes the deltas in the custom comparison format.
func writeDeltaTable(result schema.DeltaResult, cfg *contract.Config, fmtAccuracy func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	// --- 1. Define Headers (Comparison Mode) ---
	headers := []string{
		"Rank",
		"Category",
		"Baseline",
		"Candidate",
		"Delta",
	}
	if cfg.Detail {
		headers = append(headers, "Model")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	maxWidth := getMaxTableLabelWidth(cfg, len(headers)-1)
	var data [][]string
	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}
	for i, r := range result.Rows {
		var deltaStr string
		switch {
		case r.Delta > 0:
			// Explicitly add + sign; accuracy gains read green
			deltaStr = green(fmt.Sprintf("+%.*f ▲", cfg.Precision, r.Delta))
		case r.Delta < 0:
			// Keeps the - sign from the float
			deltaStr = red(fmt.Sprintf("%.*f ▼", cfg.Precision, r.Delta))
		default:
			// For 0.0 deltas, format simply without an indicator
			deltaStr = yellow(fmt.Sprintf("%.*f", cfg.Precision, 0.0))
		}

		row := []string{
			strconv.Itoa(i + 1),                          // Rank
			contract.TruncateLabel(r.Category, maxWidth), // Category
			fmtAccuracy(r.Baseline),                      // Baseline
			fmtAccuracy(r.Candidate),                     // Candidate
			deltaStr,                                     // Delta
		}
		if cfg.Detail {
			row = append(row, contract.TruncateLabel(r.CandidateLabel, maxWidth))
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Baseline: %s\n", result.BaselineLabel); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Net delta: %.*f\n", cfg.Precision, result.Summary.NetDelta); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Improved: %d, Regressed: %d, Unchanged: %d\n", result.Summary.Improved, result.Summary.Regressed, result.Summary.Unchanged); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Comparison completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
