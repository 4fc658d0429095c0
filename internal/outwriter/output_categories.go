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

// WriteCategoryStats outputs the category aggregation, dispatching based on
// the output format configured.
func WriteCategoryStats(stats []schema.CategoryStats, sources []schema.Source, cfg *contract.Config, duration time.Duration) error {
	fmtAccuracy, fmtFloat := createFormatters(cfg)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeCategoryJSONResults(stats, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCategoryCSVResults(stats, cfg, fmtAccuracy, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		records := parquet.ConvertCategoryRecords(stats, sourceLabels(sources))
		if err := parquet.WriteCategoryParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		logExported(len(records), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCategoryTable(stats, len(sources), cfg, fmtAccuracy, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeCategoryJSONResults handles opening the file and calling the JSON writer.
func writeCategoryJSONResults(stats []schema.CategoryStats, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, stats)
	}, "Wrote JSON")
}

// writeCategoryCSVResults handles opening the file and calling the CSV writer.
func writeCategoryCSVResults(stats []schema.CategoryStats, cfg *contract.Config, fmtAccuracy, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"rank",
			"category",
			"tests",
			"average",
			"minimum",
			"maximum",
			"variance",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, st := range stats {
				rec := []string{
					strconv.Itoa(i + 1),        // Rank
					string(st.Name),            // Category
					strconv.Itoa(st.TestCount), // Tests
					fmtAccuracy(st.OverallAvg), // Average
					fmtAccuracy(st.OverallMin), // Minimum
					fmtAccuracy(st.OverallMax), // Maximum
					fmtFloat(st.Variance),      // Variance
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeCategoryTable generates and writes the human-readable table.
func writeCategoryTable(stats []schema.CategoryStats, numSources int, cfg *contract.Config, fmtAccuracy, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Category", "Tests", "Avg"}
	if cfg.Detail {
		headers = append(headers, "Min", "Max", "Variance")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxWidth := getMaxTableLabelWidth(cfg, len(headers)-1)
	var data [][]string
	for i, st := range stats {
		row := []string{
			strconv.Itoa(i + 1),                               // Rank
			contract.TruncateLabel(string(st.Name), maxWidth), // Category
			strconv.Itoa(st.TestCount),                        // Tests
			fmtAccuracy(st.OverallAvg),                        // Avg
		}
		if cfg.Detail {
			row = append(
				row,
				fmtAccuracy(st.OverallMin), // Min
				fmtAccuracy(st.OverallMax), // Max
				fmtFloat(st.Variance),      // Variance
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	// Compute summary stats
	totalTests := 0
	for _, st := range stats {
		totalTests += st.TestCount
	}
	if _, err := fmt.Fprintf(writer, "Showing %d categories (total tests: %d, sources: %d)\n", len(stats), totalTests, numSources); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Aggregation completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
