package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/benchview/benchview/internal/contract"
	"github.com/benchview/benchview/internal/parquet"
	"github.com/benchview/benchview/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WritePivot outputs the category-by-source pivot table, dispatching based on
// the output format configured.
func WritePivot(table *schema.PivotTable, cfg *contract.Config, duration time.Duration) error {
	fmtAccuracy, _ := createFormatters(cfg)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writePivotJSONResults(table, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writePivotCSVResults(table, cfg, fmtAccuracy); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		records := parquet.ConvertPivotRecords(table)
		if err := parquet.WritePivotParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		logExported(len(records), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePivotTable(table, cfg, fmtAccuracy, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writePivotJSONResults handles opening the file and calling the JSON writer.
func writePivotJSONResults(table *schema.PivotTable, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, table)
	}, "Wrote JSON")
}

// writePivotCSVResults handles opening the file and calling the CSV writer.
// Missing cells stay empty so spreadsheet tools can tell a gap from a zero.
func writePivotCSVResults(table *schema.PivotTable, cfg *contract.Config, fmtAccuracy func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := append([]string{"category"}, table.Columns...)
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, row := range table.Rows {
				rec := make([]string, 0, len(table.Columns)+1)
				rec = append(rec, row.Category)
				for _, col := range table.Columns {
					if value, ok := row.Cells[col]; ok {
						rec = append(rec, fmtAccuracy(value))
					} else {
						rec = append(rec, "")
					}
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writePivotTable generates and writes the human-readable table.
func writePivotTable(pivot *schema.PivotTable, cfg *contract.Config, fmtAccuracy func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers with truncated source labels
	maxWidth := getMaxTableLabelWidth(cfg, len(pivot.Columns))
	headers := make([]string, 0, len(pivot.Columns)+1)
	headers = append(headers, "Category")
	for _, col := range pivot.Columns {
		headers = append(headers, contract.TruncateLabel(col, maxWidth))
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, row := range pivot.Rows {
		rec := make([]string, 0, len(pivot.Columns)+1)
		rec = append(rec, contract.TruncateLabel(row.Category, maxWidth))
		for _, col := range pivot.Columns {
			if value, ok := row.Cells[col]; ok {
				rec = append(rec, fmtAccuracy(value))
			} else {
				rec = append(rec, "-")
			}
		}
		data = append(data, rec)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d categories across %d sources\n", len(pivot.Rows), len(pivot.Columns)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Pivot completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
