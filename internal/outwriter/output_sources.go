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

// WriteSources outputs the loaded working set, dispatching based on the
// output format configured.
func WriteSources(sources []schema.Source, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeSourceJSONResults(sources, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSourceCSVResults(sources, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		records := parquet.ConvertSourceRecords(sources)
		if err := parquet.WriteSourceParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		logExported(len(records), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSourceTable(sources, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeSourceJSONResults handles opening the file and calling the JSON writer.
func writeSourceJSONResults(sources []schema.Source, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, sources)
	}, "Wrote JSON")
}

// writeSourceCSVResults handles opening the file and calling the CSV writer.
func writeSourceCSVResults(sources []schema.Source, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"id",
			"model",
			"variance",
			"timestamp",
			"official",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, src := range sources {
				rec := []string{
					src.ID,
					src.ModelName,
					src.Variance,
					src.Timestamp,
					strconv.FormatBool(src.IsOfficial),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeSourceTable generates and writes the human-readable table.
func writeSourceTable(sources []schema.Source, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"ID", "Model", "Variance", "Timestamp", "Official"}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableLabelWidth(cfg, len(headers)-1)
	var data [][]string
	officialCount := 0
	for _, src := range sources {
		official := ""
		if src.IsOfficial {
			official = "yes"
			officialCount++
		}
		data = append(data, []string{
			contract.TruncateLabel(src.ID, maxWidth),
			contract.TruncateLabel(src.ModelName, maxWidth),
			src.Variance,
			src.Timestamp,
			official,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d sources (%d official)\n", len(sources), officialCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Listing completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
