package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/benchview/benchview/internal/contract"
	"github.com/benchview/benchview/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the formatter closures shared across output types.
// fmtAccuracy renders accuracy values on the configured scale, fmtFloat
// renders free-precision numbers such as variances and deltas.
func createFormatters(cfg *contract.Config) (fmtAccuracy func(float64) string, fmtFloat func(float64) string) {
	fmtAccuracy = func(v float64) string {
		return schema.FormatValue(v, cfg.Percent)
	}
	fmtFloat = func(v float64) string {
		return fmt.Sprintf("%.*f", cfg.Precision, v)
	}
	return fmtAccuracy, fmtFloat
}

// sourceLabels builds the source ID to display label mapping used by
// per-source breakdowns and parquet exports.
func sourceLabels(sources []schema.Source) map[string]string {
	labels := make(map[string]string, len(sources))
	for _, src := range sources {
		labels[src.ID] = src.Label()
	}
	return labels
}

// requireOutputFile guards formats that cannot stream to stdout.
func requireOutputFile(cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("%s output requires --output-file", cfg.Output)
	}
	return nil
}

// logExported reports a completed binary export on stderr.
func logExported(count int, outputFile string) {
	fmt.Fprintf(os.Stderr, "💾 Wrote %d parquet records to %s\n", count, outputFile)
}
