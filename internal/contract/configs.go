package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/benchview/benchview/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 1000
	DefaultPrecision   = 4
	MaxPrecision       = 6
)

// Config holds the runtime configuration for a benchview invocation.
// This struct remains the "final, validated" config.
type Config struct {
	ResultsDir    string   // Absolute path to the results directory
	DatasetFilter string   // Optional dataset-key prefix filter
	Excludes      []string // File path prefixes/suffixes/globs to skip while loading
	ResultLimit   int      // Maximum number of rows to show in results
	Precision     int      // Decimal precision for numeric columns
	Output        schema.OutputMode
	OutputFile    string
	Percent       bool // Display accuracies on a 0-100 scale
	Detail        bool // Show min/max/variance columns
	Strict        bool // Reject documents failing schema validation
	Width         int  // Terminal width override (0 = auto-detect)

	Baseline       string // Source ID or model name for delta comparisons
	DeltaThreshold float64
	DeltaSort      schema.DeltaSortMode
	CategorySort   schema.CategorySortMode

	UseColors bool // Enable colored deltas in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ResultsDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Filter     string  `mapstructure:"filter"`
	Exclude    string  `mapstructure:"exclude"`
	Limit      int     `mapstructure:"limit"`
	Precision  int     `mapstructure:"precision"`
	Output     string  `mapstructure:"output"`
	OutputFile string  `mapstructure:"output-file"`
	Percent    bool    `mapstructure:"percent"`
	Detail     bool    `mapstructure:"detail"`
	Strict     bool    `mapstructure:"strict"`
	Width      int     `mapstructure:"width"`
	Color      string  `mapstructure:"color"`
	Sort       string  `mapstructure:"sort"`
	Baseline   string  `mapstructure:"baseline"`
	Threshold  float64 `mapstructure:"threshold"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := resolveResultsDir(cfg, input); err != nil {
		return err
	}

	if input.Limit < 1 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s (expected text, csv, json or parquet)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.DatasetFilter = input.Filter
	cfg.Excludes = splitCommaList(input.Exclude)
	cfg.Percent = input.Percent
	cfg.Detail = input.Detail
	cfg.Strict = input.Strict
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	cfg.Baseline = input.Baseline
	cfg.DeltaThreshold = input.Threshold

	return nil
}

// RevalidateDeltas validates the delta-specific inputs. The deltas command
// and the MCP compute_deltas tool both funnel through this.
func RevalidateDeltas(cfg *Config, sortStr string) error {
	if cfg.Baseline == "" {
		return fmt.Errorf("--baseline is required (source ID or model name)")
	}
	if cfg.DeltaThreshold < 0 {
		return fmt.Errorf("threshold must be non-negative, got %g", cfg.DeltaThreshold)
	}
	if sortStr == "" {
		cfg.DeltaSort = schema.AbsDescSort
		return nil
	}
	mode := schema.DeltaSortMode(sortStr)
	if _, ok := schema.ValidDeltaSortModes[mode]; !ok {
		return fmt.Errorf("invalid delta sort mode: %s (expected abs-desc, delta-desc, delta-asc or category)", sortStr)
	}
	cfg.DeltaSort = mode
	return nil
}

// RevalidateCategories validates the categories-specific inputs.
func RevalidateCategories(cfg *Config, sortStr string) error {
	if sortStr == "" {
		cfg.CategorySort = schema.AvgSort
		return nil
	}
	mode := schema.CategorySortMode(sortStr)
	if _, ok := schema.ValidCategorySortModes[mode]; !ok {
		return fmt.Errorf("invalid category sort mode: %s (expected avg, variance, name or tests)", sortStr)
	}
	cfg.CategorySort = mode
	return nil
}

// resolveResultsDir resolves and verifies the results directory.
func resolveResultsDir(cfg *Config, input *ConfigRawInput) error {
	dir := input.ResultsDirStr
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("cannot resolve results directory %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("results directory does not exist: %s", abs)
	}
	if !info.IsDir() {
		return fmt.Errorf("results path is not a directory: %s", abs)
	}
	cfg.ResultsDir = abs
	return nil
}

// splitCommaList splits a comma-separated flag value into trimmed,
// non-empty elements.
func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
