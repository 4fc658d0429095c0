// Package cmd defines the command-line interface for benchview.
package cmd

import (
	"github.com/benchview/benchview/internal/contract"
	"github.com/benchview/benchview/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(pivotCmd)
	rootCmd.AddCommand(deltasCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print extra columns (min, max, variance, per-test scores)")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of path prefixes or patterns to ignore")
	rootCmd.PersistentFlags().StringP("filter", "f", "", "Filter dataset keys by prefix (e.g. 'mmlu')")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Bool("percent", false, "Display accuracies on a 0-100 scale")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject result documents that fail schema validation")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored deltas in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of categoriesCmd to Viper
	categoriesCmd.Flags().String("sort", string(schema.AvgSort), "Category sort mode: avg or variance or name or tests")
	if err := viper.BindPFlags(categoriesCmd.Flags()); err != nil {
		contract.LogFatal("Error binding categories flags", err)
	}

	// Bind all flags of deltasCmd to Viper
	deltasCmd.Flags().StringP("baseline", "b", "", "Source ID or model name to compare against")
	deltasCmd.Flags().Float64P("threshold", "t", 0, "Minimum absolute delta to keep (inclusive)")
	deltasCmd.Flags().String("sort", string(schema.AbsDescSort), "Delta sort mode: abs-desc or delta-desc or delta-asc or category")
	if err := viper.BindPFlags(deltasCmd.Flags()); err != nil {
		contract.LogFatal("Error binding deltas flags", err)
	}
}
