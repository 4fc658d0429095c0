package cmd

import (
	"github.com/benchview/benchview/core"
	"github.com/benchview/benchview/internal/contract"
	"github.com/spf13/cobra"
)

// categoriesCmd aggregates results into subject categories.
var categoriesCmd = &cobra.Command{
	Use:   "categories [results-dir]",
	Short: "Show accuracy statistics per subject category.",
	Long: `Flatten every result document, classify each test into a subject
category and aggregate accuracy statistics across sources.

Each source contributes one average per category, so a model evaluated on
many tests carries the same weight as a model evaluated on a few, helping you:
- Compare strengths across broad subject areas
- Spot categories where results disagree between runs (high variance)
- Slice a single benchmark with --filter

Examples:
  # Summarize all results in the current directory
  benchview categories

  # Most contested categories first, with min/max/variance columns
  benchview categories --sort variance --detail

  # Only MMLU datasets, shown as percentages
  benchview categories results/ --filter mmlu --percent

  # Export findings to CSV for tracking
  benchview categories --output csv --output-file categories.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		sortStr, _ := cmd.Flags().GetString("sort")
		if err := contract.RevalidateCategories(cfg, sortStr); err != nil {
			contract.LogFatal("Cannot run category aggregation", err)
		}
		if err := core.ExecuteCategories(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run category aggregation", err)
		}
	},
}
