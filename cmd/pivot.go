package cmd

import (
	"github.com/benchview/benchview/core"
	"github.com/benchview/benchview/internal/contract"
	"github.com/spf13/cobra"
)

// pivotCmd builds the category-by-source matrix view.
var pivotCmd = &cobra.Command{
	Use:   "pivot [results-dir]",
	Short: "Show a category-by-source table of mean accuracies.",
	Long: `Build a wide table with one row per category and one column per
result source, so accuracies can be compared side by side.

Rows keep the order categories first appear in, columns keep the order
sources were loaded in. Cells without data render as a dash (empty in CSV).

Examples:
  # Compare every loaded source at a glance
  benchview pivot

  # Only GSM8K datasets
  benchview pivot --filter gsm8k

  # Export for spreadsheets
  benchview pivot --output csv --output-file pivot.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePivot(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build pivot table", err)
		}
	},
}
