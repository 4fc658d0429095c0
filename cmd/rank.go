package cmd

import (
	"github.com/benchview/benchview/core"
	"github.com/benchview/benchview/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd ranks models within each benchmark family.
var rankCmd = &cobra.Command{
	Use:   "rank [results-dir]",
	Short: "Rank models per benchmark family by average accuracy.",
	Long: `Group tests by benchmark family and rank every source within each
family by its average accuracy.

Averages only cover the tests a source actually ran, so a model skipping
hard tests is not penalized with zeros. Use --detail to see per-test scores.

Examples:
  # Rank every model on every benchmark
  benchview rank

  # Per-test columns for the full picture
  benchview rank --detail

  # Only the MMLU family
  benchview rank --filter mmlu`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot rank models", err)
		}
	},
}
