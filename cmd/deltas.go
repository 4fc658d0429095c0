package cmd

import (
	"github.com/benchview/benchview/core"
	"github.com/benchview/benchview/internal/contract"
	"github.com/spf13/cobra"
)

// deltasCmd compares candidate sources against a baseline.
var deltasCmd = &cobra.Command{
	Use:   "deltas [results-dir]",
	Short: "Show per-category accuracy deltas against a baseline.",
	Long: `Compare every candidate source against one baseline source and
compute per-category accuracy deltas (candidate minus baseline).

Only categories present in both sources are compared. Gains point up in
green, losses point down in red.

Examples:
  # Compare everything against an official run
  benchview deltas --baseline official/gpt4_mmlu.json

  # Match the baseline by model name instead of path
  benchview deltas -b gpt-4

  # Hide noise below one accuracy point
  benchview deltas -b gpt-4 --threshold 0.01

  # Largest regressions first
  benchview deltas -b gpt-4 --sort delta-asc`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		sortStr, _ := cmd.Flags().GetString("sort")
		if err := contract.RevalidateDeltas(cfg, sortStr); err != nil {
			contract.LogFatal("Cannot run delta comparison", err)
		}
		if err := core.ExecuteDeltas(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run delta comparison", err)
		}
	},
}
