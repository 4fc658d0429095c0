package cmd

import (
	"github.com/benchview/benchview/core"
	"github.com/benchview/benchview/internal/contract"
	"github.com/spf13/cobra"
)

// sourcesCmd lists the loaded working set.
var sourcesCmd = &cobra.Command{
	Use:   "sources [results-dir]",
	Short: "List every result source found under the results directory.",
	Long: `Walk the results directory and list every result document found,
with the model name, variance, timestamp and official flag extracted from
each document.

Useful for checking what a directory contains before aggregating it, and
for finding the exact source ID to pass to 'deltas --baseline'.

Examples:
  # List everything under the current directory
  benchview sources

  # List a specific directory as JSON
  benchview sources results/ --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSources(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list sources", err)
		}
	},
}
