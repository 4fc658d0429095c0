// Package outwriter has output and writer logic for every explorer view.
package outwriter

import (
	"os"

	"github.com/benchview/benchview/internal/contract"
	"golang.org/x/term"
)

// getMaxTableLabelWidth calculates the maximum width for source labels and
// category names in table output based on terminal width and table shape.
func getMaxTableLabelWidth(cfg *contract.Config, fixedColumns int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Each numeric column takes roughly 10 cells with borders and padding
	baseWidth := fixedColumns * 10

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable label width
		return 15
	}
	if available > 60 {
		// Maximum label width to prevent overly wide tables
		return 60
	}
	return available
}
