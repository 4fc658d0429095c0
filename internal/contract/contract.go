// Package contract provides the validated configuration, shared utilities
// and interfaces used across benchview's internal architecture.
package contract

import (
	"context"

	"github.com/benchview/benchview/schema"
)

// SourceLoader defines the operations needed to turn a results directory
// into a working set of sources. This allows command and MCP logic to be
// tested without touching the filesystem.
type SourceLoader interface {
	// LoadSources discovers and parses all result documents under the
	// configured results directory. Files that fail to parse are reported
	// through the returned warnings; they do not abort the load.
	LoadSources(ctx context.Context, cfg *Config) ([]schema.Source, []error)
}
