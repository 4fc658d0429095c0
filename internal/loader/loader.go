// Package loader discovers and parses benchmark result documents from a
// local results directory, turning each one into a schema.Source for the
// core pipeline. It is the producer side of the core's input boundary:
// parse failures and schema mismatches are loader errors, while merely
// odd-shaped documents load fine and degrade inside the normalizer.
package loader

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benchview/benchview/internal/contract"
	"github.com/benchview/benchview/schema"
)

// Loader reads result documents from the local filesystem.
type Loader struct{}

// New creates a filesystem-backed source loader.
func New() *Loader {
	return &Loader{}
}

// LoadSources walks the results directory for .json and .jsonl files and
// parses each into one or more sources. A .json file is one document; each
// non-blank line of a .jsonl file is an independent document with its own
// source (ID suffixed "#N").
//
// Files or lines that fail to parse, and documents rejected by strict
// schema validation, are reported as warnings and skipped; the rest of the
// load continues. The returned source order follows the lexical walk
// order, so a fixed directory always yields the same working set.
func (l *Loader) LoadSources(ctx context.Context, cfg *contract.Config) ([]schema.Source, []error) {
	var sources []schema.Source
	var warnings []error

	err := filepath.WalkDir(cfg.ResultsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") && path != cfg.ResultsDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".jsonl" {
			return nil
		}

		rel, relErr := filepath.Rel(cfg.ResultsDir, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		if contract.ShouldIgnore(rel, cfg.Excludes) {
			return nil
		}

		fileSources, fileWarnings := l.loadFile(path, rel, ext, cfg)
		sources = append(sources, fileSources...)
		warnings = append(warnings, fileWarnings...)
		return nil
	})
	if err != nil {
		warnings = append(warnings, fmt.Errorf("walking %s: %w", cfg.ResultsDir, err))
	}

	return sources, warnings
}

// loadFile parses a single result file into sources.
func (l *Loader) loadFile(path, rel, ext string, cfg *contract.Config) ([]schema.Source, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("reading %s: %w", rel, err)}
	}

	mtime := time.Now()
	if info, err := os.Stat(path); err == nil {
		mtime = info.ModTime()
	}

	if ext == ".jsonl" {
		return l.loadLines(data, rel, mtime, cfg)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return nil, []error{fmt.Errorf("parsing %s: %w", rel, err)}
	}
	src, err := l.buildSource(doc, rel, rel, mtime, cfg)
	if err != nil {
		return nil, []error{err}
	}
	return []schema.Source{src}, nil
}

// loadLines parses one source per non-blank JSONL line.
func (l *Loader) loadLines(data []byte, rel string, mtime time.Time, cfg *contract.Config) ([]schema.Source, []error) {
	var sources []schema.Source
	var warnings []error

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		id := fmt.Sprintf("%s#%d", rel, lineNo)
		doc, err := parseDocument(line)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("parsing %s: %w", id, err))
			continue
		}
		src, err := l.buildSource(doc, id, rel, mtime, cfg)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		sources = append(sources, src)
	}
	if err := scanner.Err(); err != nil {
		warnings = append(warnings, fmt.Errorf("scanning %s: %w", rel, err))
	}

	return sources, warnings
}

// buildSource assembles a source from a parsed document plus its file
// metadata fallbacks.
func (l *Loader) buildSource(doc any, id, rel string, mtime time.Time, cfg *contract.Config) (schema.Source, error) {
	if cfg.Strict {
		if err := ValidateDocument(doc); err != nil {
			return schema.Source{}, fmt.Errorf("%s: %w", id, err)
		}
	}
	if cfg.DatasetFilter != "" {
		doc = pruneDatasets(doc, cfg.DatasetFilter)
	}

	src := schema.Source{
		ID:        id,
		ModelName: fileStem(rel),
		Variance:  schema.DefaultVariance,
		Timestamp: mtime.UTC().Format(time.RFC3339),
		RawData:   doc,
	}

	if m, ok := doc.(map[string]any); ok {
		if v, ok := m["model_name"].(string); ok && v != "" {
			src.ModelName = v
		}
		if v, ok := m["variance"].(string); ok && v != "" {
			src.Variance = v
		}
		if v, ok := m["timestamp"].(string); ok && v != "" {
			src.Timestamp = v
		}
		if v, ok := m["official"].(bool); ok {
			src.IsOfficial = v
		}
	}
	if !src.IsOfficial && underOfficialDir(rel) {
		src.IsOfficial = true
	}

	return src, nil
}

// parseDocument decodes a JSON document into the generic tree the
// normalizer consumes.
func parseDocument(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// pruneDatasets returns a shallow copy of the document with dataset keys
// not matching the prefix removed. The original tree is left untouched so
// sources stay immutable after load.
func pruneDatasets(doc any, prefix string) any {
	m, ok := doc.(map[string]any)
	if !ok {
		return doc
	}
	dr, ok := m["dataset_results"].(map[string]any)
	if !ok {
		return doc
	}

	pruned := make(map[string]any)
	for k, v := range dr {
		if strings.HasPrefix(strings.TrimPrefix(k, "datasets/"), prefix) {
			pruned[k] = v
		}
	}

	out := make(map[string]any, len(m))
	maps.Copy(out, m)
	out["dataset_results"] = pruned
	return out
}

// fileStem returns the file name without directories or extension, used
// as the model-name fallback when the document carries none.
func fileStem(rel string) string {
	base := filepath.Base(rel)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// underOfficialDir reports whether a relative path has a directory
// component named "official".
func underOfficialDir(rel string) bool {
	dir := filepath.ToSlash(filepath.Dir(rel))
	for _, part := range strings.Split(dir, "/") {
		if part == "official" {
			return true
		}
	}
	return false
}
