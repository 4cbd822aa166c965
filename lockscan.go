// Package lockscan is the Analyzer façade tying the parser, resolver and
// graph packages together into one pipeline: per file, parse into
// functions and global statements; build each function's
// lock-dependency graph; merge them into one canonicalised graph; enumerate
// its cycles.
package lockscan

import (
	"context"
	"fmt"

	"github.com/viant/afs"

	"github.com/viant/lockscan/graph"
	"github.com/viant/lockscan/model"
	"github.com/viant/lockscan/parser"
	"github.com/viant/lockscan/report"
)

// Option configures an Analyzer in the functional-options style.
type Option func(*Analyzer)

// WithConfig sets the Analyzer's Config, replacing the default.
func WithConfig(cfg *model.Config) Option {
	return func(a *Analyzer) {
		if cfg != nil {
			a.config = cfg
		}
	}
}

// WithFileSystem overrides the afs.Service used to read input files,
// primarily for tests that want an in-memory filesystem.
func WithFileSystem(fs afs.Service) Option {
	return func(a *Analyzer) {
		a.fs = fs
	}
}

// Analyzer runs the full pipeline over a set of input files. It carries no
// state between calls to AnalyzeFiles: each call starts from a fresh
// ambient class and an empty accumulator.
type Analyzer struct {
	config *model.Config
	fs     afs.Service
}

// New returns an Analyzer configured by opts.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		config: model.DefaultConfig(),
		fs:     afs.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// AnalyzeFiles reads and parses every path in order, accumulating functions
// and global statements across files (a later file's class declaration
// overwrites the ambient class used for statements parsed thereafter), then
// builds and merges the lock-dependency graphs and enumerates cycles over
// the merged graph.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string) (*report.Result, error) {
	var (
		functions    []*model.Function
		global       []*model.Statement
		ambientClass string
	)
	fileHashes := make(map[string]uint64, len(paths))

	for _, path := range paths {
		src, err := a.fs.DownloadWithURL(ctx, path)
		if err != nil {
			return nil, &ErrRead{Path: path, Err: err}
		}
		res := parser.ParseFile(src, ambientClass)
		ambientClass = res.Class
		functions = append(functions, res.Functions...)
		global = append(global, res.Global...)

		if hash, err := model.ContentHash(parser.ReadLines(src)); err == nil {
			fileHashes[path] = hash
		}
	}

	merged, perFunction := graph.Merge(functions)
	cycles := graph.FindCycles(merged)

	result := &report.Result{
		Functions:   functions,
		Global:      global,
		PerFunction: perFunction,
		Merged:      merged,
		Cycles:      cycles,
		FileHashes:  fileHashes,
	}

	if a.config.ExportGraph {
		if err := report.ExportGraph(ctx, a.config.ExportPath, result); err != nil {
			return result, fmt.Errorf("analysis succeeded but graph export failed: %w", err)
		}
	}

	return result, nil
}
