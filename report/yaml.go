package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/lockscan/model"
)

// graphExport is the YAML-serializable shape of a lock-dependency graph:
// one entry per source node, each listing its destinations.
type graphExport struct {
	Nodes []nodeExport `yaml:"nodes"`
}

type nodeExport struct {
	Lock string   `yaml:"lock"`
	To   []string `yaml:"to,omitempty"`
}

func toGraphExport(g *model.LockDependencyGraph) graphExport {
	var out graphExport
	for _, n := range g.Nodes() {
		entry := nodeExport{Lock: string(n)}
		for _, to := range g.Neighbours(n) {
			entry.To = append(entry.To, string(to))
		}
		out.Nodes = append(out.Nodes, entry)
	}
	return out
}

// ExportGraph marshals the merged lock-dependency graph (and every
// per-function graph, keyed by function name) to YAML and writes it to
// path via afs, the storage abstraction used for file I/O throughout
// this module.
func ExportGraph(ctx context.Context, path string, result *Result) error {
	doc := struct {
		Merged      graphExport            `yaml:"merged"`
		PerFunction map[string]graphExport `yaml:"perFunction"`
		FileHashes  map[string]uint64      `yaml:"fileHashes,omitempty"`
	}{
		Merged:      toGraphExport(result.Merged),
		PerFunction: make(map[string]graphExport, len(result.PerFunction)),
		FileHashes:  result.FileHashes,
	}
	for fn, g := range result.PerFunction {
		doc.PerFunction[fn.Name] = toGraphExport(g)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal lock-dependency graph: %w", err)
	}

	fs := afs.New()
	if err := fs.Upload(ctx, path, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write graph export %s: %w", path, err)
	}
	return nil
}
